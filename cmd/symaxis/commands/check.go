package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/presenter"
	"github.com/mrled/suns/symaxis/internal/usecase/check"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	PersistenceFlags
	Label    string
	Stdin    bool
	ExitCode bool
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check <points> [points...]",
		Short:   "Check point sets for vertical-axis symmetry",
		GroupID: "check",
		Long: `Decide whether each point set is symmetric about a vertical line x = m.

Each argument is one point set, written as (x;y) or (x,y) tuples:

  symaxis check "(-5;-4),(1;9),(7;-4),(-6;4),(8;4)"

With --stdin, one point set is read per line instead.
With a persistence flag, each result is stored under an ID derived from its points.

Exit status is 0 unless an error occurs. With --exit-code, it is 2 when any set is not symmetrical.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if flags.Stdin {
				if len(args) > 0 {
					return &UsageError{fmt.Errorf("point arguments cannot be combined with --stdin")}
				}
				var err error
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}
			if len(inputs) == 0 {
				return &UsageError{fmt.Errorf("at least one point set is required")}
			}

			pointSets := make([][]model.Point, len(inputs))
			for i, input := range inputs {
				points, err := model.ParsePoints(input)
				if err != nil {
					return &UsageError{err}
				}
				pointSets[i] = points
			}

			ctx := cmd.Context()
			repo, err := openRepository(ctx, flags.PersistenceFlags, opts)
			if err != nil {
				return err
			}
			svc := check.NewService(repo, opts.log)

			out := cmd.OutOrStdout()
			allSymmetrical := true
			for i, points := range pointSets {
				if i > 0 {
					fmt.Fprintln(out)
				}
				record, err := svc.Check(ctx, flags.Label, points)
				if err != nil {
					return err
				}
				allSymmetrical = allSymmetrical && record.Symmetrical

				fmt.Fprintln(out, presenter.FormatVerdict(points, record.Symmetrical))
				if record.Symmetrical {
					fmt.Fprintf(out, "Axis: %s\n", presenter.FormatAxis(record))
				}
				if repo != nil {
					fmt.Fprintf(out, "Stored: %s (rev %d)\n", record.ID, record.Rev)
				}
			}

			if flags.ExitCode && !allSymmetrical {
				return ExitWithCode(2, nil)
			}
			return nil
		},
	}

	addPersistenceFlags(cmd, &flags.PersistenceFlags)
	cmd.Flags().StringVarP(&flags.Label, "label", "l", "", "Label to store with the results")
	cmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Read one point set per line from stdin")
	cmd.Flags().BoolVar(&flags.ExitCode, "exit-code", false, "Exit with status 2 if any point set is not symmetrical")

	return cmd
}

// readLines returns the non-blank lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
