package commands

import (
	"fmt"
	"strings"

	"github.com/mrled/suns/symaxis/internal/presenter"
	"github.com/mrled/suns/symaxis/internal/samples"
	"github.com/mrled/suns/symaxis/internal/usecase/check"
	"github.com/spf13/cobra"
)

func newSamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "samples",
		Short:   "Run the built-in sample point sets",
		GroupID: "check",
		Long:    `Check each built-in sample point set and compare the verdict with the expected one.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := check.NewService(nil, opts.log)
			out := cmd.OutOrStdout()

			var mismatched []string
			for _, c := range samples.Cases() {
				record, err := svc.Check(cmd.Context(), c.Name, c.Points)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "[%s]\n", c.Name)
				fmt.Fprintln(out, presenter.FormatVerdict(c.Points, record.Symmetrical))
				if record.Symmetrical != c.Symmetrical {
					mismatched = append(mismatched, c.Name)
					fmt.Fprintf(out, "!! expected symmetrical=%t\n", c.Symmetrical)
				}
				fmt.Fprintln(out, "\n"+strings.Repeat("-", 74))
			}

			if len(mismatched) > 0 {
				return ExitWithCode(1, fmt.Errorf("unexpected verdict for: %s", strings.Join(mismatched, ", ")))
			}
			return nil
		},
	}
}
