package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/presenter"
	"github.com/spf13/cobra"
)

type showFlags struct {
	PersistenceFlags
	Symmetrical  bool
	Asymmetrical bool
	Label        string
	ID           string
	Format       string
	SortBy       string
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Show check records from the data store",
		GroupID: "records",
		Long: `Display stored check records, optionally filtered by verdict, label, or ID.

Examples:
  # Show all records
  symaxis show --file ./checks.json

  # Show only symmetrical point sets
  symaxis show --file ./checks.json --symmetrical

  # Show records for a label, newest first
  symaxis show --file ./checks.json --label batch-1 --sort check-time

  # Show records in compact format
  symaxis show --file ./checks.json --format compact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Symmetrical && flags.Asymmetrical {
				return &UsageError{fmt.Errorf("--symmetrical and --asymmetrical are mutually exclusive")}
			}

			ctx := cmd.Context()
			repo, err := requireRepository(ctx, flags.PersistenceFlags, opts)
			if err != nil {
				return err
			}

			allRecords, err := repo.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			filter := model.RecordFilter{}
			if flags.Symmetrical || flags.Asymmetrical {
				verdict := flags.Symmetrical
				filter.Symmetrical = &verdict
			}
			if flags.Label != "" {
				filter.Labels = []string{flags.Label}
			}
			if flags.ID != "" {
				filter.IDs = []string{flags.ID}
			}
			filtered := model.FilterRecords(allRecords, filter)
			model.SortRecords(filtered, flags.SortBy)

			out := cmd.OutOrStdout()
			if len(filtered) == 0 {
				fmt.Fprintln(out, "No records found matching the specified criteria.")
				return nil
			}

			switch flags.Format {
			case "compact":
				displayRecordsCompact(out, filtered)
			default: // "detailed" or empty
				displayRecordsDetailed(out, filtered)
			}

			fmt.Fprintf(out, "\nTotal records: %d\n", len(filtered))
			return nil
		},
	}

	addPersistenceFlags(cmd, &flags.PersistenceFlags)
	cmd.Flags().BoolVar(&flags.Symmetrical, "symmetrical", false, "Only show symmetrical point sets")
	cmd.Flags().BoolVar(&flags.Asymmetrical, "asymmetrical", false, "Only show point sets that are not symmetrical")
	cmd.Flags().StringVar(&flags.Label, "label", "", "Filter by label")
	cmd.Flags().StringVar(&flags.ID, "id", "", "Filter by check ID")
	cmd.Flags().StringVar(&flags.Format, "format", "detailed", "Output format: detailed or compact")
	cmd.Flags().StringVar(&flags.SortBy, "sort", "", "Sort by: id, label, check-time, or verdict")

	return cmd
}

// displayRecordsDetailed displays records in detailed format
func displayRecordsDetailed(out io.Writer, records []*model.CheckRecord) {
	fmt.Fprintln(out, "=== Check Records ===")

	for _, record := range records {
		fmt.Fprintf(out, "\nID: %s\n", record.ID)
		if record.Label != "" {
			fmt.Fprintf(out, "Label: %s\n", record.Label)
		}
		fmt.Fprintf(out, "Points: %s\n", model.FormatPoints(record.Points))
		fmt.Fprintf(out, "Symmetrical: %t\n", record.Symmetrical)
		fmt.Fprintf(out, "Axis: %s\n", presenter.FormatAxis(record))
		fmt.Fprintf(out, "Checked: %s (rev %d)\n", presenter.FormatTimeSince(record.CheckTime), record.Rev)
	}
}

// displayRecordsCompact displays records in compact format
func displayRecordsCompact(out io.Writer, records []*model.CheckRecord) {
	fmt.Fprintln(out, "=== Check Records (Compact) ===")
	fmt.Fprintf(out, "%-20s %-16s %-12s %-10s %s\n", "ID", "Label", "Symmetrical", "Axis", "Last Checked")
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, record := range records {
		fmt.Fprintf(out, "%-20s %-16s %-12t %-10s %s\n",
			truncateString(record.ID, 18),
			truncateString(record.Label, 14),
			record.Symmetrical,
			presenter.FormatAxis(record),
			presenter.FormatTimeSinceCompact(record.CheckTime))
	}
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
