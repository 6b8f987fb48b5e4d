package commands

import (
	"errors"
	"fmt"

	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/spf13/cobra"
)

func newForgetCmd(opts *rootOptions) *cobra.Command {
	flags := &PersistenceFlags{}

	cmd := &cobra.Command{
		Use:     "forget <id> [id...]",
		Short:   "Delete check records from the data store",
		GroupID: "records",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := requireRepository(ctx, *flags, opts)
			if err != nil {
				return err
			}

			missing := 0
			for _, id := range args {
				err := repo.Delete(ctx, id)
				switch {
				case errors.Is(err, model.ErrNotFound):
					missing++
					fmt.Fprintf(cmd.OutOrStdout(), "Not found: %s\n", id)
				case err != nil:
					return fmt.Errorf("failed to delete %s: %w", id, err)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", id)
				}
			}

			if missing > 0 {
				return ExitWithCode(1, fmt.Errorf("%d record(s) not found", missing))
			}
			return nil
		},
	}

	addPersistenceFlags(cmd, flags)
	return cmd
}
