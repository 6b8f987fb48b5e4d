package commands

import (
	"fmt"

	"github.com/mrled/suns/symaxis/internal/checkid"
	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/spf13/cobra"
)

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "id <points>",
		Short:   "Print the check ID of a point set",
		GroupID: "records",
		Long: `Print the ID a point set is stored under.

The ID does not depend on the order of the points or on repeated points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := model.ParsePoints(args[0])
			if err != nil {
				return &UsageError{err}
			}
			id, err := checkid.CalculateV1(points)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
