package commands

import (
	"log/slog"
	"os"

	"github.com/mrled/suns/symaxis/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	LogLevel  string
	LogFormat string
	log       *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "symaxis",
		Short:         "Symaxis checks point sets for vertical-axis symmetry",
		Long:          `A command-line tool for deciding whether a set of integer points is symmetric about a line parallel to the y-axis, and for keeping a record of the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags win over LOG_LEVEL and LOG_FORMAT, which win over flag defaults
			cfg := logger.DefaultConfig()
			if cmd.Flags().Changed("log-level") || os.Getenv("LOG_LEVEL") == "" {
				cfg.Level = opts.LogLevel
			}
			if cmd.Flags().Changed("log-format") || os.Getenv("LOG_FORMAT") == "" {
				cfg.Format = opts.LogFormat
			}
			// stdout carries results
			cfg.Output = cmd.ErrOrStderr()
			opts.log = logger.WithExecutable(logger.NewLogger(cfg), "symaxis")
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "Log format: text or json")

	cmd.AddGroup(&cobra.Group{ID: "check", Title: "Checking:"})
	cmd.AddGroup(&cobra.Group{ID: "records", Title: "Records:"})

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newSamplesCmd(opts))
	cmd.AddCommand(newIDCmd())
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newForgetCmd(opts))

	return cmd
}

// Execute runs the root command
func Execute() error {
	cmd := newRootCmd()
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}
