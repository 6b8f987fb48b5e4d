package commands

import (
	"context"
	"errors"

	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/repository"
	"github.com/spf13/cobra"
)

var errNoPersistence = errors.New("one of --file or --dynamodb-table is required")

// PersistenceFlags holds flags related to persistence and data storage options
type PersistenceFlags struct {
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
}

// addPersistenceFlags adds common persistence-related flags to a command
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.Flags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file for persistence")
	cmd.Flags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table name for persistence")
	cmd.Flags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
}

func (f PersistenceFlags) config() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:       f.FilePath,
		DynamoTable:    f.DynamoTable,
		DynamoEndpoint: f.DynamoEndpoint,
	}
}

// openRepository returns the configured repository, or nil when no persistence flag was given
func openRepository(ctx context.Context, flags PersistenceFlags, opts *rootOptions) (model.CheckRepository, error) {
	cfg := flags.config()
	if !cfg.Enabled() {
		return nil, nil
	}
	return repository.NewRepository(ctx, cfg, opts.log)
}

// requireRepository is openRepository for commands that cannot run without storage
func requireRepository(ctx context.Context, flags PersistenceFlags, opts *rootOptions) (model.CheckRepository, error) {
	repo, err := openRepository(ctx, flags, opts)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, &UsageError{errNoPersistence}
	}
	return repo, nil
}
