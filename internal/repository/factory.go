package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mrled/suns/symaxis/internal/model"
	"github.com/mrled/suns/symaxis/internal/repository/dynamorepo"
	"github.com/mrled/suns/symaxis/internal/repository/memrepo"
)

// RepositoryConfig holds configuration for creating a repository
type RepositoryConfig struct {
	// FilePath for JSON file persistence (ignored when DynamoTable is set)
	FilePath string

	// DynamoTable is the DynamoDB table name for persistence
	DynamoTable string

	// DynamoEndpoint is an optional custom DynamoDB endpoint URL
	DynamoEndpoint string
}

// Enabled reports whether any persistence backend is configured
func (c RepositoryConfig) Enabled() bool {
	return c.FilePath != "" || c.DynamoTable != ""
}

// NewRepository creates a CheckRepository based on the provided configuration.
// DynamoDB takes precedence over a JSON file. It returns an error if neither is configured.
func NewRepository(ctx context.Context, cfg RepositoryConfig, log *slog.Logger) (model.CheckRepository, error) {
	if cfg.DynamoTable != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		var client *dynamodb.Client
		if cfg.DynamoEndpoint != "" {
			client = dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
				o.BaseEndpoint = &cfg.DynamoEndpoint
			})
			log.Info("Using custom DynamoDB endpoint", slog.String("endpoint", cfg.DynamoEndpoint))
		} else {
			client = dynamodb.NewFromConfig(awsCfg)
		}

		log.Info("Using DynamoDB table", slog.String("table", cfg.DynamoTable))
		return dynamorepo.NewDynamoRepository(client, cfg.DynamoTable), nil
	}

	if cfg.FilePath != "" {
		memRepo, err := memrepo.NewMemoryRepositoryWithPersistence(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		log.Info("Using JSON persistence", slog.String("file", cfg.FilePath))
		return memRepo, nil
	}

	return nil, fmt.Errorf("must specify either FilePath or DynamoTable in repository configuration")
}
