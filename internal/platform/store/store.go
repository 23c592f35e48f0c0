// Package store opens and owns the process-wide persistence handles.
// Today that is a single DynamoDB table; the skill's event records live there
// keyed by user identity.
package store

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"almanacco/internal/platform/logger"
	"almanacco/internal/platform/store/ddb"
)

// Config selects the DynamoDB table backing the store
type Config struct {
	Table  string
	Region string

	// Endpoint points at a non-default DynamoDB endpoint (local development)
	Endpoint string

	// SkipSchemaValidation bypasses the DescribeTable check at open time
	SkipSchemaValidation bool
}

// Store bundles the persistence handles handed to modules
type Store struct {
	DDB *ddb.Client
	log logger.Logger
}

// Open loads AWS configuration, connects the DynamoDB client, and validates
// the table schema. The returned Store is ready for use by repos.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	o := applyOptions(opts)

	if cfg.Table == "" {
		return nil, fmt.Errorf("store: table name is required")
	}

	var ddbOpts []ddb.Option
	if o.api != nil {
		ddbOpts = append(ddbOpts, ddb.WithAPI(o.api))
	} else if cfg.Endpoint != "" {
		ddbOpts = append(ddbOpts, ddb.WithEndpoint(cfg.Endpoint))
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("store: load aws config: %w", err)
	}

	client := ddb.New(&awsCfg, cfg.Table, ddbOpts...)
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("store: connect dynamodb: %w", err)
	}
	if err := client.Init(ctx, cfg.SkipSchemaValidation); err != nil {
		return nil, fmt.Errorf("store: validate table: %w", err)
	}

	s := &Store{DDB: client, log: o.log}
	s.log.Info().Str("table", cfg.Table).Str("region", cfg.Region).Msg("store open")
	return s, nil
}

// Close releases store resources. The DynamoDB client holds no persistent
// connection, so this is bookkeeping only.
func (s *Store) Close(ctx context.Context) error {
	s.log.Debug().Msg("store closed")
	return nil
}
