// Package aws provides AWS Secrets Manager integration for cfgx.
//
// This provider implements the SecretStore interface using AWS Secrets Manager
// as the backing secret store.
package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/hengadev/cfgx"
)

// secretsManagerClient interface for AWS Secrets Manager operations (allows mocking)
type secretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Store implements cfgx.SecretStore using AWS Secrets Manager.
//
// The store is read-only: secret records are created and updated out-of-band
// by an operator, and the resolver only ever fetches the current value.
type Store struct {
	client secretsManagerClient
	region string
}

// NewStore creates a new AWS Secrets Manager store instance.
//
// Usage:
//
//	// Using default AWS configuration
//	store, err := aws.NewStore(ctx, aws.Config{})
//
//	// With specific region
//	store, err := aws.NewStore(ctx, aws.Config{Region: "us-east-2"})
//
//	// With custom AWS config
//	awsCfg, _ := config.LoadDefaultConfig(ctx)
//	store, err := aws.NewStore(ctx, aws.Config{AWSConfig: &awsCfg})
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	var awsConfig aws.Config
	var err error

	if cfg.AWSConfig != nil {
		awsConfig = *cfg.AWSConfig
	} else {
		// Load default AWS configuration
		opts := []func(*config.LoadOptions) error{}
		if cfg.Region != "" {
			opts = append(opts, config.WithRegion(cfg.Region))
		}

		awsConfig, err = config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load AWS config: %w", cfgx.ErrSecretStoreUnavailable, err)
		}
	}

	return &Store{
		client: secretsmanager.NewFromConfig(awsConfig),
		region: awsConfig.Region,
	}, nil
}

// GetSecret fetches the current value of the named secret.
//
// Error mapping:
//   - ResourceNotFoundException → cfgx.ErrSecretNotFound
//   - secret exists but holds only binary data → cfgx.ErrMalformedSecret
//   - anything else (throttling, auth, transport) → cfgx.ErrSecretStoreUnavailable
//
// Example:
//
//	payload, err := store.GetSecret(ctx, "FastAPI_S3_Credentials")
//	if err != nil {
//	    log.Fatalf("Failed to fetch secret: %v", err)
//	}
func (s *Store) GetSecret(ctx context.Context, name string) (string, error) {
	result, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return "", cfgx.NewSecretNotFoundError(name)
		}
		return "", fmt.Errorf("%w: failed to get secret %q from Secrets Manager: %w",
			cfgx.ErrSecretStoreUnavailable, name, err)
	}

	if result.SecretString == nil {
		// Binary-only secrets have no string payload to parse.
		return "", fmt.Errorf("%w: secret %q has no string value",
			cfgx.ErrMalformedSecret, name)
	}

	return *result.SecretString, nil
}

// Region returns the AWS region this Secrets Manager store is configured for.
func (s *Store) Region() string {
	return s.region
}
