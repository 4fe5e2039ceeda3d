package cfgx

import (
	"fmt"
	"strings"
)

// Config holds the inputs for one configuration resolution.
//
// This struct contains only data, no behavior. It can be loaded from any
// source (environment variables, a YAML file, code) and passed explicitly to
// Resolve.
//
// Required fields:
//   - SecretName: the identifier of the secret to fetch
//
// Optional fields:
//   - RegionHint: explicit ambient-region hint, consulted when the payload
//     omits a region
//   - RegionSources: additional fallback sources consulted after the hint
//
// Example usage:
//
//	cfg := cfgx.Config{
//	    SecretName: "FastAPI_S3_Credentials",
//	    RegionHint: "us-east-2",
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	resolved, err := cfgx.Resolve(ctx, store, cfg)
type Config struct {
	// SecretName identifies the secret record in the store.
	//
	// The format depends on the store provider:
	//   - AWS Secrets Manager: secret name or full ARN
	//   - HashiCorp Vault KV v2: path below the mount (e.g. "myapp/storage-creds")
	//
	// Required field. Maximum length: 512 characters.
	SecretName string

	// RegionHint is an explicit region to prefer when the secret payload has
	// no region field. It is consulted before RegionSources and before the
	// hardcoded default.
	RegionHint string

	// RegionSources are fallback providers evaluated in order after the hint
	// when the payload omits a region. Leave nil to consult only the hint and
	// the default. Use cfgx.AmbientRegion() here to adopt the execution
	// environment's default session region.
	RegionSources []RegionSource
}

// Option represents a configuration option for building a Config.
type Option func(*Config) error

// WithSecretName sets the name of the secret to resolve.
func WithSecretName(name string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: secret name cannot be empty or whitespace only", ErrInvalidConfiguration)
		}
		c.SecretName = strings.TrimSpace(name)
		return nil
	}
}

// WithRegionHint sets an explicit ambient-region hint.
func WithRegionHint(region string) Option {
	return func(c *Config) error {
		c.RegionHint = strings.TrimSpace(region)
		return nil
	}
}

// WithRegionSources sets the fallback region sources consulted after the hint.
func WithRegionSources(sources ...RegionSource) Option {
	return func(c *Config) error {
		for i, src := range sources {
			if src == nil {
				return fmt.Errorf("%w: region source at index %d is nil", ErrInvalidConfiguration, i)
			}
		}
		c.RegionSources = sources
		return nil
	}
}

// NewConfig builds a Config from options and validates it.
func NewConfig(opts ...Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
