package cfgx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigFromEnvironment loads configuration from environment variables.
//
// This function reads configuration from standard environment variables and
// returns a validated Config. It follows the 12-factor app methodology where
// configuration is read from the environment.
//
// Required environment variables:
//   - CFGX_SECRET_NAME: identifier of the secret to resolve
//
// Optional environment variables:
//   - CFGX_REGION_HINT: explicit region hint used when the secret payload
//     omits a region
//
// Returns an error if required variables are missing or validation fails.
//
// Example usage:
//
//	// export CFGX_SECRET_NAME="FastAPI_S3_Credentials"
//	// export CFGX_REGION_HINT="us-east-2"  # optional
//
//	cfg, err := cfgx.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolved, err := cfgx.Resolve(ctx, store, cfg)
func LoadConfigFromEnvironment() (Config, error) {
	secretName := os.Getenv(EnvSecretName)
	if secretName == "" {
		return Config{}, fmt.Errorf("%w: %s environment variable is required", ErrInvalidConfiguration, EnvSecretName)
	}

	cfg := Config{
		SecretName: secretName,
		RegionHint: os.Getenv(EnvRegionHint),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// fileConfig is the on-disk YAML shape read by LoadConfigFromFile.
type fileConfig struct {
	SecretName string `yaml:"secret_name"`
	RegionHint string `yaml:"region_hint"`
}

// LoadConfigFromFile loads configuration from a YAML file.
//
// File format:
//
//	secret_name: FastAPI_S3_Credentials
//	region_hint: us-east-2   # optional
//
// Returns an error if the file cannot be read, is not valid YAML, or fails
// validation.
func LoadConfigFromFile(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: config file not found: %s", ErrInvalidConfiguration, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse config file %s: %w", ErrInvalidConfiguration, path, err)
	}

	cfg := Config{
		SecretName: fc.SecretName,
		RegionHint: fc.RegionHint,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
