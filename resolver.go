package cfgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Resolve performs one secret-backed configuration resolution.
//
// It fetches the secret named by cfg.SecretName from store, parses the payload
// as a JSON object of string keys to string values, extracts the two
// credential fields, and resolves the region through the fallback chain
// (payload value, then cfg.RegionHint, then cfg.RegionSources in order, then
// DefaultRegion).
//
// Resolve is meant to run once, synchronously, before the service begins
// accepting requests. It does not cache, does not retry, and never writes to
// the store; on any failure it returns the zero ResolvedConfig and an error
// wrapping exactly one of the stage sentinels:
//
//   - ErrInvalidConfiguration: cfg failed validation (no store call was made)
//   - ErrSecretNotFound: the store has no secret under that name
//   - ErrSecretStoreUnavailable: transport or auth failure contacting the store
//   - ErrMalformedSecret: the payload is not a JSON object of strings
//   - ErrMissingCredentialField: a credential field is absent or empty
//
// Resolution is all-or-nothing: there is no partially resolved state.
//
// Example usage:
//
//	store, err := awssecrets.NewStore(ctx, awssecrets.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolved, err := cfgx.Resolve(ctx, store, cfgx.Config{
//	    SecretName: "FastAPI_S3_Credentials",
//	})
//	if err != nil {
//	    log.Fatal(err) // fail startup; the error names the failed stage
//	}
//	client := s3bucket.NewClient(resolved)
func Resolve(ctx context.Context, store SecretStore, cfg Config) (ResolvedConfig, error) {
	if store == nil {
		return ResolvedConfig{}, fmt.Errorf("%w: secret store cannot be nil", ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return ResolvedConfig{}, err
	}

	raw, err := store.GetSecret(ctx, cfg.SecretName)
	if err != nil {
		if IsFatalResolution(err) {
			return ResolvedConfig{}, err
		}
		// Providers outside this module may return bare transport errors.
		return ResolvedConfig{}, fmt.Errorf("%w: fetching secret %q: %w",
			ErrSecretStoreUnavailable, cfg.SecretName, err)
	}

	fields, err := parsePayload(cfg.SecretName, raw)
	if err != nil {
		return ResolvedConfig{}, err
	}

	// Empty-string credential values are rejected as missing: an empty access
	// key can never authenticate, and failing here names the bad field instead
	// of deferring the failure to the first storage call.
	accessKeyID := fields[FieldAccessKeyID]
	if accessKeyID == "" {
		return ResolvedConfig{}, NewMissingCredentialFieldError(FieldAccessKeyID)
	}
	secretAccessKey := fields[FieldSecretAccessKey]
	if secretAccessKey == "" {
		return ResolvedConfig{}, NewMissingCredentialFieldError(FieldSecretAccessKey)
	}

	region := fields[FieldRegion]
	if region == "" {
		// The chain terminates in StaticRegion(DefaultRegion), so ok can only
		// be false if that invariant is broken.
		var ok bool
		region, ok = cfg.regionSources().Region(ctx)
		if !ok {
			region = DefaultRegion
		}
	}

	return ResolvedConfig{
		accessKeyID:     accessKeyID,
		secretAccessKey: secretAccessKey,
		region:          region,
	}, nil
}

// parsePayload decodes a secret payload into its string-to-string mapping.
// Anything that is not a JSON object with string values (arrays, scalars,
// nested objects, truncated documents) surfaces as ErrMalformedSecret.
func parsePayload(name, raw string) (map[string]string, error) {
	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, NewMalformedSecretError(name, err)
	}
	if fields == nil {
		// "null" decodes without error but carries no mapping.
		return nil, NewMalformedSecretError(name, errors.New("payload is null"))
	}
	return fields, nil
}
