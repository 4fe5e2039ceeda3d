// Package cfgx resolves service configuration from a managed secret store at
// process startup.
//
// cfgx replaces hardcoded credentials with a single synchronous lookup: fetch
// a named secret, parse its payload as a string-to-string mapping, and expose
// the three semantic fields a service needs to construct its storage client —
// access key ID, secret access key, and region — as one immutable
// ResolvedConfig value.
//
// # Key Features
//
//   - Single read at startup: no caching, no rotation, no background refresh
//   - Pluggable stores: AWS Secrets Manager, HashiCorp Vault KV v2, in-memory
//   - Explicit region fallback chain: payload, hint, ambient session, default
//   - Immutable result passed by value, never held in package state
//   - Redacted formatting so resolved credentials cannot leak through logs
//   - Stage-identifying error taxonomy for clear startup diagnostics
//
// # Quick Start
//
//	store, err := awssecrets.NewStore(ctx, awssecrets.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolved, err := cfgx.Resolve(ctx, store, cfgx.Config{
//	    SecretName: "FastAPI_S3_Credentials",
//	})
//	if err != nil {
//	    log.Fatal(err) // ErrSecretNotFound, ErrSecretStoreUnavailable,
//	                   // ErrMalformedSecret or ErrMissingCredentialField
//	}
//
//	client := s3bucket.NewClient(resolved)
//
// # Secret Payload
//
// The secret's value is a JSON object of string keys to string values:
//
//	{
//	    "AWS_ACCESS_KEY_ID": "AKIA...",
//	    "AWS_SECRET_ACCESS_KEY": "...",
//	    "AWS_REGION": "us-east-2"
//	}
//
// AWS_REGION is optional. When absent, the region comes from the first
// fallback source that yields one: the configured hint, then any
// RegionSources on the Config (AmbientRegion adopts the environment's default
// session region), then the hardcoded DefaultRegion.
//
// # Error Handling
//
// Every resolution failure wraps exactly one sentinel identifying the failed
// stage: ErrSecretNotFound (lookup), ErrSecretStoreUnavailable (transport),
// ErrMalformedSecret (parsing), ErrMissingCredentialField (extraction), or
// ErrInvalidConfiguration (bad input, no store call made). All are fatal to
// startup; resolution is all-or-nothing.
//
// # Testing
//
// The memory provider gives tests a SecretStore without network access:
//
//	store := memory.New()
//	store.Put("FastAPI_S3_Credentials", `{"AWS_ACCESS_KEY_ID":"AKIA...","AWS_SECRET_ACCESS_KEY":"xyz"}`)
//	resolved, err := cfgx.Resolve(ctx, store, cfgx.Config{SecretName: "FastAPI_S3_Credentials"})
package cfgx
