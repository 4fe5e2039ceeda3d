package cfgx

import "context"

// SecretStore defines the narrow read contract the resolver depends on.
//
// This interface is implemented by secret store providers (AWS Secrets Manager,
// HashiCorp Vault KV v2, in-memory store for testing, etc.). The resolver only
// ever reads: creating and updating secret records is an out-of-band operator
// action, so no write methods exist on this interface.
//
// Implementations:
//   - AWS Secrets Manager: github.com/hengadev/cfgx/providers/secrets/aws.Store
//   - HashiCorp Vault KV v2: github.com/hengadev/cfgx/providers/secrets/hashicorp.KVStore
//   - In-Memory (testing): github.com/hengadev/cfgx/providers/secrets/memory.Store
//
// Example usage:
//
//	import awssecrets "github.com/hengadev/cfgx/providers/secrets/aws"
//
//	store, err := awssecrets.NewStore(ctx, awssecrets.Config{Region: "us-east-2"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resolved, err := cfgx.Resolve(ctx, store, cfg)
type SecretStore interface {
	// GetSecret returns the current raw payload of the named secret.
	//
	// Error contract (enforced by every provider in this module):
	//   - ErrSecretNotFound when the store has no secret under that name
	//   - ErrSecretStoreUnavailable on transport or authentication failure
	//   - ErrMalformedSecret when the stored value cannot be represented as a
	//     string payload (e.g. a binary-only secret)
	//
	// Implementations must honor ctx cancellation so a hung store surfaces as
	// an error rather than blocking startup indefinitely.
	GetSecret(ctx context.Context, name string) (string, error)
}

// RegionSource supplies a fallback region when the secret payload omits one.
//
// Sources are evaluated in order by the resolver; the first source to report
// ok wins. Absence is a normal, non-error condition, which is why the second
// return is a bool rather than an error. Implementations should be pure with
// respect to their inputs so each one is independently testable.
//
// Implementations:
//   - StaticRegion: always yields a fixed value
//   - AmbientRegion: yields the execution environment's default session region
//   - RegionChain: composes other sources in order
type RegionSource interface {
	// Region returns a region and true, or "" and false when this source has
	// nothing to offer.
	Region(ctx context.Context) (string, bool)
}
