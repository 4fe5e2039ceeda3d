package cfgx

// Secret payload field names.
//
// These match the key names a migrated service writes into its secret record,
// which in turn match the environment variable names the pre-migration service
// hardcoded. The resolver looks the fields up by these exact names.
const (
	// FieldAccessKeyID is the payload key holding the access key identifier.
	FieldAccessKeyID = "AWS_ACCESS_KEY_ID"

	// FieldSecretAccessKey is the payload key holding the secret access key.
	FieldSecretAccessKey = "AWS_SECRET_ACCESS_KEY"

	// FieldRegion is the payload key holding the service region.
	// Optional: when absent the resolver falls back to the ambient region
	// hint and finally to DefaultRegion.
	FieldRegion = "AWS_REGION"
)

// DefaultRegion is the terminal fallback when neither the secret payload nor
// any configured region source yields a region.
const DefaultRegion = "us-east-2"

// Environment variable names
const (
	// EnvSecretName is the environment variable name for the secret to resolve.
	// Example: "FastAPI_S3_Credentials" or "myapp/prod/storage-creds"
	EnvSecretName = "CFGX_SECRET_NAME"

	// EnvRegionHint is the environment variable name for an explicit region
	// hint. Optional; takes precedence over the ambient session region.
	// Example: "eu-west-1"
	EnvRegionHint = "CFGX_REGION_HINT"
)

// Secret name constraints
const (
	// MaxSecretNameLength is the maximum allowed length for a secret name.
	// This prevents excessively long identifiers that could cause issues with
	// the underlying store APIs.
	MaxSecretNameLength = 512
)
