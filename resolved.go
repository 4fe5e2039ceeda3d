package cfgx

import (
	"encoding/json"
	"fmt"
)

// ResolvedConfig is the immutable result of one successful secret resolution.
//
// It holds exactly the three semantic fields the rest of a service needs to
// construct its storage client: access key ID, secret access key, and region.
// The fields are unexported and there are no setters: construct it once at
// startup, pass it explicitly to whatever builds the storage client, and treat
// it as read-only for the remainder of the process lifetime. There is no
// package-level instance.
//
// All formatted representations (String, GoString, MarshalJSON) redact the
// secret access key, so a ResolvedConfig accidentally reaching a logger never
// leaks the credential.
type ResolvedConfig struct {
	accessKeyID     string
	secretAccessKey string
	region          string
}

// NewResolvedConfig assembles a ResolvedConfig from already-resolved values.
//
// Resolve is the normal constructor; this one exists for wiring tests and for
// callers that obtain credentials through some other vetted path. It enforces
// the same invariant Resolve does: credentials must be non-empty and region
// must have a value.
func NewResolvedConfig(accessKeyID, secretAccessKey, region string) (ResolvedConfig, error) {
	if accessKeyID == "" {
		return ResolvedConfig{}, NewMissingCredentialFieldError(FieldAccessKeyID)
	}
	if secretAccessKey == "" {
		return ResolvedConfig{}, NewMissingCredentialFieldError(FieldSecretAccessKey)
	}
	if region == "" {
		region = DefaultRegion
	}
	return ResolvedConfig{
		accessKeyID:     accessKeyID,
		secretAccessKey: secretAccessKey,
		region:          region,
	}, nil
}

// AccessKeyID returns the resolved access key identifier.
func (r ResolvedConfig) AccessKeyID() string { return r.accessKeyID }

// SecretAccessKey returns the resolved secret access key.
//
// Callers should pass the value straight into a credentials provider and avoid
// holding or printing it anywhere else.
func (r ResolvedConfig) SecretAccessKey() string { return r.secretAccessKey }

// Region returns the resolved region. Never empty after successful resolution.
func (r ResolvedConfig) Region() string { return r.region }

// IsZero reports whether r is the zero value, i.e. no resolution succeeded.
func (r ResolvedConfig) IsZero() bool {
	return r.accessKeyID == "" && r.secretAccessKey == "" && r.region == ""
}

// String returns a redacted representation safe for logs and diagnostics.
func (r ResolvedConfig) String() string {
	return fmt.Sprintf("cfgx.ResolvedConfig{AccessKeyID: %q, SecretAccessKey: [REDACTED], Region: %q}",
		redactKeyID(r.accessKeyID), r.region)
}

// GoString implements fmt.GoStringer so %#v cannot leak the secret either.
func (r ResolvedConfig) GoString() string { return r.String() }

// MarshalJSON serializes the redacted representation. The secret access key is
// never part of the output; a ResolvedConfig is not round-trippable through
// JSON on purpose.
func (r ResolvedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AccessKeyID string `json:"access_key_id"`
		Region      string `json:"region"`
	}{
		AccessKeyID: redactKeyID(r.accessKeyID),
		Region:      r.region,
	})
}

// redactKeyID keeps enough of the access key ID to identify which key is in
// use (the first four characters are a vendor prefix like "AKIA") without
// exposing the whole identifier.
func redactKeyID(keyID string) string {
	if len(keyID) <= 4 {
		return keyID
	}
	return keyID[:4] + "****"
}
