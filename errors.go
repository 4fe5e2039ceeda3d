package cfgx

import (
	"errors"
	"fmt"
)

var (
	// Resolution stage errors. Each one identifies the stage that failed:
	// lookup, transport, parsing, or field extraction. All of them are fatal
	// to startup; none are retried or recovered by this package.

	// ErrSecretNotFound indicates the store has no secret under the requested name.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretStoreUnavailable indicates a transport or authentication failure
	// contacting the secret store.
	ErrSecretStoreUnavailable = errors.New("secret store unavailable")

	// ErrMalformedSecret indicates the secret payload is not a valid
	// string-to-string mapping.
	ErrMalformedSecret = errors.New("malformed secret payload")

	// ErrMissingCredentialField indicates a required credential field is absent
	// (or empty) in an otherwise well-formed payload.
	ErrMissingCredentialField = errors.New("missing credential field")

	// ErrInvalidConfiguration indicates a bad Config was supplied before any
	// store call was made.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func NewSecretNotFoundError(name string) error {
	return fmt.Errorf("%w: no secret named %q", ErrSecretNotFound, name)
}

func NewMissingCredentialFieldError(field string) error {
	return fmt.Errorf("%w: %q is required and must be non-empty", ErrMissingCredentialField, field)
}

func NewMalformedSecretError(name string, cause error) error {
	return fmt.Errorf("%w: secret %q is not a JSON object of strings: %w", ErrMalformedSecret, name, cause)
}

// IsFatalResolution reports whether err belongs to the resolution error
// taxonomy. Every taxonomy member is fatal to startup, so this is mainly
// useful for distinguishing resolver failures from unrelated errors in
// callers that compose several startup steps.
func IsFatalResolution(err error) bool {
	return errors.Is(err, ErrSecretNotFound) ||
		errors.Is(err, ErrSecretStoreUnavailable) ||
		errors.Is(err, ErrMalformedSecret) ||
		errors.Is(err, ErrMissingCredentialField) ||
		errors.Is(err, ErrInvalidConfiguration)
}
