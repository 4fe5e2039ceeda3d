package cfgx

import (
	"fmt"
	"strings"
)

// Validate checks that the Config can drive a resolution.
//
// Rules:
//   - SecretName is required, at most MaxSecretNameLength characters, and
//     limited to characters the store APIs accept in identifiers
//   - RegionSources must not contain nil entries
//
// Validate does not touch the network; ambient sources are only consulted
// during Resolve, and only when the payload omits a region.
func (c Config) Validate() error {
	name := strings.TrimSpace(c.SecretName)
	if name == "" {
		return fmt.Errorf("%w: secret name is required", ErrInvalidConfiguration)
	}
	if len(name) > MaxSecretNameLength {
		return fmt.Errorf("%w: secret name too long: maximum %d characters, got %d",
			ErrInvalidConfiguration, MaxSecretNameLength, len(name))
	}
	for _, char := range name {
		if !isValidSecretNameChar(char) {
			return fmt.Errorf("%w: secret name contains invalid character %q: only alphanumeric, '/', '_', '+', '=', '.', '@', '-', ':' allowed",
				ErrInvalidConfiguration, char)
		}
	}

	for i, src := range c.RegionSources {
		if src == nil {
			return fmt.Errorf("%w: region source at index %d is nil", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// isValidSecretNameChar reports whether char is allowed in a secret name.
// The set matches what Secrets Manager accepts in names and ARNs, which is a
// superset of what the Vault KV provider needs.
func isValidSecretNameChar(char rune) bool {
	switch {
	case char >= 'a' && char <= 'z':
		return true
	case char >= 'A' && char <= 'Z':
		return true
	case char >= '0' && char <= '9':
		return true
	}
	switch char {
	case '/', '_', '+', '=', '.', '@', '-', ':':
		return true
	}
	return false
}

// regionSources returns the effective fallback chain for this Config:
// the explicit hint first, then any configured sources, then the hardcoded
// default. The terminal StaticRegion(DefaultRegion) guarantees the chain can
// never come up empty, so a resolved region always has a value.
func (c Config) regionSources() RegionSource {
	sources := make([]RegionSource, 0, len(c.RegionSources)+2)
	sources = append(sources, StaticRegion(c.RegionHint))
	sources = append(sources, c.RegionSources...)
	sources = append(sources, StaticRegion(DefaultRegion))
	return RegionChain(sources...)
}
