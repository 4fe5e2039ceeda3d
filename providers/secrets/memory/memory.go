// Package memory provides an in-memory cfgx.SecretStore for tests and examples.
//
// The store holds raw payloads keyed by secret name and never touches the
// network, which makes resolver behavior fully testable without AWS or Vault
// access.
package memory

import (
	"context"
	"sync"

	"github.com/hengadev/cfgx"
)

// Store is a map-backed cfgx.SecretStore.
//
// Unlike the real providers it is writable, so tests can seed the payloads
// they need:
//
//	store := memory.New()
//	store.Put("FastAPI_S3_Credentials", `{"AWS_ACCESS_KEY_ID":"AKIA...","AWS_SECRET_ACCESS_KEY":"xyz"}`)
type Store struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		secrets: make(map[string]string),
	}
}

// Put stores a raw payload under name, replacing any existing value.
func (s *Store) Put(name, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[name] = payload
}

// Delete removes the named secret. Deleting a missing secret is a no-op.
func (s *Store) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, name)
}

// GetSecret returns the stored payload, or cfgx.ErrSecretNotFound when the
// name was never Put.
func (s *Store) GetSecret(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.secrets[name]
	if !ok {
		return "", cfgx.NewSecretNotFoundError(name)
	}
	return payload, nil
}
