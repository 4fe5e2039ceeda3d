package hashicorp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/vault/api"
	"github.com/hengadev/cfgx"
)

// KVStore implements cfgx.SecretStore using HashiCorp Vault KV v2 Engine.
//
// The KV secret's key-value pairs are the payload: a secret written as
//
//	vault kv put secret/FastAPI_S3_Credentials \
//	    AWS_ACCESS_KEY_ID=AKIA... AWS_SECRET_ACCESS_KEY=... AWS_REGION=us-east-2
//
// resolves exactly like the equivalent JSON document in Secrets Manager.
type KVStore struct {
	client *api.Client
}

// NewKVStore creates a new KVStore instance.
//
// The client uses environment variables for configuration (see createVaultClient).
//
// Usage:
//
//	kv, err := hashicorp.NewKVStore()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The KV v2 engine must be enabled in Vault before use:
//
//	vault secrets enable -path=secret kv-v2
func NewKVStore() (*KVStore, error) {
	client, err := createVaultClient()
	if err != nil {
		return nil, err
	}

	return &KVStore{
		client: client,
	}, nil
}

// GetStoragePath returns the Vault KV v2 path for a given secret name.
//
// Path format: "secret/data/{name}"
//
// Note: The "/data/" segment is required for KV v2 API reads.
//
// Examples:
//   - name "FastAPI_S3_Credentials" → "secret/data/FastAPI_S3_Credentials"
//   - name "myapp/storage-creds" → "secret/data/myapp/storage-creds"
func (k *KVStore) GetStoragePath(name string) string {
	return fmt.Sprintf("secret/data/%s", name)
}

// GetSecret fetches the named KV v2 secret and returns its key-value pairs
// serialized as a JSON object, the payload shape the resolver parses.
//
// Example:
//
//	payload, err := kv.GetSecret(ctx, "FastAPI_S3_Credentials")
//	if err != nil {
//	    log.Fatalf("Failed to fetch secret: %v", err)
//	}
func (k *KVStore) GetSecret(ctx context.Context, name string) (string, error) {
	path := k.GetStoragePath(name)

	secret, err := k.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read secret %q from Vault KV: %w",
			cfgx.ErrSecretStoreUnavailable, name, err)
	}

	// A nil secret with a nil error means the path does not exist.
	if secret == nil || secret.Data == nil {
		return "", cfgx.NewSecretNotFoundError(name)
	}

	// KV v2 wraps the actual data in a "data" key
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: invalid KV v2 secret format at %s",
			cfgx.ErrMalformedSecret, path)
	}

	return payloadFromKV(name, data)
}

// payloadFromKV serializes a KV v2 data map into the JSON object payload the
// resolver expects. Non-string values make the payload malformed rather than
// being silently stringified.
func payloadFromKV(name string, data map[string]interface{}) (string, error) {
	fields := make(map[string]string, len(data))
	for key, value := range data {
		str, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("%w: secret %q field %q is not a string",
				cfgx.ErrMalformedSecret, name, key)
		}
		fields[key] = str
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize secret %q: %w",
			cfgx.ErrMalformedSecret, name, err)
	}

	return string(payload), nil
}
