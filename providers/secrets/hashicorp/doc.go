// Package hashicorp provides HashiCorp Vault KV v2 integration for cfgx.
//
// This package implements the cfgx.SecretStore interface using Vault's KV v2
// secrets engine, for deployments that keep service credentials in Vault
// rather than a cloud-managed store.
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "github.com/hengadev/cfgx"
//	    vaultsecrets "github.com/hengadev/cfgx/providers/secrets/hashicorp"
//	)
//
//	kv, err := vaultsecrets.NewKVStore()
//	if err != nil {
//	    // handle error
//	}
//
//	resolved, err := cfgx.Resolve(ctx, kv, cfgx.Config{
//	    SecretName: "FastAPI_S3_Credentials",
//	})
//
// # Secret Layout
//
// The KV secret's own key-value pairs are the payload:
//
//	vault kv put secret/FastAPI_S3_Credentials \
//	    AWS_ACCESS_KEY_ID=AKIA... \
//	    AWS_SECRET_ACCESS_KEY=... \
//	    AWS_REGION=us-east-2
//
// # Configuration
//
// The client is configured through the standard Vault environment variables:
// VAULT_ADDR (required), VAULT_NAMESPACE, and either VAULT_TOKEN or the
// VAULT_ROLE_ID/VAULT_SECRET_ID AppRole pair.
//
// # Error Handling
//
// GetSecret returns wrapped errors from the cfgx package:
//
//   - cfgx.ErrSecretNotFound: no secret exists at the requested path
//   - cfgx.ErrSecretStoreUnavailable: transport or authentication failure
//   - cfgx.ErrMalformedSecret: the KV data is not a flat string mapping
//
// For more information, see https://github.com/hengadev/cfgx
package hashicorp
