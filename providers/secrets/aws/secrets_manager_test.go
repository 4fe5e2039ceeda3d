package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/hengadev/cfgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock Secrets Manager client for testing
type mockSecretsManagerClient struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func (m *mockSecretsManagerClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.getSecretValueFunc != nil {
		return m.getSecretValueFunc(ctx, params, optFns...)
	}
	return &secretsmanager.GetSecretValueOutput{}, nil
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		cfg       Config
		checkFunc func(t *testing.T, store *Store)
	}{
		{
			name: "with region specified",
			cfg: Config{
				Region: "us-east-2",
			},
			checkFunc: func(t *testing.T, store *Store) {
				assert.Equal(t, "us-east-2", store.region)
				assert.NotNil(t, store.client)
			},
		},
		{
			name: "with custom AWS config",
			cfg: Config{
				AWSConfig: &awssdk.Config{
					Region: "eu-west-1",
				},
			},
			checkFunc: func(t *testing.T, store *Store) {
				assert.Equal(t, "eu-west-1", store.region)
				assert.NotNil(t, store.client)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(ctx, tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, store)
			if tt.checkFunc != nil {
				tt.checkFunc(t, store)
			}
		})
	}
}

func TestGetSecret(t *testing.T) {
	ctx := context.Background()
	const payload = `{"AWS_ACCESS_KEY_ID":"AKIA","AWS_SECRET_ACCESS_KEY":"xyz","AWS_REGION":"us-east-2"}`

	tests := []struct {
		name       string
		clientFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
		wantErr    error
		want       string
	}{
		{
			name: "returns the secret string",
			clientFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				assert.Equal(t, "FastAPI_S3_Credentials", awssdk.ToString(params.SecretId))
				return &secretsmanager.GetSecretValueOutput{
					SecretString: awssdk.String(payload),
				}, nil
			},
			want: payload,
		},
		{
			name: "resource not found maps to ErrSecretNotFound",
			clientFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return nil, &types.ResourceNotFoundException{
					Message: awssdk.String("Secrets Manager can't find the specified secret."),
				}
			},
			wantErr: cfgx.ErrSecretNotFound,
		},
		{
			name: "transport failure maps to ErrSecretStoreUnavailable",
			clientFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return nil, errors.New("dial tcp: i/o timeout")
			},
			wantErr: cfgx.ErrSecretStoreUnavailable,
		},
		{
			name: "access denied maps to ErrSecretStoreUnavailable",
			clientFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return nil, errors.New("AccessDeniedException: not authorized to perform secretsmanager:GetSecretValue")
			},
			wantErr: cfgx.ErrSecretStoreUnavailable,
		},
		{
			name: "binary-only secret maps to ErrMalformedSecret",
			clientFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return &secretsmanager.GetSecretValueOutput{
					SecretBinary: []byte{0x01, 0x02},
				}, nil
			},
			wantErr: cfgx.ErrMalformedSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &Store{
				client: &mockSecretsManagerClient{getSecretValueFunc: tt.clientFunc},
				region: "us-east-2",
			}

			got, err := store.GetSecret(ctx, "FastAPI_S3_Credentials")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegion(t *testing.T) {
	store := &Store{region: "us-east-2"}
	assert.Equal(t, "us-east-2", store.Region())
}
