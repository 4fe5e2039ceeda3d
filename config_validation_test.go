package cfgx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid minimal config",
			cfg:  Config{SecretName: "FastAPI_S3_Credentials"},
		},
		{
			name: "valid with hint and sources",
			cfg: Config{
				SecretName:    "myapp/prod/storage-creds",
				RegionHint:    "us-east-2",
				RegionSources: []RegionSource{StaticRegion("eu-west-1")},
			},
		},
		{
			name: "valid ARN-style name",
			cfg:  Config{SecretName: "arn:aws:secretsmanager:us-east-2:123456789012:secret:creds-AbCdEf"},
		},
		{
			name:    "empty secret name",
			cfg:     Config{},
			wantErr: true,
			errMsg:  "secret name is required",
		},
		{
			name:    "whitespace-only secret name",
			cfg:     Config{SecretName: "   "},
			wantErr: true,
			errMsg:  "secret name is required",
		},
		{
			name:    "secret name too long",
			cfg:     Config{SecretName: strings.Repeat("a", MaxSecretNameLength+1)},
			wantErr: true,
			errMsg:  "too long",
		},
		{
			name:    "secret name with invalid character",
			cfg:     Config{SecretName: "creds with spaces"},
			wantErr: true,
			errMsg:  "invalid character",
		},
		{
			name:    "nil region source",
			cfg:     Config{SecretName: "creds", RegionSources: []RegionSource{nil}},
			wantErr: true,
			errMsg:  "region source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("builds and validates", func(t *testing.T) {
		cfg, err := NewConfig(
			WithSecretName("  FastAPI_S3_Credentials  "),
			WithRegionHint("us-east-2"),
			WithRegionSources(StaticRegion("eu-west-1")),
		)
		require.NoError(t, err)
		assert.Equal(t, "FastAPI_S3_Credentials", cfg.SecretName)
		assert.Equal(t, "us-east-2", cfg.RegionHint)
		assert.Len(t, cfg.RegionSources, 1)
	})

	t.Run("empty secret name rejected by option", func(t *testing.T) {
		_, err := NewConfig(WithSecretName(""))
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("nil region source rejected by option", func(t *testing.T) {
		_, err := NewConfig(WithSecretName("creds"), WithRegionSources(nil))
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("no options fails validation", func(t *testing.T) {
		_, err := NewConfig()
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}
