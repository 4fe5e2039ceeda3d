package hashicorp

import (
	"encoding/json"
	"testing"

	"github.com/hengadev/cfgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoragePath(t *testing.T) {
	kv := &KVStore{}

	tests := []struct {
		name string
		want string
	}{
		{"FastAPI_S3_Credentials", "secret/data/FastAPI_S3_Credentials"},
		{"myapp/storage-creds", "secret/data/myapp/storage-creds"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, kv.GetStoragePath(tt.name))
	}
}

func TestPayloadFromKV(t *testing.T) {
	t.Run("flat string map serializes to the payload shape", func(t *testing.T) {
		payload, err := payloadFromKV("creds", map[string]interface{}{
			"AWS_ACCESS_KEY_ID":     "AKIA",
			"AWS_SECRET_ACCESS_KEY": "xyz",
			"AWS_REGION":            "us-east-2",
		})
		require.NoError(t, err)

		var fields map[string]string
		require.NoError(t, json.Unmarshal([]byte(payload), &fields))
		assert.Equal(t, map[string]string{
			"AWS_ACCESS_KEY_ID":     "AKIA",
			"AWS_SECRET_ACCESS_KEY": "xyz",
			"AWS_REGION":            "us-east-2",
		}, fields)
	})

	t.Run("non-string value is malformed", func(t *testing.T) {
		_, err := payloadFromKV("creds", map[string]interface{}{
			"AWS_ACCESS_KEY_ID": "AKIA",
			"attempts":          json.Number("3"),
		})
		assert.ErrorIs(t, err, cfgx.ErrMalformedSecret)
	})

	t.Run("nested map is malformed", func(t *testing.T) {
		_, err := payloadFromKV("creds", map[string]interface{}{
			"AWS_ACCESS_KEY_ID": map[string]interface{}{"value": "AKIA"},
		})
		assert.ErrorIs(t, err, cfgx.ErrMalformedSecret)
	})

	t.Run("empty map serializes to an empty object", func(t *testing.T) {
		payload, err := payloadFromKV("creds", map[string]interface{}{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, payload)
	})
}
