package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"resumetric/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *errors.Logger {
	logger, _ := errors.New("debug")
	return logger
}

func TestExtractSecretVersion(t *testing.T) {
	tests := []struct {
		name        string
		data        map[string]interface{}
		expected    int64
		expectError string
	}{
		{
			name: "int64 version",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"version": int64(42)},
			},
			expected: 42,
		},
		{
			name: "float64 version",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"version": float64(42)},
			},
			expected: 42,
		},
		{
			name: "string version",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"version": "42"},
			},
			expected: 42,
		},
		{
			name: "unparseable string version",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"version": "not-a-number"},
			},
			expectError: "could not parse secret version",
		},
		{
			name: "unsupported version type",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"version": []string{"42"}},
			},
			expectError: "unexpected type for version",
		},
		{
			name: "missing metadata",
			data: map[string]interface{}{
				"data": map[string]interface{}{},
			},
			expectError: "missing 'metadata' field",
		},
		{
			name: "missing version field",
			data: map[string]interface{}{
				"metadata": map[string]interface{}{"other": "value"},
			},
			expectError: "missing 'version' field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := extractSecretVersion(&api.Secret{Data: tt.data}, "secret/test")

			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNewVaultBreaker(t *testing.T) {
	logger := newTestLogger()

	t.Run("disabled returns nil", func(t *testing.T) {
		breaker := newVaultBreaker(CircuitBreakerConfig{Enabled: false}, logger)
		assert.Nil(t, breaker)
	})

	t.Run("enabled returns breaker", func(t *testing.T) {
		breaker := newVaultBreaker(CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      3,
			FailureThreshold: 0.6,
		}, logger)
		require.NotNil(t, breaker)
		assert.Equal(t, "Vault-Reads", breaker.Name())
	})

	t.Run("trips after repeated failures", func(t *testing.T) {
		breaker := newVaultBreaker(CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      2,
			FailureThreshold: 0.5,
		}, logger)
		require.NotNil(t, breaker)

		failing := func() (*api.Secret, error) {
			return nil, fmt.Errorf("vault unavailable")
		}
		for range 2 {
			_, err := breaker.Execute(failing)
			assert.Error(t, err)
		}

		_, err := breaker.Execute(failing)
		assert.ErrorContains(t, err, "circuit breaker is open")
	})
}

func TestResolveVaultToken(t *testing.T) {
	logger := newTestLogger()

	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("token from file is trimmed", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "vault-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-token  \n"), 0600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("missing token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token/file"}, logger)
		assert.ErrorContains(t, err, "failed to read vault token file")
	})

	t.Run("no token provided", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, logger)
		assert.ErrorContains(t, err, "vault token is required")
	})

	t.Run("whitespace-only token file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "empty-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("   \n  \n"), 0600))

		_, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.ErrorContains(t, err, "vault token is required")
	})
}

func TestRejectDeprecatedTLSFields(t *testing.T) {
	logger := newTestLogger()

	t.Run("content fields pass", func(t *testing.T) {
		err := rejectDeprecatedTLSFields(&VaultSecret{
			Data: map[string]any{
				"cert": "cert-content",
				"key":  "key-content",
				"ca":   "ca-content",
			},
		}, logger)
		assert.NoError(t, err)
	})

	for _, field := range []string{"cert_file", "key_file", "ca_file"} {
		t.Run(field+" rejected", func(t *testing.T) {
			err := rejectDeprecatedTLSFields(&VaultSecret{
				Data: map[string]any{field: "/path/to/something"},
			}, logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "no longer supported")
		})
	}
}

func TestMaskSecretValue(t *testing.T) {
	assert.Equal(t, "abcd****wxyz", maskSecretValue("abcdefgh-tuvwxyz"))
	assert.Equal(t, "****", maskSecretValue("short"))
	assert.Equal(t, "", maskSecretValue(""))
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	config := &Config{
		Vault: VaultConfig{Enabled: false},
	}

	err := ApplyVaultSecrets(config, newTestLogger())
	assert.NoError(t, err)
	assert.Empty(t, config.Server.APIKeys)
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, newTestLogger())
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestGetSecretV2NilClient(t *testing.T) {
	var vc *VaultClient
	_, err := vc.GetSecretV2("secret/data/anything")
	assert.ErrorContains(t, err, "vault client not initialized")
}
