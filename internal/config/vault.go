package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"resumetric/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/sony/gobreaker/v2"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	Secrets VaultSecrets `mapstructure:"secrets"`

	// Circuit breaker for Vault reads
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// VaultSecrets defines where to find secrets in Vault
type VaultSecrets struct {
	// APIKeys expects a single comma-separated string in Vault,
	// e.g. "key1,key2,key3"
	APIKeys  string `mapstructure:"apiKeys"`
	TLSCerts string `mapstructure:"tlsCerts"`
}

// VaultClient wraps the Vault API client
type VaultClient struct {
	client  *api.Client
	config  VaultConfig
	logger  *errors.Logger
	breaker *gobreaker.CircuitBreaker[*api.Secret]
}

// NewVaultClient creates a new Vault client from configuration. Returns
// nil without error when Vault integration is disabled.
func NewVaultClient(config VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !config.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled")
		}
		return nil, nil
	}

	if logger != nil {
		logger.Debug("Initializing Vault client",
			"address", config.Address,
			"namespace", config.Namespace,
			"token_file", config.TokenFile,
			"has_token", config.Token != "")
	}

	client, err := createVaultAPIClient(config, logger)
	if err != nil {
		return nil, err
	}

	token, err := resolveVaultToken(config, logger)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)
	if logger != nil {
		logger.Debug("Vault token configured", "token_prefix", token[:min(len(token), 8)]+"...")
	}

	if err := testVaultConnection(client, config.Address, logger); err != nil {
		return nil, err
	}

	return &VaultClient{
		client:  client,
		config:  config,
		logger:  logger,
		breaker: newVaultBreaker(config.CircuitBreaker, logger),
	}, nil
}

// newVaultBreaker creates the circuit breaker protecting Vault reads.
// Returns nil when the breaker is disabled.
func newVaultBreaker(cfg CircuitBreakerConfig, logger *errors.Logger) *gobreaker.CircuitBreaker[*api.Secret] {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "Vault-Reads",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
	}

	return gobreaker.NewCircuitBreaker[*api.Secret](settings)
}

// createVaultAPIClient creates and configures the Vault API client
func createVaultAPIClient(config VaultConfig, logger *errors.Logger) (*api.Client, error) {
	vaultConfig := api.DefaultConfig()
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to create Vault client")
		}
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
		if logger != nil {
			logger.Debug("Set Vault namespace", "namespace", config.Namespace)
		}
	}

	return client, nil
}

// resolveVaultToken resolves the Vault token from config or file
func resolveVaultToken(config VaultConfig, logger *errors.Logger) (string, error) {
	token := config.Token

	if token == "" && config.TokenFile != "" {
		if logger != nil {
			logger.Debug("Reading Vault token from file", "file", config.TokenFile)
		}
		tokenBytes, err := os.ReadFile(config.TokenFile)
		if err != nil {
			if logger != nil {
				logger.LogError(err, "Failed to read Vault token file", "file", config.TokenFile)
			}
			return "", fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(tokenBytes))
	}

	if token == "" {
		if logger != nil {
			logger.LogError(fmt.Errorf("vault token is required"), "Vault token is required when Vault is enabled")
		}
		return "", fmt.Errorf("vault token is required when vault is enabled")
	}

	return token, nil
}

// testVaultConnection verifies Vault is reachable before use
func testVaultConnection(client *api.Client, address string, logger *errors.Logger) error {
	if logger != nil {
		logger.Debug("Testing Vault connection", "address", address)
	}

	health, err := client.Sys().Health()
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to connect to Vault", "address", address)
		}
		return fmt.Errorf("failed to connect to vault: %w", err)
	}

	if logger != nil {
		logger.Info("Successfully connected to Vault",
			"address", address,
			"version", health.Version,
			"sealed", health.Sealed,
			"cluster_name", health.ClusterName)
	}

	return nil
}

// VaultSecret represents a secret read from Vault's KVv2 engine.
type VaultSecret struct {
	Data    map[string]any
	Version int64
}

// GetSecretV2 retrieves a secret from a Vault KVv2 store.
func (vc *VaultClient) GetSecretV2(path string) (*VaultSecret, error) {
	if vc == nil {
		return nil, fmt.Errorf("vault client not initialized")
	}

	if vc.logger != nil {
		vc.logger.Debug("Reading secret from Vault", "path", path)
	}

	secret, err := vc.readSecretFromVault(path)
	if err != nil {
		return nil, err
	}

	// KVv2 wraps the payload under "data" with versioning under "metadata"
	data, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'data' field)", path)
	}

	version, err := extractSecretVersion(secret, path)
	if err != nil {
		return nil, err
	}

	return &VaultSecret{
		Data:    data,
		Version: version,
	}, nil
}

// readSecretFromVault reads the raw secret from Vault, going through the
// circuit breaker when one is configured
func (vc *VaultClient) readSecretFromVault(path string) (*api.Secret, error) {
	read := func() (*api.Secret, error) {
		secret, err := vc.client.Logical().Read(path)
		if err != nil {
			return nil, err
		}
		if secret == nil || secret.Data == nil {
			return nil, fmt.Errorf("secret not found at path: %s", path)
		}
		return secret, nil
	}

	var secret *api.Secret
	var err error
	if vc.breaker != nil {
		secret, err = vc.breaker.Execute(read)
	} else {
		secret, err = read()
	}
	if err != nil {
		if vc.logger != nil {
			vc.logger.LogError(err, "Failed to read secret from Vault", "path", path)
		}
		return nil, fmt.Errorf("failed to read secret from %s: %w", path, err)
	}

	return secret, nil
}

// extractSecretVersion parses the version from KVv2 metadata. Vault's JSON
// decoding can surface it as a number type or a string.
func extractSecretVersion(secret *api.Secret, path string) (int64, error) {
	metadata, ok := secret.Data["metadata"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("secret at %s is not in KVv2 format (missing 'metadata' field)", path)
	}

	versionRaw, ok := metadata["version"]
	if !ok {
		return 0, fmt.Errorf("secret metadata at %s is missing 'version' field", path)
	}

	switch v := versionRaw.(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		version, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse secret version at %s: %w", path, err)
		}
		return version, nil
	default:
		return 0, fmt.Errorf("unexpected type for version at %s: %T", path, versionRaw)
	}
}

// GetStringSecret retrieves a string value from a Vault secret
func (vc *VaultClient) GetStringSecret(path, key string) (string, error) {
	secret, err := vc.GetSecretV2(path)
	if err != nil {
		return "", err
	}
	value, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in secret %s", key, path)
	}
	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key '%s' is not a string in secret %s", key, path)
	}

	if vc.logger != nil {
		vc.logger.Debug("String secret retrieved from Vault",
			"path", path,
			"key", key,
			"masked_value", maskSecretValue(strValue))
	}

	return strValue, nil
}

// maskSecretValue keeps only the first and last four characters visible
func maskSecretValue(value string) string {
	if len(value) > 8 {
		return value[:4] + "****" + value[len(value)-4:]
	}
	if len(value) > 0 {
		return "****"
	}
	return value
}

// GetStringSliceSecret retrieves a comma-separated string as a slice from Vault
func (vc *VaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	value, err := vc.GetStringSecret(path, key)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return []string{}, nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, len(parts))
	for i, part := range parts {
		result[i] = strings.TrimSpace(part)
	}
	return result, nil
}

// ApplyVaultSecrets loads secrets from Vault and applies them to the config
func ApplyVaultSecrets(config *Config, logger *errors.Logger) error {
	if !config.Vault.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled, skipping secret loading")
		}
		return nil
	}

	if logger != nil {
		logger.Info("Loading secrets from Vault",
			"api_keys_path", config.Vault.Secrets.APIKeys,
			"tls_certs_path", config.Vault.Secrets.TLSCerts)
	}

	client, err := NewVaultClient(config.Vault, logger)
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to initialize Vault client")
		}
		return fmt.Errorf("failed to initialize vault client: %w", err)
	}
	if client == nil {
		return nil
	}

	if err := loadAPIKeysFromVault(client, config, logger); err != nil {
		return err
	}

	if err := loadTLSCertsFromVault(client, config, logger); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("Successfully completed applying secrets from Vault")
	}

	return nil
}

// loadAPIKeysFromVault loads API keys from Vault into the server config
func loadAPIKeysFromVault(client *VaultClient, config *Config, logger *errors.Logger) error {
	path := config.Vault.Secrets.APIKeys
	if path == "" {
		return nil
	}

	if logger != nil {
		logger.Debug("Loading API keys from Vault", "path", path)
	}

	apiKeys, err := client.GetStringSliceSecret(path, "keys")
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to load API keys from Vault", "path", path)
		}
		return fmt.Errorf("failed to load API keys from vault: %w", err)
	}

	if len(apiKeys) == 0 {
		if logger != nil {
			logger.Warn("No API keys found in Vault", "path", path)
		}
		return nil
	}

	config.Server.APIKeys = apiKeys
	if logger != nil {
		logger.Info("API keys loaded from Vault", "count", len(apiKeys))
	}

	return nil
}

// loadTLSCertsFromVault loads TLS certificate content from Vault into the
// server TLS config
func loadTLSCertsFromVault(client *VaultClient, config *Config, logger *errors.Logger) error {
	path := config.Vault.Secrets.TLSCerts
	if path == "" {
		return nil
	}

	if logger != nil {
		logger.Debug("Loading TLS certificates from Vault", "path", path)
	}

	tlsData, err := client.GetSecretV2(path)
	if err != nil {
		if logger != nil {
			logger.LogError(err, "Failed to load TLS certificates from Vault", "path", path)
		}
		return fmt.Errorf("failed to load TLS certificates from vault: %w", err)
	}

	targets := []struct {
		key         string
		target      *string
		description string
	}{
		{"cert", &config.Server.TLS.CertContent, "TLS certificate content"},
		{"key", &config.Server.TLS.KeyContent, "TLS private key content"},
		{"ca", &config.Server.TLS.CAContent, "TLS CA certificate content"},
	}

	certCount := 0
	for _, t := range targets {
		content, ok := tlsData.Data[t.key].(string)
		if !ok || content == "" {
			continue
		}
		*t.target = content
		certCount++
		if logger != nil {
			logger.Debug(t.description+" loaded from Vault", "content_length", len(content))
		}
	}

	if err := rejectDeprecatedTLSFields(tlsData, logger); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("TLS certificates loaded from Vault", "certificates_loaded", certCount)
	}

	return nil
}

// rejectDeprecatedTLSFields fails when the secret still uses file-path
// fields. Only inline content is supported from Vault.
func rejectDeprecatedTLSFields(tlsData *VaultSecret, logger *errors.Logger) error {
	for _, field := range []string{"cert_file", "key_file", "ca_file"} {
		if _, hasField := tlsData.Data[field]; !hasField {
			continue
		}
		content := strings.TrimSuffix(field, "_file")
		if logger != nil {
			logger.LogError(fmt.Errorf("deprecated field detected"),
				fmt.Sprintf("%s field is no longer supported in Vault. Use '%s' field with content instead.", field, content))
		}
		return fmt.Errorf("vault TLS configuration error: '%s' field is no longer supported. Store certificate content in '%s' field instead",
			field, content)
	}

	return nil
}
