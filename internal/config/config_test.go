package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			DefaultLanguage: "en",
			DetectLanguage:  true,
			MaxTextLength:   100_000,
		},
		Server: ServerConfig{
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validTestConfig().Validate())
	})

	t.Run("unsupported default language", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Engine.DefaultLanguage = "ja"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported default language")
	})

	t.Run("all supported languages accepted", func(t *testing.T) {
		for _, lang := range []string{"en", "de", "es", "fr"} {
			cfg := validTestConfig()
			cfg.Engine.DefaultLanguage = lang
			assert.NoError(t, cfg.Validate(), "language %s", lang)
		}
	})

	t.Run("non-positive max text length", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Engine.MaxTextLength = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maxTextLength")
	})

	t.Run("missing server port", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Port = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server port")
	})

	t.Run("default format not in supported formats", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.App.DefaultFormat = "yaml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid default format")
	})
}

func TestApplyServerAPIKeyFallbacks(t *testing.T) {
	t.Run("env keys applied when config empty", func(t *testing.T) {
		t.Setenv("RESUMETRIC_SERVER_APIKEYS", "key-one, key-two ,key-three")
		cfg := validTestConfig()
		cfg.applyServerAPIKeyFallbacks()
		assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.Server.APIKeys)
	})

	t.Run("config keys win over env", func(t *testing.T) {
		t.Setenv("RESUMETRIC_SERVER_APIKEYS", "env-key")
		cfg := validTestConfig()
		cfg.Server.APIKeys = []string{"config-key"}
		cfg.applyServerAPIKeyFallbacks()
		assert.Equal(t, []string{"config-key"}, cfg.Server.APIKeys)
	})
}
