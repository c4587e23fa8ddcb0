package server

import (
	"testing"
	"time"

	"resumetric/internal/config"
)

type fakeVaultClient struct {
	secrets map[string]*config.VaultSecret
}

func (f *fakeVaultClient) GetSecretV2(path string) (*config.VaultSecret, error) {
	return f.secrets[path], nil
}

func (f *fakeVaultClient) GetStringSecret(path, key string) (string, error) {
	if secret, exists := f.secrets[path]; exists {
		if value, ok := secret.Data[key].(string); ok {
			return value, nil
		}
	}
	return "", nil
}

func (f *fakeVaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	if secret, exists := f.secrets[path]; exists {
		if value, ok := secret.Data[key].([]string); ok {
			return value, nil
		}
	}
	return nil, nil
}

func TestVaultWatcherFetchCertificateData(t *testing.T) {
	client := &fakeVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/tls": {
				Data: map[string]any{
					"cert": "cert-pem",
					"key":  "key-pem",
					"ca":   "ca-pem",
				},
				Version: 1,
			},
		},
	}

	vw := NewVaultWatcher(client, "secret/data/tls", time.Minute, func(*CertificateData, error) {}, nil)

	data, err := vw.fetchCertificateData()
	if err != nil {
		t.Fatalf("fetchCertificateData failed: %v", err)
	}

	if data.CertContent != "cert-pem" {
		t.Errorf("unexpected cert content: %q", data.CertContent)
	}
	if data.KeyContent != "key-pem" {
		t.Errorf("unexpected key content: %q", data.KeyContent)
	}
	if data.CAContent != "ca-pem" {
		t.Errorf("unexpected ca content: %q", data.CAContent)
	}
}

func TestVaultWatcherCheckForUpdates(t *testing.T) {
	client := &fakeVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/tls": {
				Data:    map[string]any{},
				Version: 2,
			},
		},
	}

	vw := NewVaultWatcher(client, "secret/data/tls", time.Minute, func(*CertificateData, error) {}, nil)

	// First check sees version 2 where 0 was recorded
	changed, err := vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if !changed {
		t.Error("expected version change to be detected")
	}

	// Same version again, no change
	changed, err = vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates failed: %v", err)
	}
	if changed {
		t.Error("expected no change on unchanged version")
	}
}

func TestVaultWatcherPollDeliversData(t *testing.T) {
	client := &fakeVaultClient{
		secrets: map[string]*config.VaultSecret{
			"secret/data/tls": {
				Data: map[string]any{
					"cert": "cert-pem",
					"key":  "key-pem",
				},
				Version: 3,
			},
		},
	}

	var got *CertificateData
	vw := NewVaultWatcher(client, "secret/data/tls", time.Minute, func(data *CertificateData, err error) {
		if err != nil {
			t.Errorf("unexpected callback error: %v", err)
			return
		}
		got = data
	}, nil)

	vw.poll()

	if got == nil {
		t.Fatal("expected callback to receive certificate data")
	}
	if got.CertContent != "cert-pem" || got.KeyContent != "key-pem" {
		t.Errorf("unexpected certificate data: %+v", got)
	}
	if got.CAContent != "" {
		t.Errorf("expected empty CA content, got %q", got.CAContent)
	}

	// Second poll sees the same version and must not fire the callback
	got = nil
	vw.poll()
	if got != nil {
		t.Error("expected no callback on unchanged version")
	}
}
