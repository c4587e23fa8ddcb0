package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	"resumetric/internal/config"
	"resumetric/internal/errors"
	"resumetric/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CertificateManager holds the live TLS certificates and swaps them in place
// when a watcher reports new material.
type CertificateManager struct {
	mu sync.RWMutex

	serverCert *tls.Certificate
	clientCert *tls.Certificate
	caCertPool *x509.CertPool

	serverCertExpiry time.Time
	clientCertExpiry time.Time
	lastReloadTime   time.Time

	fileWatcher  *CertWatcher
	vaultWatcher *VaultWatcher

	config           *config.TLSConfig
	autoReloadConfig *config.AutoReloadConfig
	vaultClient      VaultClientInterface

	reloadCallbacks []ReloadCallback
	logger          *errors.Logger

	observabilityManager *observability.ObservabilityManager

	reloadCount        int64
	reloadSuccessCount int64
	reloadFailureCount int64
	lastReloadSuccess  bool
	lastReloadError    string
}

// ReloadCallback is called after each reload attempt
type ReloadCallback func(success bool, err error)

// CertificateMetrics holds counters about certificate reload activity
type CertificateMetrics struct {
	ReloadCount        int64
	ReloadSuccessCount int64
	ReloadFailureCount int64
	LastReloadTime     time.Time
	LastReloadSuccess  bool
	LastReloadError    string
}

// NewCertificateManager creates a new certificate manager
func NewCertificateManager(tlsConfig *config.TLSConfig, autoReloadConfig *config.AutoReloadConfig, vaultClient VaultClientInterface, om *observability.ObservabilityManager, logger *errors.Logger) *CertificateManager {
	return &CertificateManager{
		config:               tlsConfig,
		autoReloadConfig:     autoReloadConfig,
		vaultClient:          vaultClient,
		logger:               logger,
		reloadCallbacks:      make([]ReloadCallback, 0),
		observabilityManager: om,
	}
}

// Start loads the initial certificates and launches the configured watchers
func (cm *CertificateManager) Start() error {
	if err := cm.loadCertificates(); err != nil {
		return fmt.Errorf("failed to load initial certificates: %w", err)
	}

	cm.StartExpiryMonitoring()

	if err := cm.startFileWatcher(); err != nil {
		return err
	}

	return cm.startVaultWatcher()
}

// startFileWatcher starts the file watcher when enabled and certificates
// come from files
func (cm *CertificateManager) startFileWatcher() error {
	if cm.autoReloadConfig == nil || !cm.autoReloadConfig.FileWatcher.Enabled {
		return nil
	}

	if cm.config.CertFile == "" && cm.config.KeyFile == "" && cm.config.CAFile == "" {
		return nil
	}

	watcher, err := NewCertWatcher(
		cm.config.CertFile,
		cm.config.KeyFile,
		cm.config.CAFile,
		cm.autoReloadConfig.FileWatcher.DebounceDelay,
		cm.triggerReload,
		cm.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	cm.fileWatcher = watcher
	if err := cm.fileWatcher.Start(); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	if cm.logger != nil {
		cm.logger.Info("Certificate file watcher started",
			"cert_file", cm.config.CertFile,
			"key_file", cm.config.KeyFile,
			"ca_file", cm.config.CAFile)
	}

	return nil
}

// startVaultWatcher starts the Vault watcher when enabled and certificates
// come from inline content
func (cm *CertificateManager) startVaultWatcher() error {
	if cm.autoReloadConfig == nil || !cm.autoReloadConfig.VaultWatcher.Enabled {
		return nil
	}
	if cm.config.CertContent == "" && cm.config.KeyContent == "" && cm.config.CAContent == "" {
		return nil
	}
	if cm.vaultClient == nil {
		if cm.logger != nil {
			cm.logger.Warn("Vault watcher enabled but Vault client is nil")
		}
		return nil
	}

	cm.vaultWatcher = NewVaultWatcher(
		cm.vaultClient,
		cm.autoReloadConfig.VaultWatcher.SecretPath,
		cm.autoReloadConfig.VaultWatcher.PollInterval,
		cm.applyVaultCertificates,
		cm.logger,
	)
	if err := cm.vaultWatcher.Start(); err != nil {
		return fmt.Errorf("failed to start Vault watcher: %w", err)
	}

	if cm.logger != nil {
		cm.logger.Info("Vault watcher started",
			"secret_path", cm.autoReloadConfig.VaultWatcher.SecretPath,
			"poll_interval", cm.autoReloadConfig.VaultWatcher.PollInterval)
	}

	return nil
}

// applyVaultCertificates stores new certificate material from Vault and
// reloads. Empty fields keep their previous value.
func (cm *CertificateManager) applyVaultCertificates(data *CertificateData, err error) {
	if err != nil {
		if cm.logger != nil {
			cm.logger.LogError(err, "Failed to fetch new certificate data from Vault")
		}
		return
	}

	cm.mu.Lock()
	if data.CertContent != "" {
		cm.config.CertContent = data.CertContent
	}
	if data.KeyContent != "" {
		cm.config.KeyContent = data.KeyContent
	}
	if data.CAContent != "" {
		cm.config.CAContent = data.CAContent
	}
	cm.mu.Unlock()

	cm.triggerReload()
}

// Stop stops the certificate manager and all watchers
func (cm *CertificateManager) Stop() error {
	if cm.fileWatcher != nil {
		if err := cm.fileWatcher.Stop(); err != nil {
			if cm.logger != nil {
				cm.logger.LogError(err, "Failed to stop file watcher")
			}
			return err
		}
	}
	if cm.vaultWatcher != nil {
		if err := cm.vaultWatcher.Stop(); err != nil {
			if cm.logger != nil {
				cm.logger.LogError(err, "Failed to stop Vault watcher")
			}
			return err
		}
	}
	if cm.logger != nil {
		cm.logger.Info("Certificate manager stopped")
	}
	return nil
}

// GetServerCertificate returns the current server certificate for TLS handshakes
func (cm *CertificateManager) GetServerCertificate(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.serverCert == nil {
		return nil, fmt.Errorf("no server certificate available")
	}

	if time.Now().After(cm.serverCertExpiry) {
		if cm.logger != nil {
			cm.logger.LogError(fmt.Errorf("server certificate expired"), "Server certificate expired",
				"expiry", cm.serverCertExpiry,
				"server_name", hello.ServerName)
		}
		return nil, fmt.Errorf("server certificate expired")
	}

	// Kick off a renewal in the background when inside the renewal window
	if cm.autoReloadConfig != nil && cm.autoReloadConfig.PreemptiveRenewal > 0 {
		renewalTime := cm.serverCertExpiry.Add(-cm.autoReloadConfig.PreemptiveRenewal)
		if time.Now().After(renewalTime) {
			go cm.triggerPreemptiveRenewal()
		}
	}

	return cm.serverCert, nil
}

// GetClientCertificate returns the current client certificate
func (cm *CertificateManager) GetClientCertificate() (*tls.Certificate, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.clientCert == nil {
		return nil, fmt.Errorf("no client certificate available")
	}

	if time.Now().After(cm.clientCertExpiry) {
		if cm.logger != nil {
			cm.logger.LogError(fmt.Errorf("client certificate expired"), "Client certificate expired", "expiry", cm.clientCertExpiry)
		}
		return nil, fmt.Errorf("client certificate expired")
	}

	return cm.clientCert, nil
}

// GetCACertPool returns the current CA certificate pool
func (cm *CertificateManager) GetCACertPool() *x509.CertPool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.caCertPool
}

// VerifyPeerCertificate verifies peer certificates against the current CA pool
func (cm *CertificateManager) VerifyPeerCertificate(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
	if len(rawCerts) == 0 {
		return fmt.Errorf("no peer certificates provided")
	}

	cert, err := x509.ParseCertificate(rawCerts[0])
	if err != nil {
		return fmt.Errorf("failed to parse peer certificate: %w", err)
	}

	caCertPool := cm.GetCACertPool()
	if caCertPool == nil {
		return fmt.Errorf("no CA certificate pool available")
	}

	if _, err := cert.Verify(x509.VerifyOptions{Roots: caCertPool}); err != nil {
		return fmt.Errorf("peer certificate verification failed: %w", err)
	}

	return nil
}

// ReloadCertificates manually triggers a certificate reload
func (cm *CertificateManager) ReloadCertificates() error {
	return cm.loadCertificates()
}

// AddReloadCallback registers a callback invoked after each reload attempt
func (cm *CertificateManager) AddReloadCallback(callback ReloadCallback) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.reloadCallbacks = append(cm.reloadCallbacks, callback)
}

// CheckExpiry returns the time until the earliest certificate expires
func (cm *CertificateManager) CheckExpiry() (time.Duration, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	var earliestExpiry time.Time

	if !cm.serverCertExpiry.IsZero() {
		earliestExpiry = cm.serverCertExpiry
	}

	if !cm.clientCertExpiry.IsZero() && (earliestExpiry.IsZero() || cm.clientCertExpiry.Before(earliestExpiry)) {
		earliestExpiry = cm.clientCertExpiry
	}

	if earliestExpiry.IsZero() {
		return 0, fmt.Errorf("no certificates loaded")
	}

	return time.Until(earliestExpiry), nil
}

// GetMetrics returns certificate management metrics
func (cm *CertificateManager) GetMetrics() *CertificateMetrics {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return &CertificateMetrics{
		ReloadCount:        cm.reloadCount,
		ReloadSuccessCount: cm.reloadSuccessCount,
		ReloadFailureCount: cm.reloadFailureCount,
		LastReloadTime:     cm.lastReloadTime,
		LastReloadSuccess:  cm.lastReloadSuccess,
		LastReloadError:    cm.lastReloadError,
	}
}

// loadCertificates loads all configured certificates and swaps them in under
// the lock
func (cm *CertificateManager) loadCertificates() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	newServerCert, err := cm.loadServerCertificate()
	if err != nil {
		return err
	}

	newCACertPool, err := cm.loadCACertPool()
	if err != nil {
		return err
	}

	cm.serverCert = newServerCert
	cm.clientCert = nil
	cm.caCertPool = newCACertPool
	cm.lastReloadTime = time.Now()

	cm.updateReloadMetrics(true, nil)
	cm.callReloadCallbacks(true, nil)

	if cm.logger != nil {
		cm.logger.Info("Certificates reloaded successfully",
			"server_cert_expiry", cm.serverCertExpiry,
			"reload_time", cm.lastReloadTime)
	}

	return nil
}

// loadServerCertificate loads the server key pair, preferring inline content
// over files, and records its expiry. Returns nil when neither source is
// configured.
func (cm *CertificateManager) loadServerCertificate() (*tls.Certificate, error) {
	var cert tls.Certificate
	var err error

	switch {
	case cm.config.CertContent != "" && cm.config.KeyContent != "":
		cert, err = tls.X509KeyPair([]byte(cm.config.CertContent), []byte(cm.config.KeyContent))
	case cm.config.CertFile != "" && cm.config.KeyFile != "":
		cert, err = tls.LoadX509KeyPair(cm.config.CertFile, cm.config.KeyFile)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(cert.Certificate) > 0 {
		x509Cert, err := x509.ParseCertificate(cert.Certificate[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse server certificate: %w", err)
		}
		cm.serverCertExpiry = x509Cert.NotAfter
	}

	return &cert, nil
}

// loadCACertPool builds the CA pool for mutual TLS. Returns nil outside
// mutual mode or when no CA source is configured.
func (cm *CertificateManager) loadCACertPool() (*x509.CertPool, error) {
	if cm.config.Mode != "mutual" {
		return nil, nil
	}

	var caCert []byte
	if cm.config.CAContent != "" {
		caCert = []byte(cm.config.CAContent)
	} else if cm.config.CAFile != "" {
		data, err := os.ReadFile(cm.config.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		caCert = data
	}

	if len(caCert) == 0 {
		return nil, nil
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}
	return caCertPool, nil
}

// updateReloadMetrics updates the internal reload counters
func (cm *CertificateManager) updateReloadMetrics(success bool, err error) {
	cm.reloadCount++
	if success {
		cm.reloadSuccessCount++
		cm.lastReloadSuccess = true
		cm.lastReloadError = ""
	} else {
		cm.reloadFailureCount++
		cm.lastReloadSuccess = false
		if err != nil {
			cm.lastReloadError = err.Error()
		}
	}

	cm.recordMetrics(success, err)
}

// callReloadCallbacks invokes all registered reload callbacks
func (cm *CertificateManager) callReloadCallbacks(success bool, err error) {
	for _, callback := range cm.reloadCallbacks {
		go callback(success, err)
	}
}

// triggerReload is called by watchers when certificate material changes
func (cm *CertificateManager) triggerReload() {
	if cm.logger != nil {
		cm.logger.Info("Certificate reload triggered by watcher")
	}

	if err := cm.loadCertificates(); err != nil {
		cm.handleReloadError(err)
	}
}

// handleReloadError records a failed reload and notifies callbacks
func (cm *CertificateManager) handleReloadError(err error) {
	cm.mu.Lock()
	cm.reloadCount++
	cm.reloadFailureCount++
	cm.lastReloadSuccess = false
	cm.lastReloadError = err.Error()
	cm.mu.Unlock()

	cm.recordMetrics(false, err)

	if cm.logger != nil {
		cm.logger.LogError(err, "Failed to reload certificates")
	}

	cm.mu.RLock()
	callbacks := make([]ReloadCallback, len(cm.reloadCallbacks))
	copy(callbacks, cm.reloadCallbacks)
	cm.mu.RUnlock()

	for _, callback := range callbacks {
		go callback(false, err)
	}
}

// triggerPreemptiveRenewal reloads certificates ahead of expiry. With
// file-based certificates this just re-reads the files; issuing a fresh
// certificate is the responsibility of whatever writes them.
func (cm *CertificateManager) triggerPreemptiveRenewal() {
	if cm.logger != nil {
		cm.logger.Info("Triggering preemptive certificate renewal")
	}

	cm.triggerReload()
}

// recordMetrics records certificate reload metrics to OpenTelemetry
func (cm *CertificateManager) recordMetrics(success bool, err error) {
	if cm.observabilityManager == nil {
		return
	}

	metrics := cm.observabilityManager.GetMetrics()
	if metrics == nil {
		return
	}

	ctx := context.Background()

	attrs := []attribute.KeyValue{
		attribute.String("cert_type", "server"),
	}
	if success {
		attrs = append(attrs, attribute.String("status", "success"))
	} else {
		errorMsg := ""
		if err != nil {
			errorMsg = err.Error()
		}
		attrs = append(attrs,
			attribute.String("status", "failure"),
			attribute.String("error", errorMsg))
	}
	metrics.CertReloadCount.Add(ctx, 1, metric.WithAttributes(attrs...))

	cm.updateExpiryMetrics()
}

// updateExpiryMetrics refreshes the seconds-to-expiry gauges
func (cm *CertificateManager) updateExpiryMetrics() {
	if cm.observabilityManager == nil {
		return
	}

	metrics := cm.observabilityManager.GetMetrics()
	if metrics == nil {
		return
	}

	ctx := context.Background()

	if !cm.serverCertExpiry.IsZero() {
		metrics.CertExpiryTime.Record(ctx, time.Until(cm.serverCertExpiry).Seconds(),
			metric.WithAttributes(attribute.String("cert_type", "server")))
	}

	if !cm.clientCertExpiry.IsZero() {
		metrics.CertExpiryTime.Record(ctx, time.Until(cm.clientCertExpiry).Seconds(),
			metric.WithAttributes(attribute.String("cert_type", "client")))
	}
}

// StartExpiryMonitoring periodically refreshes certificate expiry metrics
func (cm *CertificateManager) StartExpiryMonitoring() {
	if cm.observabilityManager == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			cm.mu.RLock()
			cm.updateExpiryMetrics()
			cm.mu.RUnlock()
		}
	}()

	if cm.logger != nil {
		cm.logger.Info("Certificate expiry monitoring started")
	}
}
