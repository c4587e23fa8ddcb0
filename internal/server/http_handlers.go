package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	resumetricErrors "resumetric/internal/errors"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a comprehensive health check endpoint including engine status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumetric",
		"version": s.Version,
	}

	engineStatus := s.checkEngineHealth()
	response["engine"] = engineStatus

	certStatus := s.checkCertificateHealth()
	if certStatus != nil {
		response["certificates"] = certStatus
	}

	// Degraded when either the engine or the certificates report unhealthy
	overallHealthy := true
	if available, ok := engineStatus["available"].(bool); ok && !available {
		overallHealthy = false
	}
	if certStatus != nil {
		if certHealthy, ok := certStatus["healthy"].(bool); ok && !certHealthy {
			overallHealthy = false
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// readyHandler reports whether the server can serve analysis requests
func (s *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.getHealthCheckTimeout())
	defer cancel()

	response := map[string]any{"ready": true}

	if s.Analysis == nil {
		response["ready"] = false
		response["error"] = "analysis engine not initialized"
	} else if roles := s.Analysis.ListRoles(ctx); len(roles.Roles) == 0 {
		response["ready"] = false
		response["error"] = "role catalog is empty"
	}

	if ready, _ := response["ready"].(bool); !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode readiness response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkEngineHealth reports the status of the analysis engine and its catalog
func (s *Server) checkEngineHealth() map[string]any {
	if s.Analysis == nil {
		return map[string]any{
			"available": false,
			"error":     "analysis engine not initialized",
		}
	}

	catalogSource := "built-in"
	if s.AppConfig.Engine.CatalogFile != "" {
		catalogSource = s.AppConfig.Engine.CatalogFile
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.getHealthCheckTimeout())
	defer cancel()
	roles := s.Analysis.ListRoles(ctx)

	return map[string]any{
		"available":        len(roles.Roles) > 0,
		"catalog_source":   catalogSource,
		"catalog_roles":    len(roles.Roles),
		"default_language": s.AppConfig.Engine.DefaultLanguage,
		"detect_language":  s.AppConfig.Engine.DetectLanguage,
	}
}

// checkCertificateHealth reports certificate expiry and reload status.
// Returns nil when the server runs without a certificate manager.
func (s *Server) checkCertificateHealth() map[string]any {
	if s.CertificateManager == nil {
		return nil
	}

	certStatus := make(map[string]any)

	timeToExpiry, err := s.CertificateManager.CheckExpiry()
	if err != nil {
		certStatus["healthy"] = false
		certStatus["error"] = fmt.Sprintf("Failed to check certificate expiry: %v", err)
		return certStatus
	}

	certStatus["time_to_expiry_hours"] = int(timeToExpiry.Hours())
	certStatus["time_to_expiry"] = timeToExpiry.String()

	// Under 24 hours to expiry counts as unhealthy, under 7 days as a warning
	switch {
	case timeToExpiry <= 0:
		certStatus["healthy"] = false
		certStatus["status"] = "expired"
		certStatus["message"] = "Certificate has expired"
	case timeToExpiry <= 24*time.Hour:
		certStatus["healthy"] = false
		certStatus["status"] = "critical"
		certStatus["message"] = "Certificate expires within 24 hours"
	case timeToExpiry <= 7*24*time.Hour:
		certStatus["healthy"] = true
		certStatus["status"] = "warning"
		certStatus["message"] = "Certificate expires within 7 days"
	default:
		certStatus["healthy"] = true
		certStatus["status"] = "ok"
		certStatus["message"] = "Certificate is valid"
	}

	autoReload := map[string]any{"enabled": s.TLSConfig.AutoReload.Enabled}
	if s.TLSConfig.AutoReload.Enabled {
		autoReload["file_watcher_enabled"] = s.TLSConfig.AutoReload.FileWatcher.Enabled
		autoReload["vault_watcher_enabled"] = s.TLSConfig.AutoReload.VaultWatcher.Enabled

		if fw := s.CertificateManager.fileWatcher; fw != nil {
			autoReload["file_watcher_running"] = fw.IsRunning()
			autoReload["watched_files"] = fw.GetWatchedFiles()
		}
		if vw := s.CertificateManager.vaultWatcher; vw != nil {
			autoReload["vault_watcher_status"] = vw.Status()
		}
	}
	certStatus["auto_reload"] = autoReload

	if metrics := s.CertificateManager.GetMetrics(); metrics != nil {
		certStatus["metrics"] = map[string]any{
			"reload_count":         metrics.ReloadCount,
			"reload_success_count": metrics.ReloadSuccessCount,
			"reload_failure_count": metrics.ReloadFailureCount,
			"last_reload_time":     metrics.LastReloadTime,
			"last_reload_success":  metrics.LastReloadSuccess,
			"last_reload_error":    metrics.LastReloadError,
		}
	}

	return certStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumetric",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"engine": map[string]any{
			"max_text_length":  s.AppConfig.Engine.MaxTextLength,
			"default_language": s.AppConfig.Engine.DefaultLanguage,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// httpStatusForError maps engine errors to HTTP status codes
func httpStatusForError(err error) int {
	var appErr *resumetricErrors.AppError
	if errors.As(err, &appErr) && appErr.Type == resumetricErrors.ErrorTypeValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
