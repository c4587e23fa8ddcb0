package server

import (
	"time"

	"resumetric/internal/analysis"
	"resumetric/internal/config"
	resumetricErrors "resumetric/internal/errors"
)

// AnalyzeRequest is the JSON body for the analyze endpoint
type AnalyzeRequest struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription,omitempty"`
	Language       string `json:"language,omitempty"`
}

// ATSRequest is the JSON body for the ats endpoint
type ATSRequest struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// ErrorResponse is the JSON body sent with non-2xx statuses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds the HTTP server state and its dependencies
type Server struct {
	Host    string
	Port    string
	Version string

	AppConfig *config.Config

	// Analysis engine shared across requests
	Analysis *analysis.Service

	TLSConfig          config.TLSConfig
	CertificateManager *CertificateManager

	// Keys granted access to /api/v1 endpoints
	APIKeys map[string]bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	MaxRequestSize int64

	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	Logger *resumetricErrors.Logger
}

// ServerConfig bundles the constructor arguments for NewServer
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, svc *analysis.Service, logger *resumetricErrors.Logger) *Server {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Analysis:       svc,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
