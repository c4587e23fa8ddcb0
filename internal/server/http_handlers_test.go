package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumetric/internal/analysis"
	"resumetric/internal/config"
	"resumetric/internal/engine/roles"
	"resumetric/internal/errors"
	"resumetric/internal/observability"
	"resumetric/internal/types"
)

const testResume = `John Smith
john.smith@example.com

SKILLS
Python, Docker, Kubernetes, PostgreSQL, Git

EXPERIENCE
Backend developer with 4 years of experience building REST APIs.

EDUCATION
B.Sc. Computer Science
`

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Engine.DefaultLanguage = "en"
	cfg.Engine.DetectLanguage = true
	cfg.Engine.MaxTextLength = 100_000
	cfg.Observability.HealthCheck.Timeout = 5 * time.Second

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	srv := &Server{
		Host:           "127.0.0.1",
		Port:           "8080",
		Version:        "test",
		AppConfig:      cfg,
		Analysis:       analysis.NewService(roles.DefaultCatalog(), logger),
		MaxRequestSize: 1 << 20,
		Logger:         logger,
	}

	om, err := observability.NewObservabilityManager(
		observability.ObservabilityConfig{Enabled: false}, cfg)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}

	return srv, om
}

func TestAnalyzeHandler(t *testing.T) {
	srv, om := newTestServer(t)
	handler := srv.createAnalyzeHandler(om)

	t.Run("valid request", func(t *testing.T) {
		body, _ := json.Marshal(AnalyzeRequest{Text: testResume})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var out types.AnalyzeResumeOutput
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(out.Profile.Skills) == 0 {
			t.Error("expected extracted skills in response")
		}
		if len(out.RoleMatches) == 0 {
			t.Error("expected role matches in response")
		}
	})

	t.Run("missing text", func(t *testing.T) {
		body, _ := json.Marshal(AnalyzeRequest{Text: "   "})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("text"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("multipart upload", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "resume.txt")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte(testResume)); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("failed to close multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "atsScore") {
			t.Error("expected ATS score in response")
		}
	})
}

func TestATSHandler(t *testing.T) {
	srv, om := newTestServer(t)
	handler := srv.createATSHandler(om)

	body, _ := json.Marshal(ATSRequest{Text: testResume, JobDescription: "Looking for Python and Docker experience"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report types.ATSReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if report.ATSScore <= 0 {
		t.Errorf("expected positive ATS score, got %d", report.ATSScore)
	}
}

func TestRolesHandler(t *testing.T) {
	srv, om := newTestServer(t)
	handler := srv.createRolesHandler(om)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out types.RolesOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(out.Roles) == 0 {
		t.Error("expected roles in response")
	}

	// POST is not allowed
	req = httptest.NewRequest(http.MethodPost, "/api/v1/roles", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestReadyHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	srv.readyHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Without an engine the server is not ready
	srv.Analysis = nil
	rec = httptest.NewRecorder()
	srv.readyHandler(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without engine, got %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", response["status"])
	}
	if response["service"] != "resumetric" {
		t.Errorf("unexpected service name: %v", response["service"])
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.APIKeys = map[string]bool{"valid-key-12345": true}

	handler := srv.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid header key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
		req.Header.Set("X-API-Key", "valid-key-12345")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
		req.Header.Set("Authorization", "Bearer valid-key-12345")
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("no keys configured skips auth", func(t *testing.T) {
		srv.APIKeys = map[string]bool{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}

func TestHTTPStatusForError(t *testing.T) {
	validationErr := errors.NewValidationError(errors.ErrCodeInvalidRequest, "bad input", nil)
	if got := httpStatusForError(validationErr); got != http.StatusBadRequest {
		t.Errorf("expected 400 for validation error, got %d", got)
	}

	internalErr := errors.NewInternalError("SOMETHING_BROKE", "boom", nil)
	if got := httpStatusForError(internalErr); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for internal error, got %d", got)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("expected short keys fully masked, got %q", got)
	}
	if got := maskAPIKey("abcdefghijklmnop"); got != "abcdefgh****" {
		t.Errorf("unexpected mask: %q", got)
	}
}
