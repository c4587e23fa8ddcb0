package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resumetric/internal/analysis"
	"resumetric/internal/document"
	"resumetric/internal/observability"
	"resumetric/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the full resume analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumetric.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		req, err := s.parseAnalyzeRequest(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "text field or file upload is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if max := s.AppConfig.Engine.MaxTextLength; max > 0 && len(req.Text) > max {
			err := fmt.Errorf("resume text too large: %d chars", len(req.Text))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("text exceeds limit of %d characters", max), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		input := types.AnalyzeResumeInput{
			Text:           req.Text,
			JobDescription: req.JobDescription,
			Language:       req.Language,
		}

		// Track engine operation with observability and stats
		metrics := om.GetMetrics()
		var result types.AnalyzeResumeOutput
		err = metrics.TrackEngineOperation(ctx, "analyze", func(ctx context.Context) *observability.EngineOperationResult {
			output, stats, engineErr := s.Analysis.AnalyzeResume(ctx, input)
			result = output
			return &observability.EngineOperationResult{
				Error: engineErr,
				Stats: analyzeOperationStats(stats, output),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "engine_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), httpStatusForError(err))
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("ats.score", result.ATS.ATSScore),
			attribute.Int("profile.skills", len(result.Profile.Skills)),
			attribute.Int("role_matches", len(result.RoleMatches)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.ATS.ATSScore),
			attribute.Int("role_matches", len(result.RoleMatches)),
			attribute.String("profile.language", result.Profile.Language),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createATSHandler wraps the standalone ATS check handler with observability
func (s *Server) createATSHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumetric.api")
		ctx, span := tracer.Start(ctx, "api.ats")
		defer span.End()

		var req ATSRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation (similar to analyze)
		if strings.TrimSpace(req.Text) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume text", "text field is required", http.StatusBadRequest)
			return
		}
		if max := s.AppConfig.Engine.MaxTextLength; max > 0 && len(req.Text) > max {
			err := fmt.Errorf("resume text too large: %d chars", len(req.Text))
			span.RecordError(err)
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("text exceeds limit of %d characters", max), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "ats"),
		)

		input := types.ATSInput{
			Text:           req.Text,
			JobDescription: req.JobDescription,
		}

		metrics := om.GetMetrics()
		var result types.ATSReport
		err := metrics.TrackEngineOperation(ctx, "ats", func(ctx context.Context) *observability.EngineOperationResult {
			report, stats, engineErr := s.Analysis.AnalyzeATS(ctx, input)
			result = report
			return &observability.EngineOperationResult{
				Error: engineErr,
				Stats: atsOperationStats(stats, report),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "ats_checked", false, om)
			writeErrorResponse(w, "Failed to run ATS check", err.Error(), httpStatusForError(err))
			return
		}

		metrics.RecordBusinessMetric(ctx, "ats_checked", true, om,
			attribute.Int("ats.score", result.ATSScore),
			attribute.Bool("ats.friendly", result.ATSFriendly))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", result.ATSScore),
			attribute.Bool("ats.friendly", result.ATSFriendly),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRolesHandler serves the role catalog
func (s *Server) createRolesHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumetric.api")
		ctx, span := tracer.Start(ctx, "api.roles")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		result := s.Analysis.ListRoles(ctx)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "roles_listed", true, om,
			attribute.Int("roles.count", len(result.Roles)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("roles.count", len(result.Roles)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseAnalyzeRequest accepts either a JSON body or a multipart upload where
// the resume arrives as a file (PDF, DOCX, or plain text).
func (s *Server) parseAnalyzeRequest(r *http.Request) (AnalyzeRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return s.parseMultipartAnalyzeRequest(r)
	}

	var req AnalyzeRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return AnalyzeRequest{}, err
	}
	return req, nil
}

// parseMultipartAnalyzeRequest extracts resume text from an uploaded file
func (s *Server) parseMultipartAnalyzeRequest(r *http.Request) (AnalyzeRequest, error) {
	maxMemory := s.MaxRequestSize
	if maxMemory <= 0 {
		maxMemory = 10 << 20
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("missing file field: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.Logger.Warn("Failed to close uploaded file", "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	text, err := document.ExtractBytes(data, header.Filename)
	if err != nil {
		return AnalyzeRequest{}, fmt.Errorf("failed to extract text from %s: %w", header.Filename, err)
	}

	return AnalyzeRequest{
		Text:           text,
		JobDescription: r.FormValue("jobDescription"),
		Language:       r.FormValue("language"),
	}, nil
}

// analyzeOperationStats maps engine stats onto the metric stats record
func analyzeOperationStats(stats *analysis.EngineStats, out types.AnalyzeResumeOutput) *observability.OperationStats {
	if stats == nil {
		return nil
	}
	opStats := &observability.OperationStats{
		SkillsExtracted: int64(stats.SkillsExtracted),
		RolesEvaluated:  int64(stats.RolesEvaluated),
		TextLength:      int64(stats.TextLength),
		ATSScore:        int64(out.ATS.ATSScore),
	}
	if len(out.RoleMatches) > 0 {
		opStats.TopMatchScore = int64(out.RoleMatches[0].MatchPercentage)
	}
	return opStats
}

func atsOperationStats(stats *analysis.EngineStats, report types.ATSReport) *observability.OperationStats {
	if stats == nil {
		return nil
	}
	return &observability.OperationStats{
		TextLength: int64(stats.TextLength),
		ATSScore:   int64(report.ATSScore),
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
