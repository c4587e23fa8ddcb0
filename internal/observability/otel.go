package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resumetric/internal/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ObservabilityConfig holds configuration for observability
type ObservabilityConfig struct {
	ServiceName    string
	ServiceVersion string
	Enabled        bool
	ConsoleOutput  bool
	PrettyPrint    bool
	SampleRate     float64
	Prometheus     PrometheusConfig
}

// Metrics holds all custom metrics for Resumetric
type Metrics struct {
	// Engine operation metrics
	EngineProcessingTime metric.Float64Histogram
	EngineRequestCount   metric.Int64Counter
	EngineErrorCount     metric.Int64Counter
	SkillsExtracted      metric.Int64Histogram
	EngineScores         metric.Int64Histogram

	// Business metrics
	ResumesAnalyzed metric.Int64Counter
	ATSChecksRun    metric.Int64Counter
	RolesListed     metric.Int64Counter

	// Certificate metrics
	CertReloadCount metric.Int64Counter
	CertExpiryTime  metric.Float64Gauge

	// Rate limiting metrics
	RateLimitHits metric.Int64Counter
}

// ObservabilityManager manages OpenTelemetry setup
type ObservabilityManager struct {
	config           ObservabilityConfig
	fullConfig       *config.Config // Store full config for access to nested settings
	tracerProvider   *trace.TracerProvider
	meterProvider    *sdkmetric.MeterProvider
	metrics          *Metrics
	shutdownFuncs    []func(context.Context) error
	prometheusServer *http.ServeMux
}

// NewObservabilityManager creates a new observability manager
func NewObservabilityManager(obsConfig ObservabilityConfig, fullConfig *config.Config) (*ObservabilityManager, error) {
	if !obsConfig.Enabled {
		return &ObservabilityManager{config: obsConfig, fullConfig: fullConfig}, nil
	}

	om := &ObservabilityManager{
		config:        obsConfig,
		fullConfig:    fullConfig,
		shutdownFuncs: make([]func(context.Context) error, 0),
	}

	if err := om.initTracing(); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := om.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return om, nil
}

// buildResource describes this service instance for exported telemetry
func (om *ObservabilityManager) buildResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(om.config.ServiceName),
			semconv.ServiceVersion(om.config.ServiceVersion),
			attribute.String("service.instance.id", om.getServiceInstanceID()),
		),
	)
}

// initTracing sets up OpenTelemetry tracing
func (om *ObservabilityManager) initTracing() error {
	var exporter trace.SpanExporter
	var err error

	switch {
	case om.config.ConsoleOutput:
		// Console exporter for development
		opts := []stdouttrace.Option{}
		if om.config.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		exporter, err = stdouttrace.New(opts...)
	case om.fullConfig != nil && om.fullConfig.Observability.OTLP.Enabled:
		exporter, err = om.createOTLPExporter()
	default:
		// Spans are still created for context propagation, just not exported
		exporter = &noOpSpanExporter{}
	}

	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := om.buildResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(om.config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	om.tracerProvider = tp
	om.shutdownFuncs = append(om.shutdownFuncs, tp.Shutdown)

	return nil
}

// initMetrics sets up OpenTelemetry metrics
func (om *ObservabilityManager) initMetrics() error {
	readers, err := om.setupMetricReaders()
	if err != nil {
		return err
	}

	res, err := om.buildResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	meterProviderOptions := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}
	for _, reader := range readers {
		meterProviderOptions = append(meterProviderOptions, sdkmetric.WithReader(reader))
	}

	mp := sdkmetric.NewMeterProvider(meterProviderOptions...)

	otel.SetMeterProvider(mp)
	om.meterProvider = mp
	om.shutdownFuncs = append(om.shutdownFuncs, mp.Shutdown)

	return om.initCustomMetrics()
}

// setupMetricReaders builds the set of metric readers from configuration.
// Console, OTLP, and Prometheus can all be active at once.
func (om *ObservabilityManager) setupMetricReaders() ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	if om.config.ConsoleOutput {
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create console metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(om.getMetricsCollectionInterval())))
	}

	if om.fullConfig != nil && om.fullConfig.Observability.OTLP.Enabled {
		otlpReader, err := om.createOTLPMetricsReader()
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics reader: %w", err)
		}
		readers = append(readers, otlpReader)
	}

	if om.config.Prometheus.Enabled {
		prometheusReader, prometheusMux, err := SetupPrometheusExporter(om.config.Prometheus)
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		if prometheusReader != nil {
			readers = append(readers, prometheusReader)
			om.prometheusServer = prometheusMux

			if err := StartPrometheusServer(prometheusMux, om.config.Prometheus.Port); err != nil {
				return nil, fmt.Errorf("failed to start Prometheus server: %w", err)
			}
		}
	}

	// A manual reader keeps instrument creation working with no exporter
	if len(readers) == 0 {
		readers = append(readers, sdkmetric.NewManualReader())
	}

	return readers, nil
}

// initCustomMetrics creates all custom metrics for Resumetric
func (om *ObservabilityManager) initCustomMetrics() error {
	meter := om.meterProvider.Meter(om.config.ServiceName)
	om.metrics = &Metrics{}

	if err := om.createEngineMetrics(meter); err != nil {
		return err
	}

	if err := om.createBusinessMetrics(meter); err != nil {
		return err
	}

	if err := om.createCertificateMetrics(meter); err != nil {
		return err
	}

	if err := om.createRateLimitMetrics(meter); err != nil {
		return err
	}

	return nil
}

// createEngineMetrics creates analysis-engine metrics
func (om *ObservabilityManager) createEngineMetrics(meter metric.Meter) error {
	var err error

	om.metrics.EngineProcessingTime, err = meter.Float64Histogram(
		"resumetric_engine_processing_duration_seconds",
		metric.WithDescription("Time spent running engine operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create engine processing time metric: %w", err)
	}

	om.metrics.EngineRequestCount, err = meter.Int64Counter(
		"resumetric_engine_requests_total",
		metric.WithDescription("Total number of engine operations"),
	)
	if err != nil {
		return fmt.Errorf("failed to create engine request count metric: %w", err)
	}

	om.metrics.EngineErrorCount, err = meter.Int64Counter(
		"resumetric_engine_errors_total",
		metric.WithDescription("Total number of engine operation errors"),
	)
	if err != nil {
		return fmt.Errorf("failed to create engine error count metric: %w", err)
	}

	om.metrics.SkillsExtracted, err = meter.Int64Histogram(
		"resumetric_engine_skills_extracted",
		metric.WithDescription("Skills extracted per analyzed resume"),
		metric.WithUnit("skills"),
	)
	if err != nil {
		return fmt.Errorf("failed to create skills extracted metric: %w", err)
	}

	om.metrics.EngineScores, err = meter.Int64Histogram(
		"resumetric_engine_score",
		metric.WithDescription("Scores produced by engine operations (by score_type)"),
	)
	if err != nil {
		return fmt.Errorf("failed to create engine score metric: %w", err)
	}

	return nil
}

// createBusinessMetrics creates business-related metrics
func (om *ObservabilityManager) createBusinessMetrics(meter metric.Meter) error {
	var err error

	om.metrics.ResumesAnalyzed, err = meter.Int64Counter(
		"resumetric_resumes_analyzed_total",
		metric.WithDescription("Total number of resumes analyzed"),
	)
	if err != nil {
		return fmt.Errorf("failed to create resumes analyzed metric: %w", err)
	}

	om.metrics.ATSChecksRun, err = meter.Int64Counter(
		"resumetric_ats_checks_total",
		metric.WithDescription("Total number of standalone ATS checks"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ATS checks metric: %w", err)
	}

	om.metrics.RolesListed, err = meter.Int64Counter(
		"resumetric_roles_listed_total",
		metric.WithDescription("Total number of role catalog listings served"),
	)
	if err != nil {
		return fmt.Errorf("failed to create roles listed metric: %w", err)
	}

	return nil
}

// createCertificateMetrics creates certificate-related metrics
func (om *ObservabilityManager) createCertificateMetrics(meter metric.Meter) error {
	var err error

	om.metrics.CertReloadCount, err = meter.Int64Counter(
		"resumetric_cert_reloads_total",
		metric.WithDescription("Total number of certificate reloads"),
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate reload count metric: %w", err)
	}

	// Certificate expiry time gauge (populated by CertificateManager)
	om.metrics.CertExpiryTime, err = meter.Float64Gauge(
		"resumetric_cert_expiry_seconds",
		metric.WithDescription("Seconds until certificate expiry"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate expiry time metric: %w", err)
	}

	return nil
}

// createRateLimitMetrics creates rate limiting metrics
func (om *ObservabilityManager) createRateLimitMetrics(meter metric.Meter) error {
	var err error

	om.metrics.RateLimitHits, err = meter.Int64Counter(
		"resumetric_rate_limit_hits_total",
		metric.WithDescription("Total number of rate limit hits"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rate limit hits metric: %w", err)
	}

	return nil
}

// GetMetrics returns the metrics instance
func (om *ObservabilityManager) GetMetrics() *Metrics {
	if om.metrics == nil {
		return &Metrics{} // Return empty metrics if not initialized
	}
	return om.metrics
}

// HTTPMiddleware returns HTTP middleware with OpenTelemetry instrumentation
func (om *ObservabilityManager) HTTPMiddleware() func(http.Handler) http.Handler {
	if !om.config.Enabled {
		return func(h http.Handler) http.Handler { return h }
	}

	return otelhttp.NewMiddleware(
		om.config.ServiceName,
		otelhttp.WithTracerProvider(om.tracerProvider),
		otelhttp.WithMeterProvider(om.meterProvider),
	)
}

// Tracer returns a tracer for the service
func (om *ObservabilityManager) Tracer(name string) oteltrace.Tracer {
	if !om.config.Enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.Tracer(name)
}

// Shutdown gracefully shuts down all observability components
func (om *ObservabilityManager) Shutdown(ctx context.Context) error {
	for _, shutdown := range om.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

// EngineOperationResult holds the result of an engine operation including
// execution stats
type EngineOperationResult struct {
	Error error
	Stats *OperationStats
}

// OperationStats reports what an engine operation did
type OperationStats struct {
	SkillsExtracted int64
	RolesEvaluated  int64
	TextLength      int64
	ATSScore        int64
	TopMatchScore   int64
}

// TrackEngineOperation instruments an engine operation with tracing, metrics,
// and stats reporting
func (m *Metrics) TrackEngineOperation(ctx context.Context, operation string, fn func(context.Context) *EngineOperationResult, om *ObservabilityManager) error {
	if m.EngineProcessingTime == nil {
		// Metrics not initialized, just run the function
		result := fn(ctx)
		if result != nil {
			return result.Error
		}
		return nil
	}

	// Check if engine metrics are enabled
	engineMetricsEnabled := m.isEngineMetricsEnabled(om)

	tracer := otel.Tracer("resumetric.engine")
	ctx, span := tracer.Start(ctx, "engine."+operation)
	defer span.End()

	start := time.Now()
	result := fn(ctx)
	duration := time.Since(start).Seconds()

	var err error
	if result != nil {
		err = result.Error
	}

	// Record metrics only if engine metrics are enabled
	if engineMetricsEnabled {
		m.recordEngineMetrics(ctx, operation, err, duration, result, om, span)
	}

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("error", true))
	}

	return err
}

// isEngineMetricsEnabled checks if engine metrics are enabled in the configuration
func (m *Metrics) isEngineMetricsEnabled(om *ObservabilityManager) bool {
	if om.fullConfig == nil {
		return true
	}
	return om.fullConfig.Observability.CustomMetrics.Engine.Enabled
}

// recordEngineMetrics records all engine-related metrics
func (m *Metrics) recordEngineMetrics(ctx context.Context, operation string, err error, duration float64, result *EngineOperationResult, om *ObservabilityManager, span oteltrace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	}

	m.recordEngineDuration(ctx, duration, attrs, om)
	m.recordEngineRequestCount(ctx, attrs)
	m.recordOperationStats(ctx, result, attrs, om, span)
	m.recordEngineError(ctx, err, attrs)

	span.SetAttributes(attrs...)
}

// recordEngineDuration records engine processing duration if enabled
func (m *Metrics) recordEngineDuration(ctx context.Context, duration float64, attrs []attribute.KeyValue, om *ObservabilityManager) {
	if om.fullConfig == nil || om.fullConfig.Observability.CustomMetrics.Engine.TrackDuration {
		m.EngineProcessingTime.Record(ctx, duration, metric.WithAttributes(attrs...))
	}
}

// recordEngineRequestCount records engine request count
func (m *Metrics) recordEngineRequestCount(ctx context.Context, attrs []attribute.KeyValue) {
	m.EngineRequestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// recordEngineError records engine error count if there was an error
func (m *Metrics) recordEngineError(ctx context.Context, err error, attrs []attribute.KeyValue) {
	if err != nil {
		m.EngineErrorCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// recordOperationStats records stats metrics and span attributes
func (m *Metrics) recordOperationStats(ctx context.Context, result *EngineOperationResult, attrs []attribute.KeyValue, om *ObservabilityManager, span oteltrace.Span) {
	if result == nil || result.Stats == nil {
		return
	}
	stats := result.Stats

	trackSkillCounts := om.fullConfig == nil || om.fullConfig.Observability.CustomMetrics.Engine.TrackSkillCounts
	if trackSkillCounts && m.SkillsExtracted != nil && stats.SkillsExtracted > 0 {
		m.SkillsExtracted.Record(ctx, stats.SkillsExtracted, metric.WithAttributes(attrs...))
	}

	trackScores := om.fullConfig == nil || om.fullConfig.Observability.CustomMetrics.Engine.TrackScores
	if trackScores && m.EngineScores != nil {
		if stats.ATSScore > 0 {
			scoreAttrs := append(attrs, attribute.String("score_type", "ats"))
			m.EngineScores.Record(ctx, stats.ATSScore, metric.WithAttributes(scoreAttrs...))
		}
		if stats.TopMatchScore > 0 {
			scoreAttrs := append(attrs, attribute.String("score_type", "top_match"))
			m.EngineScores.Record(ctx, stats.TopMatchScore, metric.WithAttributes(scoreAttrs...))
		}
	}

	// Add stats to span attributes (always add to traces for debugging)
	span.SetAttributes(
		attribute.Int64("engine.skills_extracted", stats.SkillsExtracted),
		attribute.Int64("engine.roles_evaluated", stats.RolesEvaluated),
		attribute.Int64("engine.text_length", stats.TextLength),
	)
}

// RecordBusinessMetric records business-specific metrics
func (m *Metrics) RecordBusinessMetric(ctx context.Context, metricType string, success bool, om *ObservabilityManager, attributes ...attribute.KeyValue) {
	// Check if business metrics are enabled
	if om.fullConfig != nil && !om.fullConfig.Observability.CustomMetrics.BusinessMetrics.Enabled {
		return
	}

	attrs := append([]attribute.KeyValue{
		attribute.Bool("success", success),
	}, attributes...)

	var counter metric.Int64Counter
	switch metricType {
	case "resume_analyzed":
		counter = m.ResumesAnalyzed
	case "ats_checked":
		counter = m.ATSChecksRun
	case "roles_listed":
		counter = m.RolesListed
	case "rate_limit_hit":
		// Rate limiting is an infrastructure metric with its own toggle
		if om != nil && om.fullConfig != nil && !om.fullConfig.Observability.CustomMetrics.Infrastructure.TrackRateLimits {
			return
		}
		counter = m.RateLimitHits
	}

	if counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// No-op exporters for when console output is disabled
type noOpSpanExporter struct{}

func (n *noOpSpanExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	return nil
}

func (n *noOpSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

// createOTLPExporter creates an OTLP HTTP trace exporter
func (om *ObservabilityManager) createOTLPExporter() (trace.SpanExporter, error) {
	if om.fullConfig == nil {
		return nil, fmt.Errorf("config not available for OTLP configuration")
	}

	otlpConfig := om.fullConfig.Observability.OTLP

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(otlpConfig.Endpoint),
	}
	if otlpConfig.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	return exporter, nil
}

// createOTLPMetricsReader creates an OTLP HTTP metrics reader
func (om *ObservabilityManager) createOTLPMetricsReader() (sdkmetric.Reader, error) {
	if om.fullConfig == nil {
		return nil, fmt.Errorf("config not available for OTLP configuration")
	}

	otlpConfig := om.fullConfig.Observability.OTLP

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpointURL(otlpConfig.Endpoint),
	}
	if otlpConfig.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlpmetrichttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	return sdkmetric.NewPeriodicReader(exporter,
		sdkmetric.WithInterval(om.getMetricsCollectionInterval())), nil
}

// getServiceInstanceID returns the service instance ID from config or generates one
func (om *ObservabilityManager) getServiceInstanceID() string {
	if om.fullConfig != nil && om.fullConfig.Observability.ServiceInstance != "" {
		return om.fullConfig.Observability.ServiceInstance
	}
	// Fallback to default if config not available
	return "resumetric-1"
}

// getMetricsCollectionInterval returns the configured metrics collection interval
func (om *ObservabilityManager) getMetricsCollectionInterval() time.Duration {
	if om.fullConfig != nil {
		return om.fullConfig.Observability.Metrics.CollectionInterval
	}
	// Fallback to default
	return 15 * time.Second
}
