package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}

// Metrics holds the service's application-level instruments.
type Metrics struct {
	ReportsAnalyzed metric.Int64Counter
}

// NewMetrics registers the service instruments on the given provider.
func NewMetrics(provider *sdkmetric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter("phishguard")

	// The Prometheus exporter appends _total to monotonic counters, so the
	// instrument name must not carry the suffix itself.
	reportsAnalyzed, err := meter.Int64Counter(
		"phishguard_reports_analyzed",
		metric.WithDescription("Number of URL risk analyses performed."),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		ReportsAnalyzed: reportsAnalyzed,
	}, nil
}
