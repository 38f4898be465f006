package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_api_"

// Service constants
const (
	ServiceCoinGecko = "coingecko"
)

var (
	// UpstreamRequestsTotal counts requests to the upstream provider across all services
	// Cardinality: ~4 (success, error, rate_limited, timeout)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the upstream market data provider",
		},
		[]string{"status"},
	)

	// ServiceUpstreamRequestsTotal counts upstream requests per service
	// Cardinality: ~4 (1 service x 4 statuses)
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_upstream_requests_total",
			Help: "Total number of HTTP requests to the upstream provider per service",
		},
		[]string{"service", "status"},
	)

	// UpstreamLatencyHistogram tracks upstream request latency by endpoint
	// Cardinality: ~4 (one series per upstream endpoint)
	UpstreamLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "upstream_latency_seconds",
			Help: "Upstream HTTP request latency by service and endpoint",
		},
		[]string{"service", "endpoint"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordUpstreamRequest records an upstream request with its status
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordUpstreamLatency records the duration of an upstream request to an endpoint
func (mw *MetricsWriter) RecordUpstreamLatency(endpoint string, duration time.Duration) {
	UpstreamLatencyHistogram.WithLabelValues(mw.serviceName, endpoint).Observe(duration.Seconds())
	log.Printf("Metrics: %s request to %s took %.2fs", mw.serviceName, endpoint, duration.Seconds())
}

// OnRequest implements the HTTP status handler interface by writing to metrics
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordUpstreamRequest(status)
}
