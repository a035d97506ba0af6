package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockharvest",
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of explorer API operations.",
	}, []string{"operation", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockharvest",
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer API operations including retries.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"operation", "status"})
	explorerRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockharvest",
		Subsystem: "explorer_client",
		Name:      "retries_total",
		Help:      "Count of retried explorer API requests.",
	}, []string{"operation"})
)

// ExplorerClient tracks metrics for explorer API calls.
type ExplorerClient struct{}

// NewExplorerClient constructs a metrics collector for explorer API calls.
func NewExplorerClient() *ExplorerClient {
	return &ExplorerClient{}
}

// Observe records a single explorer operation outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	explorerRequestsTotal.WithLabelValues(operation, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveRetry records a retried request.
func (m ExplorerClient) ObserveRetry(operation string) {
	explorerRetriesTotal.WithLabelValues(operation).Inc()
}
