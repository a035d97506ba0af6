package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	retrieverDaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "days_total",
		Help:      "Count of days by listing outcome.",
	}, []string{"status"})
	retrieverListingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "day_listing_duration_seconds",
		Help:      "Duration of day block listings.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	retrieverListedBlocks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "day_listed_blocks",
		Help:      "Number of blocks listed per day.",
		Buckets:   []float64{0, 50, 100, 125, 150, 175, 200, 250},
	})
	retrieverBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "blocks_total",
		Help:      "Count of block handles by outcome.",
	}, []string{"outcome"})
	retrieverBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "block_duration_seconds",
		Help:      "Duration of block detail handling from existence check to persistence.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
	retrieverBackpressureTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "backpressure_total",
		Help:      "Count of submissions that waited for queue space.",
	}, []string{"tier"})
	retrieverPendingBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockharvest",
		Subsystem: "retriever",
		Name:      "pending_blocks",
		Help:      "Listed blocks that have not been settled yet.",
	})
)

// Retriever tracks metrics for the block retrieval pipeline.
type Retriever struct{}

// NewRetriever constructs a Retriever metrics collector.
func NewRetriever() *Retriever {
	return &Retriever{}
}

// ObserveListing records a day listing outcome and its size.
func (m Retriever) ObserveListing(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	retrieverDaysTotal.WithLabelValues(status).Inc()
	retrieverListingDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		retrieverListedBlocks.Observe(float64(blocks))
	}
}

// ObserveSkippedDay records a day skipped as already covered.
func (m Retriever) ObserveSkippedDay() {
	retrieverDaysTotal.WithLabelValues("skipped").Inc()
}

// ObserveBlock records the outcome of one block handle.
func (m Retriever) ObserveBlock(outcome string, started time.Time) {
	if outcome == "" {
		outcome = "unknown"
	}

	retrieverBlocksTotal.WithLabelValues(outcome).Inc()
	retrieverBlockDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveBackpressure records a submission that had to wait on tier.
func (m Retriever) ObserveBackpressure(tier string) {
	retrieverBackpressureTotal.WithLabelValues(tier).Inc()
}

// SetPending sets the number of listed blocks still in flight.
func (m Retriever) SetPending(total int64) {
	retrieverPendingBlocks.Set(float64(total))
}
