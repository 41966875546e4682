package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Gateway metrics: upstream fetch latency and the drop-and-continue
// normalization policy made observable.
var (
	upstreamFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchgate",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Upstream collection fetch duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"resource", "outcome"},
	)

	recordsDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchgate",
			Name:      "records_dropped_total",
			Help:      "Upstream records dropped during normalization",
		},
		[]string{"resource"},
	)
)

func init() {
	prometheus.MustRegister(upstreamFetchDuration)
	prometheus.MustRegister(recordsDroppedTotal)
}

// ObserveUpstreamFetch records one upstream collection fetch.
// outcome is "ok" or "error".
func ObserveUpstreamFetch(resource, outcome string, d time.Duration) {
	upstreamFetchDuration.WithLabelValues(resource, outcome).Observe(d.Seconds())
}

// RecordDropped counts one record dropped by the normalizer.
func RecordDropped(resource string) {
	recordsDroppedTotal.WithLabelValues(resource).Inc()
}
