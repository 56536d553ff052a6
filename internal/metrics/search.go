package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchResultsSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "propfind",
			Name:      "search_results_size",
			Help:      "Matched listings per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	SearchFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "propfind",
			Name:      "search_fallback_total",
			Help:      "Candidate fetches that fell back from the FT index to a key scan",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchResultsSize)
	prometheus.MustRegister(SearchFallbackTotal)
	searchMetricsRegistered = true
}
