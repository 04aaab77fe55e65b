package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts catalog API requests by endpoint.
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apidex",
			Name:      "catalog_requests_total",
			Help:      "Total number of catalog API requests",
		},
		[]string{"endpoint"},
	)

	// queryResults tracks how many APIs a query returns.
	queryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "apidex",
			Name:      "catalog_query_results",
			Help:      "Number of APIs returned per query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// notFoundTotal counts lookups for unknown ids and slugs.
	notFoundTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apidex",
			Name:      "catalog_not_found_total",
			Help:      "Total number of lookups for unknown APIs or categories",
		},
		[]string{"kind"},
	)

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "apidex",
		Name:      "catalog_cache_hits_total",
		Help:      "Query cache hits",
	})

	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "apidex",
		Name:      "catalog_cache_misses_total",
		Help:      "Query cache misses",
	})
)
