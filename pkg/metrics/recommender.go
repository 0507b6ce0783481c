package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the related-products recommendation handler
	RecommendationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_latency_seconds",
		Help:    "Latency of the related-products recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of related products served across all rails
	RecommendationsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_served_total",
		Help: "Total number of related products served",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendationLatency,
		RecommendationsServed,
	)
}
