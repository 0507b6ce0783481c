package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_lookups_total",
			Help: "Count of recommendation result cache lookups by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(CacheLookupsTotal)
}
