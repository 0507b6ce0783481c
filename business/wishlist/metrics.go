package wishlist

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	WishlistOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishlist_operations_total",
			Help: "Count of wishlist mutations by operation.",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(WishlistOpsTotal)
}
