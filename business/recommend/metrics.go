package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_served_total",
			Help: "Count of served rankings by driving signal.",
		},
		[]string{"source"},
	)

	RecommendFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_fallback_total",
			Help: "Count of degradations by fallback layer.",
		},
		[]string{"layer"},
	)
)

func init() {
	prometheus.MustRegister(RecommendServedTotal, RecommendFallbackTotal)
}
