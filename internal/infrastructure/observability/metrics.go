package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Decode outcomes per segment: ok, malformed, decode, parse
	TokenDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_decodes_total",
			Help: "Total number of token segment decodes",
		},
		[]string{"segment", "result"},
	)

	TokenDecodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "token_decode_duration_seconds",
			Help:    "Duration of token inspections in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)

func InitMetrics(reg prometheus.Registerer) {
	reg.MustRegister(TokenDecodes, TokenDecodeDuration)
}
