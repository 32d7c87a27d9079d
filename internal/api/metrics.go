package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the parse transport.
type Metrics struct {
	MessagesParsed *prometheus.CounterVec
	ParseFailures  *prometheus.CounterVec
	ParseDuration  prometheus.Histogram
}

// NewMetrics registers the transport metrics on a fresh registry and returns
// both, so tests can register without colliding with the default registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MessagesParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smsparse_messages_parsed_total",
			Help: "Total messages successfully parsed, by category",
		}, []string{"category"}),
		ParseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smsparse_parse_failures_total",
			Help: "Total parse requests that failed, by reason",
		}, []string{"reason"}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "smsparse_parse_duration_seconds",
			Help:    "Time to parse a single message",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}
}
