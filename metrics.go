package tinyjson

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects parse and stringify counters for a Codec. A nil *Metrics
// records nothing.
type Metrics struct {
	parses         *prometheus.CounterVec
	parsedBytes    prometheus.Counter
	stringifies    prometheus.Counter
	stringifyBytes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		parses: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "tinyjson",
			Name:      "parse_total",
			Help:      "Total number of parse calls by result code.",
		}, []string{"code"}),
		parsedBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "tinyjson",
			Name:      "parse_input_bytes_total",
			Help:      "Total number of input bytes handed to the parser.",
		}),
		stringifies: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "tinyjson",
			Name:      "stringify_total",
			Help:      "Total number of stringify calls.",
		}),
		stringifyBytes: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "tinyjson",
			Name:      "stringify_bytes",
			Help:      "Size of stringify output in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}
}

func (m *Metrics) recordParse(code ErrorCode, inputLen int) {
	if m == nil {
		return
	}
	m.parses.WithLabelValues(code.String()).Inc()
	m.parsedBytes.Add(float64(inputLen))
}

func (m *Metrics) recordStringify(outputLen int) {
	if m == nil {
		return
	}
	m.stringifies.Inc()
	m.stringifyBytes.Observe(float64(outputLen))
}
