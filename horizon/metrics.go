package horizon

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "horizon"

// Metrics counts validation outcomes.
type Metrics struct {
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
}

// NewMetrics returns Metrics registered with reg. A nil reg leaves the
// collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "validations_total",
			Help:      "The total number of validated documents by record type and outcome.",
		}, []string{"record", "outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "violations_total",
			Help:      "The total number of field violations by record type and reason.",
		}, []string{"record", "reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.validations, m.violations)
	}
	return m
}

func (m *Metrics) observe(rt RecordType, violations []ValidationErrorDetail) {
	if len(violations) == 0 {
		m.validations.WithLabelValues(string(rt), "valid").Inc()
		return
	}
	m.validations.WithLabelValues(string(rt), "invalid").Inc()
	for _, v := range violations {
		m.violations.WithLabelValues(string(rt), string(v.Reason)).Inc()
	}
}
