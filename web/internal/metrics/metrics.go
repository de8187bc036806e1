package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeRequestError    = "request_error"
)

type Metrics struct {
	Submissions *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Submissions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "shortener_form_submissions_total",
				Help: "Shorten form submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) Submitted(outcome string) {
	m.Submissions.WithLabelValues(outcome).Inc()
}
