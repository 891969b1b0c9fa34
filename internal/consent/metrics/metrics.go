package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for consent operations.
type Metrics struct {
	ConsentsGranted    prometheus.Counter
	ConsentsRevoked    prometheus.Counter
	ConsentsReinstated prometheus.Counter
	ActiveConsents     prometheus.Gauge
	ChecksPassed       prometheus.Counter
	ChecksFailed       *prometheus.CounterVec
}

// New registers and returns consent metrics collectors.
func New() *Metrics {
	return &Metrics{
		ConsentsGranted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_consents_granted_total",
			Help: "Total number of attorney-notification consents granted",
		}),
		ConsentsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_consents_revoked_total",
			Help: "Total number of attorney-notification consents revoked",
		}),
		ConsentsReinstated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_consents_reinstated_total",
			Help: "Total number of attorney-notification consents reinstated",
		}),
		ActiveConsents: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "caresignal_active_consents",
			Help: "Current number of effective attorney-notification consents",
		}),
		ChecksPassed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_consent_checks_passed_total",
			Help: "Total number of consent status checks that found effective consent",
		}),
		ChecksFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caresignal_consent_checks_failed_total",
			Help: "Total number of consent status checks that found consent ineffective, labeled by status",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncrementGranted()    { m.ConsentsGranted.Inc() }
func (m *Metrics) IncrementRevoked()    { m.ConsentsRevoked.Inc() }
func (m *Metrics) IncrementReinstated() { m.ConsentsReinstated.Inc() }

func (m *Metrics) IncrementActive() { m.ActiveConsents.Inc() }
func (m *Metrics) DecrementActive() { m.ActiveConsents.Dec() }

func (m *Metrics) IncrementCheckPassed() { m.ChecksPassed.Inc() }

func (m *Metrics) IncrementCheckFailed(status string) {
	m.ChecksFailed.WithLabelValues(status).Inc()
}
