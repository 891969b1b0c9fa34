package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the crisis alert workflow.
type Metrics struct {
	AlertsReported       *prometheus.CounterVec
	DisclosuresMade      prometheus.Counter
	DisclosuresWithheld  *prometheus.CounterVec
	DeliveryFailures     prometheus.Counter
	ReportDurationSecond prometheus.Histogram
}

// New registers and returns alert metrics collectors.
func New() *Metrics {
	return &Metrics{
		AlertsReported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caresignal_alerts_reported_total",
			Help: "Total number of crisis alerts reported, labeled by type and severity",
		}, []string{"alert_type", "severity"}),
		DisclosuresMade: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_disclosures_made_total",
			Help: "Total number of attorney disclosures made",
		}),
		DisclosuresWithheld: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "caresignal_disclosures_withheld_total",
			Help: "Total number of attorney disclosures withheld, labeled by reason",
		}, []string{"reason"}),
		DeliveryFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caresignal_disclosure_delivery_failures_total",
			Help: "Total number of authorized disclosures that failed to persist",
		}),
		ReportDurationSecond: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caresignal_alert_report_duration_seconds",
			Help:    "Duration of the crisis report operation in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementReported(alertType, severity string) {
	m.AlertsReported.WithLabelValues(alertType, severity).Inc()
}

func (m *Metrics) IncrementDisclosed() { m.DisclosuresMade.Inc() }

func (m *Metrics) IncrementWithheld(reason string) {
	m.DisclosuresWithheld.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementDeliveryFailure() { m.DeliveryFailures.Inc() }

func (m *Metrics) ObserveReportDuration(seconds float64) {
	m.ReportDurationSecond.Observe(seconds)
}
