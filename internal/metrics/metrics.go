package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for the audit write status.
const (
	StatusRecorded = "recorded"
	StatusFailed   = "failed"
)

// Metrics holds the service counters.
type Metrics struct {
	auditEvents     *prometheus.CounterVec
	clipboardEvents *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		auditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clipshare",
			Name:      "audit_events_total",
			Help:      "Total number of audit event writes by category and outcome.",
		}, []string{"category", "status"}),
		clipboardEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clipshare",
			Name:      "clipboard_operations_total",
			Help:      "Total number of primary clipboard operations by kind.",
		}, []string{"operation"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.auditEvents, m.clipboardEvents} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// RecordAuditWrite counts one audit write attempt. A nil receiver is a no-op.
func (m *Metrics) RecordAuditWrite(category string, err error) {
	if m == nil {
		return
	}
	status := StatusRecorded
	if err != nil {
		status = StatusFailed
	}
	m.auditEvents.WithLabelValues(category, status).Inc()
}

// RecordClipboardOperation counts a successful paste, delete or copy.
func (m *Metrics) RecordClipboardOperation(operation string) {
	if m == nil {
		return
	}
	m.clipboardEvents.WithLabelValues(operation).Inc()
}
