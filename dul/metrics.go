package dul

import "github.com/prometheus/client_golang/prometheus"

// reactorMetrics counts the observability events every reactor emits
// across its lifetime: PDUs sent/received and the terminal outcome of
// each association (accepted, rejected, aborted, released, closed).
type reactorMetrics struct {
	pdusSent     *prometheus.CounterVec
	pdusReceived *prometheus.CounterVec
	outcomes     *prometheus.CounterVec
}

// defaultMetrics is registered against the global registry once, at
// package initialisation, and is shared by every reactor New builds.
// Every method below is a no-op on a nil *reactorMetrics.
var defaultMetrics = newReactorMetrics(prometheus.DefaultRegisterer)

func newReactorMetrics(reg prometheus.Registerer) *reactorMetrics {
	m := &reactorMetrics{
		pdusSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dulengine",
			Name:      "pdus_sent_total",
			Help:      "PDUs written to the transport, by PDU type.",
		}, []string{"pdu_type"}),
		pdusReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dulengine",
			Name:      "pdus_received_total",
			Help:      "PDUs read from the transport, by PDU type.",
		}, []string{"pdu_type"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dulengine",
			Name:      "association_outcomes_total",
			Help:      "Terminal association outcomes: accepted, rejected, aborted, released, closed.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.pdusSent, m.pdusReceived, m.outcomes)
	}
	return m
}

func (m *reactorMetrics) sent(pduType string) {
	if m == nil {
		return
	}
	m.pdusSent.WithLabelValues(pduType).Inc()
}

func (m *reactorMetrics) received(pduType string) {
	if m == nil {
		return
	}
	m.pdusReceived.WithLabelValues(pduType).Inc()
}

func (m *reactorMetrics) outcome(name string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(name).Inc()
}
