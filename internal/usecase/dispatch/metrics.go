package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "order_followup"

type Metrics struct {
	outcomes     *prometheus.CounterVec
	claimed      prometheus.Counter
	reaped       prometheus.Counter
	sendDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "dispatch",
				Name:      "outcomes_total",
				Help:      "Batch emails resolved by the dispatch worker, by final status",
			},
			[]string{"email_type", "outcome"},
		),
		claimed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "dispatch",
				Name:      "claimed_total",
				Help:      "Batch emails claimed for sending",
			},
		),
		reaped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "dispatch",
				Name:      "reaped_total",
				Help:      "Claims failed after their lease expired",
			},
		),
		sendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "dispatch",
				Name:      "send_duration_seconds",
				Help:      "Time spent in the mail transport",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"email_type"},
		),
	}
	reg.MustRegister(m.outcomes, m.claimed, m.reaped, m.sendDuration)
	return m
}
