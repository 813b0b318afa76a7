package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type SyncPrometheusMetrics struct {
	recordsSynced *prometheus.CounterVec
	recordsFailed *prometheus.CounterVec
	runsTotal     *prometheus.CounterVec
}

func newSyncPrometheusMetrics(reg prometheus.Registerer) *SyncPrometheusMetrics {
	mtc := &SyncPrometheusMetrics{
		recordsSynced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banksync_records_synced_total",
				Help: "Number of records written by document type and outcome",
			},
			[]string{"doc_type", "outcome"},
		),
		recordsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banksync_records_failed_total",
				Help: "Number of records skipped or rejected by failure kind",
			},
			[]string{"kind"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "banksync_runs_total",
				Help: "Number of sync runs by final status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(mtc.recordsSynced)
	reg.MustRegister(mtc.recordsFailed)
	reg.MustRegister(mtc.runsTotal)

	return mtc
}

func (m *SyncPrometheusMetrics) RecordSynced(docType, outcome string, n int) {
	if m == nil {
		return
	}
	m.recordsSynced.WithLabelValues(docType, outcome).Add(float64(n))
}

func (m *SyncPrometheusMetrics) RecordFailed(kind string) {
	if m == nil {
		return
	}
	m.recordsFailed.WithLabelValues(kind).Inc()
}

func (m *SyncPrometheusMetrics) RecordRun(status string) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
}
