package metrics

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetSyncPrometheus() *SyncPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	syncMetrics       *SyncPrometheusMetrics
}

func New() Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer is meant for tests that need an isolated registry.
func NewWithRegisterer(reg prometheus.Registerer) Metrics {
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		syncMetrics:       newSyncPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetSyncPrometheus() *SyncPrometheusMetrics {
	return m.syncMetrics
}
