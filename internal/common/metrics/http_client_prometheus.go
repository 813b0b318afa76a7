package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPClientPrometheusMetrics struct {
	requestDuration *prometheus.HistogramVec
}

func newHTTPClientPrometheusMetrics(reg prometheus.Registerer) *HTTPClientPrometheusMetrics {
	mtc := &HTTPClientPrometheusMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "banksync_http_client_request_duration_seconds",
				Help: "Duration of outbound HTTP requests by service, method and status code",
			},
			[]string{"service", "method", "status_code"},
		),
	}

	reg.MustRegister(mtc.requestDuration)

	return mtc
}

func (m *HTTPClientPrometheusMetrics) Record(duration time.Duration, serviceName, method, url string, statusCode int) {
	if m == nil {
		return
	}

	m.requestDuration.
		WithLabelValues(serviceName, method, strconv.Itoa(statusCode)).
		Observe(duration.Seconds())
}
