package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"strconv"
	"time"
)

// Metrics holds the Prometheus metrics describing the requests sent by a client
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the request metrics and registers them at registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "asset_manager_client_requests_total",
			Help: "Total number of API requests by method and response status (\"error\" for transport failures)",
		}, []string{"method", "status"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "asset_manager_client_request_duration_seconds",
			Help:    "Duration of API requests by method",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (metrics *Metrics) observe(method string, status int, took time.Duration) {
	if metrics == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	metrics.Requests.WithLabelValues(method, label).Inc()
	metrics.Duration.WithLabelValues(method).Observe(took.Seconds())
}
