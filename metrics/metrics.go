package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matematik7/octofit-go/api"
)

type Metrics struct {
	Registry *prometheus.Registry

	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "octofit",
			Name:      "fetch_total",
			Help:      "Backend list reads by resource and outcome.",
		}, []string{"resource", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "octofit",
			Name:      "fetch_duration_seconds",
			Help:      "Backend list read latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
	}

	m.Registry.MustRegister(m.fetches, m.duration)
	return m
}

func (m *Metrics) ObserveFetch(res api.Resource, outcome string, elapsed time.Duration) {
	m.fetches.WithLabelValues(string(res), outcome).Inc()
	m.duration.WithLabelValues(string(res)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
