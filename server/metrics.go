package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	translations *prometheus.CounterVec
}

// newMetrics creates the server's collectors in a registry of its own, so
// that several servers may live in one process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emojify",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "emojify",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emojify",
			Name:      "translations_total",
			Help:      "Translations by direction and producing source.",
		}, []string{"direction", "source"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.translations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// instrument wraps a handler to count and time its requests.
func (m *metrics) instrument(endpoint string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"endpoint": endpoint}
	return promhttp.InstrumentHandlerDuration(
		m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), h),
	)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
