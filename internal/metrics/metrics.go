// Package metrics defines the Prometheus collectors for the time tracking
// service. A Metrics value owns its registry so tests can build isolated
// instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "timetrack"

// Metrics groups every collector exported by the service.
type Metrics struct {
	registry *prometheus.Registry

	entriesStarted  prometheus.Counter
	entriesStopped  prometheus.Counter
	startConflicts  prometheus.Counter
	entryDuration   prometheus.Histogram
	reportQueries   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	httpInFlight    prometheus.Gauge
}

// New creates a Metrics instance with its own registry. When withRuntime is
// set the Go runtime and process collectors are registered too.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		entriesStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_started_total",
			Help:      "Total number of time entries started.",
		}),
		entriesStopped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_stopped_total",
			Help:      "Total number of time entries completed.",
		}),
		startConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "start_conflicts_total",
			Help:      "Total number of starts rejected because an entry was already running.",
		}),
		entryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "entry_duration_minutes",
			Help:      "Duration of completed time entries in minutes.",
			Buckets:   []float64{5, 15, 30, 60, 120, 240, 480, 720},
		}),
		reportQueries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_queries_total",
			Help:      "Total number of report operations served.",
		}, []string{"operation"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
	}
}

// EntryStarted records a successful start.
func (m *Metrics) EntryStarted() { m.entriesStarted.Inc() }

// EntryStopped records a completed entry and its duration.
func (m *Metrics) EntryStopped(minutes int) {
	m.entriesStopped.Inc()
	m.entryDuration.Observe(float64(minutes))
}

// StartConflict records a start rejected by the one-running-entry rule.
func (m *Metrics) StartConflict() { m.startConflicts.Inc() }

// ReportQuery records a served report operation.
func (m *Metrics) ReportQuery(operation string) {
	m.reportQueries.WithLabelValues(operation).Inc()
}

// RequestStarted increments the in-flight gauge and returns a func that
// records the finished request.
func (m *Metrics) RequestStarted() func(method, route string, status int, elapsed time.Duration) {
	m.httpInFlight.Inc()
	return func(method, route string, status int, elapsed time.Duration) {
		m.httpInFlight.Dec()
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
