package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	LoginAttemptsTotal  *prometheus.CounterVec
	RecordsCreatedTotal prometheus.Counter
	DictionarySearches  prometheus.Counter
	AuditEntriesTotal   prometheus.Counter

	StoreWriteDuration *prometheus.HistogramVec
	StoreWriteFailures *prometheus.CounterVec
}

func NewCollector(serviceName string) *Collector {
	return &Collector{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		LoginAttemptsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Total login attempts by outcome.",
		}, []string{"outcome"}),

		RecordsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinical",
			Name:      "records_created_total",
			Help:      "Total clinical records created.",
		}),

		DictionarySearches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "terminology",
			Name:      "searches_total",
			Help:      "Total dictionary autocomplete searches served.",
		}),

		AuditEntriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "audit",
			Name:      "entries_total",
			Help:      "Total audit log entries written.",
		}),

		StoreWriteDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "store",
			Name:      "write_duration_seconds",
			Help:      "Whole-file store rewrite latency distribution.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"store"}),

		StoreWriteFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "store",
			Name:      "write_failures_total",
			Help:      "Store rewrite failures. Alert if non-zero.",
		}, []string{"store"}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
