// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	operationStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library_catalog",
		Name:      "operations_started_total",
		Help:      "Total number of catalog operations started by type",
	}, []string{"type"})
	operationCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library_catalog",
		Name:      "operations_completed_total",
		Help:      "Total number of catalog operations that succeeded by type",
	}, []string{"type"})
	operationFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library_catalog",
		Name:      "operations_failed_total",
		Help:      "Total number of catalog operations that did not apply, by type and reason",
	}, []string{"type", "reason"})
	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "library_catalog",
		Name:      "operation_duration_seconds",
		Help:      "Histogram of catalog operation durations in seconds by type",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs up to ~160ms
	}, []string{"type"})

	booksGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "library_catalog",
		Name:      "books_total",
		Help:      "Current total number of books in the catalog",
	})
	availableGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "library_catalog",
		Name:      "physical_books_available",
		Help:      "Current number of physical books available for borrowing",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(operationStarted, operationCompleted, operationFailed, operationDuration,
			booksGauge, availableGauge)
	})
}

// Operation lifecycle helpers
func IncOperationStarted(opType string)        { operationStarted.WithLabelValues(opType).Inc() }
func IncOperationCompleted(opType string)      { operationCompleted.WithLabelValues(opType).Inc() }
func IncOperationFailed(opType, reason string) { operationFailed.WithLabelValues(opType, reason).Inc() }
func ObserveOperationDuration(opType string, d time.Duration) {
	operationDuration.WithLabelValues(opType).Observe(d.Seconds())
}

// Gauges
func SetBooks(n int)             { booksGauge.Set(float64(n)) }
func SetAvailablePhysical(n int) { availableGauge.Set(float64(n)) }
