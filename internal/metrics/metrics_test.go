// file: internal/metrics/metrics_test.go
// version: 2.0.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterIsIdempotent(t *testing.T) {
	Register()
	Register()
}

func TestOperationCounters(t *testing.T) {
	before := testutil.ToFloat64(operationStarted.WithLabelValues("borrow"))
	IncOperationStarted("borrow")
	if got := testutil.ToFloat64(operationStarted.WithLabelValues("borrow")); got != before+1 {
		t.Fatalf("expected started counter %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(operationCompleted.WithLabelValues("borrow"))
	IncOperationCompleted("borrow")
	if got := testutil.ToFloat64(operationCompleted.WithLabelValues("borrow")); got != before+1 {
		t.Fatalf("expected completed counter %v, got %v", before+1, got)
	}

	before = testutil.ToFloat64(operationFailed.WithLabelValues("borrow", "not_found"))
	IncOperationFailed("borrow", "not_found")
	if got := testutil.ToFloat64(operationFailed.WithLabelValues("borrow", "not_found")); got != before+1 {
		t.Fatalf("expected failed counter %v, got %v", before+1, got)
	}
}

func TestObserveOperationDuration(t *testing.T) {
	ObserveOperationDuration("list", 100*time.Microsecond)
	if n := testutil.CollectAndCount(operationDuration); n == 0 {
		t.Fatal("expected at least one duration series")
	}
}

func TestGauges(t *testing.T) {
	SetBooks(42)
	if got := testutil.ToFloat64(booksGauge); got != 42 {
		t.Fatalf("expected books gauge 42, got %v", got)
	}
	SetAvailablePhysical(7)
	if got := testutil.ToFloat64(availableGauge); got != 7 {
		t.Fatalf("expected available gauge 7, got %v", got)
	}
}
