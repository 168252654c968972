package httpapi

import (
	"sync/atomic"
	"time"
)

// requestMetrics keeps lightweight process-local counters surfaced on the
// health endpoint. Not a metrics backend, just enough for a liveness probe
// to tell an idle process from a wedged one.
type requestMetrics struct {
	started   time.Time
	requests  uint64
	errors5xx uint64
	checkouts uint64
	refunds   uint64
}

func newRequestMetrics() *requestMetrics {
	return &requestMetrics{started: time.Now()}
}

func (m *requestMetrics) IncRequest()  { atomic.AddUint64(&m.requests, 1) }
func (m *requestMetrics) IncError5xx() { atomic.AddUint64(&m.errors5xx, 1) }
func (m *requestMetrics) IncCheckout() { atomic.AddUint64(&m.checkouts, 1) }
func (m *requestMetrics) IncRefund()   { atomic.AddUint64(&m.refunds, 1) }

func (m *requestMetrics) snapshot() map[string]any {
	return map[string]any{
		"uptimeSeconds": int64(time.Since(m.started).Seconds()),
		"requests":      atomic.LoadUint64(&m.requests),
		"errors5xx":     atomic.LoadUint64(&m.errors5xx),
		"checkouts":     atomic.LoadUint64(&m.checkouts),
		"refunds":       atomic.LoadUint64(&m.refunds),
	}
}
