package metrics

import (
	"sync/atomic"
	"time"
)

// Collector counts requests with atomics so the hot path never locks.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	checkIns        uint64
	lateCheckIns    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordCheckIn tracks attendance volume alongside the HTTP counters.
func (c *Collector) RecordCheckIn(late bool) {
	atomic.AddUint64(&c.checkIns, 1)
	if late {
		atomic.AddUint64(&c.lateCheckIns, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal": total,
		"errorsTotal":   errs,
		"avgDurationMs": avg,
		"checkInsTotal": atomic.LoadUint64(&c.checkIns),
		"lateCheckIns":  atomic.LoadUint64(&c.lateCheckIns),
	}
}
