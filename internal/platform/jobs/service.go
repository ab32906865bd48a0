// Package jobs runs background work off the request path. Insight refreshes
// are the main customer: commands enqueue a refresh and return immediately,
// and a periodic tick keeps the snapshot from going stale between commands.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

const JobInsightsRefresh = "insights_refresh"

type Service struct {
	queue chan job
}

type job struct {
	Type string
	Run  func(context.Context) error
}

func New() *Service {
	return &Service{queue: make(chan job, 128)}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

// StartPeriodic enqueues run under jobType every interval until ctx ends.
func (s *Service) StartPeriodic(ctx context.Context, jobType string, interval time.Duration, run func(context.Context) error) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Enqueue(jobType, run)
			}
		}
	}()
}

// Enqueue never blocks the caller. A full queue drops the job with a
// warning; periodic work will be retried on the next tick anyway.
func (s *Service) Enqueue(jobType string, run func(context.Context) error) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			start := time.Now()
			if err := j.Run(ctx); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
				continue
			}
			slog.Debug("job run completed", "jobType", j.Type, "durationMs", time.Since(start).Milliseconds())
		}
	}
}
