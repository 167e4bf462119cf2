package job

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job defines a periodic background job.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler manages periodic background jobs with context-aware shutdown.
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

// NewScheduler creates a new scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job to be run when Start is called.
func (s *Scheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches all registered jobs as goroutines. Each job runs immediately
// on start, then repeats at its configured interval. All jobs stop when ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}
}

// Wait blocks until all jobs have stopped.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, j Job) {
	defer s.wg.Done()

	// Run immediately on start
	s.executeJob(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, j)
		}
	}
}

func (s *Scheduler) executeJob(ctx context.Context, j Job) {
	jobCtx := ctx
	var cancel context.CancelFunc
	if j.Timeout > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		slog.ErrorContext(ctx, "job failed",
			"job", j.Name,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return
	}

	slog.InfoContext(ctx, "job completed",
		"job", j.Name,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
