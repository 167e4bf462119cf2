package job

import (
	"context"
	"time"

	"ainews/usecase/aggregate_news_usecase"
)

// NewCacheWarmJob re-runs the forced aggregation path on a timer so user
// requests hit a warm cache. The external cron trigger remains the primary
// driver; this job is enabled only when REFRESH_INTERVAL is set.
func NewCacheWarmJob(aggregator *aggregate_news_usecase.AggregateNewsUsecase, interval time.Duration) Job {
	return Job{
		Name:     "cache-warm-refresh",
		Interval: interval,
		Timeout:  2 * time.Minute,
		Fn: func(ctx context.Context) error {
			_, err := aggregator.Refresh(ctx)
			return err
		},
	}
}
