// Package post_news_usecase cross-posts unposted articles to the social
// platform, one at a time, with a rate-limit delay between posts.
package post_news_usecase

import (
	"context"
	"sync"
	"time"

	"ainews/domain"
	"ainews/port/news_cache_port"
	"ainews/port/social_post_port"
	"ainews/utils/logger"
)

// PostNewsUsecase owns the posted-id set: it is the only writer. A mutex
// serializes runs so two overlapping triggers cannot double-post.
type PostNewsUsecase struct {
	posted news_cache_port.PostedStorePort
	social social_post_port.SocialPostPort
	format Format

	mu sync.Mutex
	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration)
}

func NewPostNewsUsecase(
	posted news_cache_port.PostedStorePort,
	social social_post_port.SocialPostPort,
	format Format,
) *PostNewsUsecase {
	return &PostNewsUsecase{
		posted: posted,
		social: social,
		format: format,
		sleep:  contextSleep,
	}
}

// Execute posts up to maxPosts items not yet in the posted-id set. A
// non-positive maxPosts posts nothing, so operators can disable posting
// without removing credentials. Candidates are processed in input order. A
// failed item is recorded and the run continues; failures never enter the
// posted-id set, so they may be retried on a later run.
func (u *PostNewsUsecase) Execute(ctx context.Context, items []domain.NewsItem, maxPosts int, delay time.Duration) []domain.PostResult {
	u.mu.Lock()
	defer u.mu.Unlock()

	if maxPosts <= 0 {
		return []domain.PostResult{}
	}

	postedIDs := u.posted.GetPostedIDs(ctx)
	postedSet := make(map[string]struct{}, len(postedIDs))
	for _, id := range postedIDs {
		postedSet[id] = struct{}{}
	}

	var candidates []domain.NewsItem
	for _, item := range items {
		if _, done := postedSet[item.ID]; done {
			continue
		}
		candidates = append(candidates, item)
		if len(candidates) == maxPosts {
			break
		}
	}

	results := make([]domain.PostResult, 0, len(candidates))
	for i, item := range candidates {
		if i > 0 {
			u.sleep(ctx, delay)
		}
		if err := ctx.Err(); err != nil {
			results = append(results, domain.PostResult{
				ItemID: item.ID,
				Title:  item.Title,
				Error:  err.Error(),
			})
			continue
		}

		text := FormatTweet(item, u.format)
		postID, err := u.social.Post(ctx, text)
		if err != nil {
			logger.Logger.Warn("social post failed, continuing with next item",
				"item_id", item.ID,
				"error", err,
			)
			results = append(results, domain.PostResult{
				ItemID: item.ID,
				Title:  item.Title,
				Error:  err.Error(),
			})
			continue
		}

		u.posted.AddPostedID(ctx, item.ID)
		results = append(results, domain.PostResult{
			ItemID: item.ID,
			Title:  item.Title,
			Posted: true,
			PostID: postID,
		})

		logger.Logger.Info("article posted",
			"item_id", item.ID,
			"post_id", postID,
		)
	}

	return results
}

func contextSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
