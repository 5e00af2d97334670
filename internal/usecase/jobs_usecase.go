package usecase

import (
	"context"
	"log"
	"time"

	"jobradar/internal/aggregator"
	"jobradar/internal/domain/job"
	"jobradar/internal/infrastructure/cache"
	"jobradar/internal/ws"
)

// JobAggregator is the slice of the orchestrator this usecase needs.
type JobAggregator interface {
	Aggregate(ctx context.Context, params aggregator.Params) job.AggregatedResult
}

// JobsUsecase serves listing requests from cache when possible and runs the
// full adapter fan-out otherwise. A short SetNX lock keeps concurrent cache
// misses for the same key from all launching browsers at once; losers of the
// lock race just scrape too, which is wasteful but correct.
type JobsUsecase struct {
	agg      JobAggregator
	cache    *cache.Redis
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewJobsUsecase(agg JobAggregator, c *cache.Redis, cacheTTL time.Duration, logger *log.Logger) *JobsUsecase {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &JobsUsecase{agg: agg, cache: c, cacheTTL: cacheTTL, logger: logger}
}

func (u *JobsUsecase) List(ctx context.Context, searchTerm, location string, pages int) job.AggregatedResult {
	key := JobsCacheKey(searchTerm, location, pages)

	var cached job.AggregatedResult
	if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		if u.logger != nil {
			u.logger.Printf("[Jobs] cache hit | key=%s total=%d", key, cached.TotalCount)
		}
		return cached
	}

	locked, _ := u.cache.SetIfNotExists(ctx, JobsLockKey(key), "1", 60*time.Second)
	if !locked {
		// Another request may have filled the cache while we waited on the lock.
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached
		}
	}

	result := u.agg.Aggregate(ctx, aggregator.Params{
		SearchTerm: searchTerm,
		Location:   location,
		Pages:      pages,
	})

	if result.TotalCount > 0 {
		if err := u.cache.SetJSON(ctx, key, result, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] cache store failed | key=%s error=%v", key, err)
		}
	}
	_ = u.cache.Delete(ctx, JobsLockKey(key))

	ws.NotifyAggregationDone(searchTerm, result.TotalCount)

	return result
}
