package usecase

import (
	"context"
	"testing"
	"time"

	"jobradar/internal/aggregator"
	"jobradar/internal/domain/job"
)

type fakeAggregator struct {
	result    job.AggregatedResult
	gotParams aggregator.Params
	calls     int
}

func (f *fakeAggregator) Aggregate(_ context.Context, params aggregator.Params) job.AggregatedResult {
	f.calls++
	f.gotParams = params
	return f.result
}

func TestJobsList_PassesParamsThrough(t *testing.T) {
	agg := &fakeAggregator{result: job.AggregatedResult{
		Jobs:       []job.Job{{JobID: "1", Title: "Go Dev", Company: "Acme", Location: "Remote"}},
		TotalCount: 1,
		SourceBreakdown: map[string]int{
			"naukri": 1,
		},
		LastUpdated: time.Now().UTC(),
	}}

	uc := NewJobsUsecase(agg, nil, time.Minute, nil)
	res := uc.List(context.Background(), "golang developer", "Pune", 3)

	if agg.calls != 1 {
		t.Fatalf("aggregator called %d times", agg.calls)
	}
	if agg.gotParams.SearchTerm != "golang developer" || agg.gotParams.Location != "Pune" || agg.gotParams.Pages != 3 {
		t.Fatalf("params not passed through: %+v", agg.gotParams)
	}
	if res.TotalCount != 1 {
		t.Fatalf("result not returned: %+v", res)
	}
}

func TestJobsList_WorksWithoutCache(t *testing.T) {
	agg := &fakeAggregator{result: job.AggregatedResult{SourceBreakdown: map[string]int{}}}

	uc := NewJobsUsecase(agg, nil, 0, nil)
	res := uc.List(context.Background(), "", "", 0)

	if res.TotalCount != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if agg.calls != 1 {
		t.Fatalf("aggregator called %d times", agg.calls)
	}
}

func TestJobsCacheKey_NormalizesInputs(t *testing.T) {
	a := JobsCacheKey("  Software   Developer ", "INDIA", 2)
	b := JobsCacheKey("software developer", "india", 2)
	if a != b {
		t.Fatal("equivalent inputs produced different cache keys")
	}

	c := JobsCacheKey("software developer", "india", 3)
	if a == c {
		t.Fatal("page count not part of the cache key")
	}
}

func TestJobsLockKey(t *testing.T) {
	key := JobsCacheKey("x", "y", 1)
	lock := JobsLockKey(key)
	if lock == key {
		t.Fatal("lock key must differ from cache key")
	}
	if lock[:10] != "jobs:lock:" {
		t.Fatalf("unexpected lock key prefix: %s", lock)
	}
}
