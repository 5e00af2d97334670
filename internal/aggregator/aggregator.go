package aggregator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobradar/internal/domain/job"
	"jobradar/internal/scraper"
)

// Params are the request inputs the pipeline consumes. Zero values are
// replaced with the service defaults; the HTTP boundary validates ranges
// before they get here, the orchestrator only clamps defensively.
type Params struct {
	SearchTerm string
	Location   string
	Pages      int
}

func (p Params) withDefaults() Params {
	if strings.TrimSpace(p.SearchTerm) == "" {
		p.SearchTerm = scraper.DefaultSearchTerm
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = scraper.DefaultLocation
	}
	if p.Pages <= 0 {
		p.Pages = scraper.DefaultPages
	}
	if p.Pages > scraper.MaxPages {
		p.Pages = scraper.MaxPages
	}
	return p
}

// ProgressFunc observes each adapter finishing with its pre-dedup count.
type ProgressFunc func(source string, count int, err error)

// Aggregator fans one request out to every registered adapter, isolates
// their failures and merges their output deterministically. It never
// returns an error: total failure of every source is a valid, reportable
// result with all counts at zero.
type Aggregator struct {
	adapters          []scraper.Adapter
	maxConcurrent     int
	perAdapterTimeout time.Duration
	logger            *log.Logger
	onProgress        ProgressFunc
	now               func() time.Time
}

type Option func(*Aggregator)

func WithMaxConcurrent(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxConcurrent = n
		}
	}
}

func WithPerAdapterTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.perAdapterTimeout = d
		}
	}
}

func WithProgress(fn ProgressFunc) Option {
	return func(a *Aggregator) { a.onProgress = fn }
}

func New(adapters []scraper.Adapter, logger *log.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		adapters:          adapters,
		maxConcurrent:     3,
		perAdapterTimeout: 90 * time.Second,
		logger:            logger,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate runs every adapter concurrently (bounded by the pool), then
// concatenates outputs in adapter registration order, dedupes first-wins
// and assembles the response. Breakdown counts are pre-dedup.
func (a *Aggregator) Aggregate(ctx context.Context, params Params) job.AggregatedResult {
	params = params.withDefaults()

	perAdapter := make([][]job.Job, len(a.adapters))

	pool := scraper.NewWorkerPool(a.maxConcurrent, len(a.adapters))
	results := pool.Run(ctx)

	for i, adapter := range a.adapters {
		i, adapter := i, adapter
		pool.Submit(adapter.Name(), func(ctx context.Context) error {
			jobs, err := a.invoke(ctx, adapter, params)
			perAdapter[i] = sanitize(jobs, adapter.Name())
			return err
		})
	}
	pool.Close()

	for res := range results {
		count := 0
		for i, adapter := range a.adapters {
			if adapter.Name() == res.Source {
				count = len(perAdapter[i])
				break
			}
		}
		if res.Err != nil && a.logger != nil {
			a.logger.Printf("[Aggregator] source failed | source=%s kept=%d error=%v", res.Source, count, res.Err)
		}
		if a.onProgress != nil {
			a.onProgress(res.Source, count, res.Err)
		}
	}

	breakdown := make(map[string]int, len(a.adapters))
	var merged []job.Job
	for i, adapter := range a.adapters {
		jobs := perAdapter[i]
		breakdown[strings.ToLower(adapter.Name())] = len(jobs)
		merged = append(merged, jobs...)
	}

	deduped := Dedupe(merged)

	return job.AggregatedResult{
		Jobs:            deduped,
		TotalCount:      len(deduped),
		SourceBreakdown: breakdown,
		LastUpdated:     a.now().UTC(),
	}
}

// invoke runs one adapter under its own timeout with panic containment.
// The scrape runs in its own goroutine so a source that ignores its
// context cannot stall the pool past the deadline.
func (a *Aggregator) invoke(ctx context.Context, adapter scraper.Adapter, params Params) ([]job.Job, error) {
	actx, cancel := context.WithTimeout(ctx, a.perAdapterTimeout)
	defer cancel()

	type outcome struct {
		jobs []job.Job
		err  error
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("adapter panic: %v", r)}
			}
		}()
		jobs, err := adapter.Scrape(actx, params.SearchTerm, params.Location, params.Pages)
		ch <- outcome{jobs: jobs, err: err}
	}()

	select {
	case <-actx.Done():
		return nil, actx.Err()
	case o := <-ch:
		return o.jobs, o.err
	}
}

// sanitize enforces the record invariants at the pipeline boundary:
// required fields present, skill cap honored, source tag set.
func sanitize(jobs []job.Job, source string) []job.Job {
	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.TrimSpace(j.Title) == "" ||
			strings.TrimSpace(j.Company) == "" ||
			strings.TrimSpace(j.Location) == "" {
			continue
		}
		if len(j.Skills) > job.MaxSkills {
			j.Skills = j.Skills[:job.MaxSkills]
		}
		if strings.TrimSpace(j.Source) == "" {
			j.Source = source
		}
		out = append(out, j)
	}
	return out
}
