package scraper

import (
	"context"
	"sync"
)

// Task is one unit of scraping work executed by the pool.
type Task func(ctx context.Context) error

// Result reports the outcome of one task.
type Result struct {
	Source string
	Err    error
}

// WorkerPool bounds the number of adapter invocations running at once.
// Browser-backed adapters hold a Chrome process each, so the bound matters.
type WorkerPool struct {
	workers int
	tasks   chan namedTask
	wg      sync.WaitGroup
}

type namedTask struct {
	source string
	run    Task
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan namedTask, buffer),
	}
}

// Submit queues a task. Blocks when the buffer is full.
func (p *WorkerPool) Submit(source string, t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- namedTask{source: source, run: t}
}

// Close signals that no more tasks will be submitted. The results channel
// returned by Run closes once all queued tasks finish.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns the result stream. Workers stop on
// context cancellation or when the task channel is drained.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	buf := p.workers * 16
	out := make(chan Result, buf)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					err := t.run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Source: t.source, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}
