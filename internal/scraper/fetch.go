package scraper

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxFetchBody = 5 << 20

// FetchClient is the lightweight transport for statically rendered markup.
// Each instance carries its own session and identity string; nothing is
// shared across adapters.
type FetchClient struct {
	client    *http.Client
	userAgent string

	minDelay time.Duration
	maxDelay time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

func NewFetchClient(timeout time.Duration) *FetchClient {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &FetchClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: randomUserAgent(),
		minDelay:  300 * time.Millisecond,
		maxDelay:  1200 * time.Millisecond,
		sleep:     sleepCtx,
	}
}

// Fetch gets url and parses the body into a document tree. A randomized
// pacing delay precedes every attempt; failed attempts back off with an
// increasing delay. After maxRetries attempts the last cause is wrapped in
// a FetchError.
func (c *FetchClient) Fetch(ctx context.Context, url string, maxRetries int) (*goquery.Document, error) {
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := c.sleep(ctx, c.pacingDelay()); err != nil {
			return nil, &FetchError{URL: url, Cause: err}
		}

		doc, err := c.fetchOnce(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, &FetchError{URL: url, Cause: ctx.Err()}
		}
		if err := c.sleep(ctx, backoffDelay(attempt)); err != nil {
			return nil, &FetchError{URL: url, Cause: err}
		}
	}
	return nil, &FetchError{URL: url, Cause: lastErr}
}

func (c *FetchClient) fetchOnce(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxFetchBody))
}

func (c *FetchClient) pacingDelay() time.Duration {
	if c.maxDelay <= c.minDelay {
		return c.minDelay
	}
	return c.minDelay + time.Duration(rand.Int63n(int64(c.maxDelay-c.minDelay)))
}

func backoffDelay(attempt int) time.Duration {
	base := time.Duration(attempt+1) * 500 * time.Millisecond
	jitter := time.Duration(rand.Int63n(int64(500 * time.Millisecond)))
	return base + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
