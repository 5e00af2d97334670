package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"jobradar/internal/domain/job"
)

const (
	DefaultSearchTerm = "software developer"
	DefaultLocation   = "India"
	DefaultPages      = 2
	MaxPages          = 5
)

// ErrTransportUnavailable marks adapter-level initialization failures
// (browser engine missing, allocator refused). The orchestrator treats the
// whole adapter invocation as zero records.
var ErrTransportUnavailable = errors.New("scrape transport unavailable")

// Adapter is one origin site. Scrape builds listing URLs, fetches them,
// locates cards and parses each into a Job. Cards missing title, company or
// location are dropped silently; a broken card or page never aborts the run.
type Adapter interface {
	Name() string
	Scrape(ctx context.Context, searchTerm, location string, pages int) ([]job.Job, error)
}

// FetchError is a transient network/anti-bot failure surfaced after retries
// are exhausted.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func clampPages(pages int) int {
	if pages < 1 {
		return 1
	}
	if pages > MaxPages {
		return MaxPages
	}
	return pages
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func absoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
