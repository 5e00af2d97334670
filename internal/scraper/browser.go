package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// BrowserFetcher renders JavaScript-heavy listing pages through a headless
// Chrome instance. The browser lives only for one Fetch call; every context
// is cancelled on all exit paths so the process is always released.
type BrowserFetcher struct {
	userAgent   string
	pageTimeout time.Duration
	settleDelay time.Duration
}

// BrowserPage describes what to wait for before snapshotting the DOM.
type BrowserPage struct {
	URL string
	// WaitSelector, when set, blocks until the selector is visible
	// (bounded by the page timeout). Falls back to body readiness.
	WaitSelector string
	// MaxScrolls scrolls to the bottom repeatedly to trigger lazy loading,
	// stopping early once the document height stops growing.
	MaxScrolls int
}

func NewBrowserFetcher(pageTimeout time.Duration) *BrowserFetcher {
	if pageTimeout <= 0 {
		pageTimeout = 30 * time.Second
	}
	return &BrowserFetcher{
		userAgent:   randomUserAgent(),
		pageTimeout: pageTimeout,
		settleDelay: 1500 * time.Millisecond,
	}
}

// Fetch navigates, waits and returns the rendered DOM as a document tree.
// Allocator failures surface as ErrTransportUnavailable so the caller can
// report the whole adapter invocation as failed.
func (f *BrowserFetcher) Fetch(ctx context.Context, page BrowserPage) (*goquery.Document, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(f.userAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	pageCtx, pageCancel := context.WithTimeout(browserCtx, f.pageTimeout)
	defer pageCancel()

	actions := []chromedp.Action{
		chromedp.Navigate(page.URL),
	}
	if sel := strings.TrimSpace(page.WaitSelector); sel != "" {
		actions = append(actions, chromedp.WaitVisible(sel, chromedp.ByQuery))
	} else {
		actions = append(actions, chromedp.WaitReady("body", chromedp.ByQuery))
	}
	actions = append(actions, chromedp.Sleep(f.settleDelay))

	if err := chromedp.Run(pageCtx, actions...); err != nil {
		if isAllocatorFailure(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
		}
		return nil, &FetchError{URL: page.URL, Cause: err}
	}

	if page.MaxScrolls > 0 {
		if err := scrollToBottom(pageCtx, page.MaxScrolls); err != nil {
			return nil, &FetchError{URL: page.URL, Cause: err}
		}
	}

	var html string
	if err := chromedp.Run(pageCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, &FetchError{URL: page.URL, Cause: err}
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// scrollToBottom keeps scrolling until the document stops growing or the
// scroll budget runs out. Used for infinite-list pages.
func scrollToBottom(ctx context.Context, maxScrolls int) error {
	var lastHeight int64
	if err := chromedp.Run(ctx, chromedp.Evaluate(`document.body.scrollHeight`, &lastHeight)); err != nil {
		return err
	}

	for i := 0; i < maxScrolls; i++ {
		var newHeight int64
		err := chromedp.Run(ctx,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight); document.body.scrollHeight`, &newHeight),
			chromedp.Sleep(1200*time.Millisecond),
			chromedp.Evaluate(`document.body.scrollHeight`, &newHeight),
		)
		if err != nil {
			return err
		}
		if newHeight == lastHeight {
			break
		}
		lastHeight = newHeight
	}
	return nil
}

func isAllocatorFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "exec:") ||
		strings.Contains(msg, "failed to start")
}
