package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestFetchClient() *FetchClient {
	c := NewFetchClient(5 * time.Second)
	c.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return c
}

func TestFetchClient_RetriesUntilSuccess(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`<html><body><h1 class="ok">ready</h1></body></html>`))
	}))
	defer srv.Close()

	doc, err := newTestFetchClient().Fetch(context.Background(), srv.URL, 3)
	if err != nil {
		t.Fatalf("fetch failed after retries: %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits)
	}
	if doc.Find("h1.ok").Text() != "ready" {
		t.Fatalf("parsed document missing expected markup")
	}
}

func TestFetchClient_ExhaustedRetriesReturnFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestFetchClient().Fetch(context.Background(), srv.URL, 2)
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.URL != srv.URL {
		t.Fatalf("error carries wrong url: %s", fe.URL)
	}
}

func TestFetchClient_SetsIdentityHeaders(t *testing.T) {
	var ua, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	if _, err := newTestFetchClient().Fetch(context.Background(), srv.URL, 1); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if ua == "" || accept == "" {
		t.Fatalf("identity headers missing: ua=%q accept=%q", ua, accept)
	}
}

func TestFetchClient_CancelledContextAbortsRetryLoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetchClient().Fetch(ctx, srv.URL, 5)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestBackoffDelay_Increases(t *testing.T) {
	// Jitter adds up to 500ms, so compare lower bounds two steps apart.
	if backoffDelay(3) < backoffDelay(0)-500*time.Millisecond {
		t.Fatal("backoff base not increasing with attempts")
	}
	if backoffDelay(0) < 500*time.Millisecond {
		t.Fatalf("first backoff below base: %s", backoffDelay(0))
	}
}
