package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const placementIndiaListing = `<!doctype html>
<html><body>
<div class="sjc-iteam" data-url="/jobs/detail/golang-developer-101">
  <h2 class="sjci-heading">
    <a class="job-name" href="/jobs/detail/golang-developer-101">Golang Developer</a>
    <p class="job-cname">Acme Systems</p>
  </h2>
  <ul class="sjci-need">
    <li>2-4 yrs</li>
    <li>3.5 - 6 Lac P.A.</li>
    <li><span>Bangalore</span></li>
  </ul>
  <div class="sjci-skils">
    <span>Go</span><span>Docker</span><span>PostgreSQL</span>
  </div>
</div>
<div class="sjc-iteam">
  <h2 class="sjci-heading">
    <a class="job-name" href="/jobs/detail/fresher-qa-102">QA Trainee</a>
    <p class="job-cname">Beta Labs</p>
  </h2>
  <ul class="sjci-need">
    <li>Fresher</li>
  </ul>
</div>
<div class="sjc-iteam">
  <h2 class="sjci-heading">
    <a class="job-name" href="/jobs/detail/broken-103">Nameless Role</a>
  </h2>
</div>
</body></html>`

func TestPlacementIndiaAdapter_ParsesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(placementIndiaListing))
	}))
	defer srv.Close()

	adapter := NewPlacementIndiaAdapterWithBaseURL(srv.URL, nil)
	jobs, err := adapter.Scrape(context.Background(), "golang", "Pune", 1)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	// Third card has no company and must be dropped.
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Golang Developer" || first.Company != "Acme Systems" {
		t.Fatalf("unexpected first card: %+v", first)
	}
	if first.Location != "Bangalore" {
		t.Fatalf("location not parsed from span: %q", first.Location)
	}
	if first.ExperienceRequired != "2-4 yrs" {
		t.Fatalf("experience not classified: %q", first.ExperienceRequired)
	}
	if first.Salary != "3.5 - 6 Lac P.A." {
		t.Fatalf("salary not classified: %q", first.Salary)
	}
	if len(first.Skills) != 3 || first.Skills[0] != "Go" {
		t.Fatalf("skills not taken from card markup: %v", first.Skills)
	}
	if first.ApplyLink != srv.URL+"/jobs/detail/golang-developer-101" {
		t.Fatalf("apply link not absolutized: %q", first.ApplyLink)
	}
	if first.Source != "PlacementIndia" {
		t.Fatalf("source tag wrong: %q", first.Source)
	}
	if first.JobID == "" {
		t.Fatal("missing job id")
	}

	second := jobs[1]
	if second.Location != "Pune" {
		t.Fatalf("fallback location not applied: %q", second.Location)
	}
	if second.ExperienceRequired != "Fresher" {
		t.Fatalf("fresher experience not kept: %q", second.ExperienceRequired)
	}
	if second.Salary != "Not disclosed" {
		t.Fatalf("salary default missing: %q", second.Salary)
	}
}

func TestPlacementIndiaAdapter_AllPagesFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	adapter := NewPlacementIndiaAdapterWithBaseURL(srv.URL, nil)
	jobs, err := adapter.Scrape(context.Background(), "", "", 2)
	if err == nil {
		t.Fatal("expected error when every page fails")
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(jobs))
	}
}

func TestPlacementIndiaAdapter_PartialPageFailureTolerated(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(placementIndiaListing))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter := NewPlacementIndiaAdapterWithBaseURL(srv.URL, nil)
	jobs, err := adapter.Scrape(context.Background(), "", "", 2)
	if err != nil {
		t.Fatalf("partial failure should not error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected jobs from the healthy page, got %d", len(jobs))
	}
}
