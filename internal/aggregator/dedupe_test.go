package aggregator

import (
	"testing"

	"jobradar/internal/domain/job"
)

func mkJob(title, company, location, source string) job.Job {
	return job.Job{
		JobID:    title + "|" + source,
		Title:    title,
		Company:  company,
		Location: location,
		Source:   source,
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	in := []job.Job{
		mkJob("Backend Engineer", "Acme", "Remote", "naukri"),
		mkJob("Frontend Dev", "Acme", "Remote", "naukri"),
		mkJob("backend engineer", "ACME", "remote", "shine"),
	}

	once := Dedupe(in)
	twice := Dedupe(once)

	if len(once) != 2 {
		t.Fatalf("expected 2 after dedupe, got %d", len(once))
	}
	if len(twice) != len(once) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(twice), len(once))
	}
	for i := range once {
		if once[i].JobID != twice[i].JobID {
			t.Fatalf("dedupe reordered on second pass at %d", i)
		}
	}
}

func TestDedupe_CaseInsensitiveFirstWins(t *testing.T) {
	first := mkJob("Backend Engineer", "Acme", "Remote", "src1")
	second := mkJob("Frontend Dev", "Acme", "Remote", "src1")
	dup := mkJob("backend engineer", "ACME", "remote", "src2")

	out := Dedupe([]job.Job{first, second, dup})

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Source != "src1" || out[0].Title != "Backend Engineer" {
		t.Fatalf("first occurrence not retained: %+v", out[0])
	}
	if out[1].Title != "Frontend Dev" {
		t.Fatalf("unrelated record dropped or reordered: %+v", out[1])
	}
}

func TestFingerprint_IgnoresWhitespaceAndCase(t *testing.T) {
	a := mkJob("  Backend Engineer ", "Acme", "Remote", "x")
	b := mkJob("backend engineer", "ACME", "REMOTE", "y")
	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("fingerprints differ for equivalent records")
	}

	c := mkJob("Backend Engineer", "Acme", "Bangalore", "x")
	if Fingerprint(a) == Fingerprint(c) {
		t.Fatalf("fingerprint collision across different locations")
	}
}
