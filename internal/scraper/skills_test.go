package scraper

import (
	"reflect"
	"testing"

	"jobradar/internal/domain/job"
)

func TestExtractSkills_CapsAtLimit(t *testing.T) {
	text := "Looking for Python, Java, JavaScript, Go, React, Docker and AWS experience"
	skills := ExtractSkills(text)

	if len(skills) != job.MaxSkills {
		t.Fatalf("expected %d skills, got %d: %v", job.MaxSkills, len(skills), skills)
	}
	if skills[0] != "Python" {
		t.Fatalf("vocabulary order not respected: %v", skills)
	}
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("must know DOCKER and kubernetes")
	want := []string{"Docker", "Kubernetes"}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("got %v want %v", skills, want)
	}
}

func TestExtractSkills_NoMatches(t *testing.T) {
	if skills := ExtractSkills("general management role"); len(skills) != 0 {
		t.Fatalf("expected no skills, got %v", skills)
	}
}

func TestCapSkills_DedupesAndCaps(t *testing.T) {
	in := []string{" Go ", "go", "Python", "", "Java", "Rust", "C++", "Zig"}
	out := CapSkills(in)

	if len(out) != job.MaxSkills {
		t.Fatalf("expected cap of %d, got %d: %v", job.MaxSkills, len(out), out)
	}
	if out[0] != "Go" || out[1] != "Python" {
		t.Fatalf("first occurrences not kept in order: %v", out)
	}
	for i, s := range out {
		if s == "go" {
			t.Fatalf("case-variant duplicate survived at %d: %v", i, out)
		}
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("  Senior\n\tGo   Developer ")
	if got != "Senior Go Developer" {
		t.Fatalf("got %q", got)
	}
}

func TestIsRemoteFriendly(t *testing.T) {
	cases := []struct {
		location, description string
		want                  bool
	}{
		{"Remote", "", true},
		{"Bangalore", "hybrid setup available", true},
		{"Pune", "work from home fridays", true},
		{"Mumbai", "onsite only", false},
	}
	for _, tc := range cases {
		if got := IsRemoteFriendly(tc.location, tc.description); got != tc.want {
			t.Errorf("IsRemoteFriendly(%q, %q) = %v", tc.location, tc.description, got)
		}
	}
}
