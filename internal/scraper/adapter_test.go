package scraper

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "h"},
		{"héllo", 3, "hé"},
		{"日本語", 4, "日"},
		{"", 3, ""},
		{"hello", 0, "hello"},
	}

	for _, tc := range cases {
		got := truncate(tc.in, tc.max)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.max, got)
		}
	}
}

func TestTruncateLongDescriptionStaysValid(t *testing.T) {
	desc := strings.Repeat("açaí berry engineer ", 60)
	got := truncate(desc, 500)
	if len(got) > 500 {
		t.Fatalf("truncated length %d exceeds cap", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated description is invalid UTF-8")
	}
}

func TestBrowserAdaptersOwnTheirFetchers(t *testing.T) {
	n := NewNaukriAdapter(nil, nil)
	r := NewRemoteOnlyAdapter(nil, nil)
	s := NewShineAdapter(nil, nil)

	if n.browser == r.browser || n.browser == s.browser || r.browser == s.browser {
		t.Fatal("adapters constructed without a fetcher must not share one")
	}
}
