package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExtractor struct {
	text string
	err  error

	called bool
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ []byte) (string, error) {
	f.called = true
	return f.text, f.err
}

const sampleResumeText = `Priya Sharma
Senior Software Engineer

Email: priya.sharma@example.com
Phone: +91 9876543210

Experienced in Python, Docker and AWS. Built React dashboards.`

func TestResumeParse_PlainText(t *testing.T) {
	ext := &fakeExtractor{}
	uc := NewResumeUsecase(ext)

	out, err := uc.Parse(context.Background(), "resume.txt", []byte(sampleResumeText))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ext.called {
		t.Fatal("plain text should not hit the pdf extractor")
	}
	if out.Email != "priya.sharma@example.com" {
		t.Fatalf("email not extracted: %q", out.Email)
	}
	if out.Phone == "" {
		t.Fatalf("phone not extracted")
	}
	if out.Name != "Priya Sharma" {
		t.Fatalf("name heuristic failed: %q", out.Name)
	}
	for _, want := range []string{"Python", "Docker", "AWS", "React"} {
		found := false
		for _, s := range out.Skills {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("skill %s missing from %v", want, out.Skills)
		}
	}
	if out.Size != len(sampleResumeText) {
		t.Fatalf("size wrong: %d", out.Size)
	}
}

func TestResumeParse_PDFGoesThroughExtractor(t *testing.T) {
	ext := &fakeExtractor{text: sampleResumeText}
	uc := NewResumeUsecase(ext)

	payload := append([]byte("%PDF-1.7\n"), []byte("binarybinarybinary")...)
	out, err := uc.Parse(context.Background(), "resume.pdf", payload)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !ext.called {
		t.Fatal("pdf payload should hit the extractor")
	}
	if out.Email != "priya.sharma@example.com" {
		t.Fatalf("email not extracted from pdf text: %q", out.Email)
	}
	if out.Filename != "resume.pdf" {
		t.Fatalf("filename lost: %q", out.Filename)
	}
}

func TestResumeParse_EmptyUpload(t *testing.T) {
	uc := NewResumeUsecase(&fakeExtractor{})
	if _, err := uc.Parse(context.Background(), "x.pdf", nil); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}
}

func TestResumeParse_ExtractorFailureStillAnswers(t *testing.T) {
	ext := &fakeExtractor{err: errors.New("corrupt pdf")}
	uc := NewResumeUsecase(ext)

	payload := []byte("%PDF-1.4 garbage")
	out, err := uc.Parse(context.Background(), "broken.pdf", payload)
	if err != nil {
		t.Fatalf("parse should degrade, not fail: %v", err)
	}
	if out.Size != len(payload) {
		t.Fatalf("size wrong: %d", out.Size)
	}
}

func TestResumeParse_SnippetTruncation(t *testing.T) {
	long := strings.Repeat("resume text with plenty of words in it ", 100)
	uc := NewResumeUsecase(&fakeExtractor{})

	out, err := uc.Parse(context.Background(), "long.txt", []byte(long))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(out.RawTextSnippet) > 1000 {
		t.Fatalf("snippet not truncated: %d", len(out.RawTextSnippet))
	}
}
