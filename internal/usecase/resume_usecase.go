package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ErrEmptyUpload = errors.New("uploaded file is empty")

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

type ResumeUsecase struct {
	extractor TextExtractor
}

func NewResumeUsecase(extractor TextExtractor) *ResumeUsecase {
	return &ResumeUsecase{extractor: extractor}
}

type ParsedResume struct {
	Filename       string   `json:"filename"`
	Size           int      `json:"size"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Name           string   `json:"name,omitempty"`
	Skills         []string `json:"skills"`
	RawTextSnippet string   `json:"raw_text_snippet"`
}

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s-]?)?(\(?\d{2,4}\)?[\s-]?)?\d{6,10}`)
	nameRe  = regexp.MustCompile(`^[A-Z][a-zA-Z'-]+$`)
)

var resumeSkillKeywords = []string{
	"Python", "Dart", "Flutter", "Java", "JavaScript", "React", "Node",
	"SQL", "MongoDB", "AWS", "Docker", "Kubernetes", "TypeScript",
}

// Parse extracts contact details and a skill list from an uploaded resume.
// Plain-text payloads are used directly; anything else goes through the PDF
// extractor.
func (u *ResumeUsecase) Parse(ctx context.Context, filename string, content []byte) (ParsedResume, error) {
	if len(content) == 0 {
		return ParsedResume{}, ErrEmptyUpload
	}

	text := ""
	if utf8.Valid(content) {
		text = string(content)
	}
	if len(strings.TrimSpace(text)) < 20 || looksLikePDF(content) {
		extracted, err := u.extractor.ExtractText(ctx, content)
		if err == nil && strings.TrimSpace(extracted) != "" {
			text = extracted
		}
	}

	return ParsedResume{
		Filename:       filename,
		Size:           len(content),
		Email:          emailRe.FindString(text),
		Phone:          phoneRe.FindString(text),
		Name:           extractName(text),
		Skills:         scanSkillKeywords(text),
		RawTextSnippet: snippet(text, 1000),
	}, nil
}

func looksLikePDF(content []byte) bool {
	return len(content) >= 5 && string(content[:5]) == "%PDF-"
}

// extractName looks for an early line made of two to four capitalized words.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 4 {
			continue
		}
		capWords := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if nameRe.MatchString(t) {
				capWords = append(capWords, t)
			}
		}
		if len(capWords) >= 2 {
			return strings.Join(capWords, " ")
		}
	}
	return ""
}

func scanSkillKeywords(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, k := range resumeSkillKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			found = append(found, k)
		}
	}
	return found
}

func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
