package scraper

import (
	"strings"

	"jobradar/internal/domain/job"
)

// Technology vocabulary scanned against title+description when a source has
// no explicit skill markup. Order matters: earlier entries win the cap.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "React", "Node.js",
	"Angular", "Vue.js", "Flutter", "Dart", "Swift", "Kotlin", "PHP",
	"Laravel", "Django", "Flask", "Spring", "SQL", "MongoDB", "PostgreSQL",
	"MySQL", "Redis", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git",
	"HTML", "CSS", "Figma", "Adobe XD", "Photoshop", "Machine Learning",
	"AI", "TensorFlow", "PyTorch", "Data Science", "Analytics", "Tableau",
	"Power BI",
}

// ExtractSkills does a case-insensitive substring scan of text against the
// vocabulary and returns at most job.MaxSkills matches.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, job.MaxSkills)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) >= job.MaxSkills {
				break
			}
		}
	}
	return found
}

// CapSkills dedupes (keeping first occurrence) and enforces the cap on
// skills pulled from explicit card markup.
func CapSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, job.MaxSkills)
	for _, s := range skills {
		s = CleanText(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) >= job.MaxSkills {
			break
		}
	}
	return out
}

// CleanText collapses all interior whitespace runs to single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsRemoteFriendly derives the remote flag from location and description
// keyword matches.
func IsRemoteFriendly(location, description string) bool {
	loc := strings.ToLower(location)
	desc := strings.ToLower(description)
	return strings.Contains(loc, "remote") ||
		strings.Contains(desc, "remote") ||
		strings.Contains(desc, "hybrid") ||
		strings.Contains(desc, "work from home")
}
