package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"jobradar/internal/domain/job"
)

var (
	ErrNoJobsProvided   = errors.New("no jobs provided")
	ErrNoResumeProvided = errors.New("no resume data provided")
)

const maxRecommendationCap = 10

// Completer is a single-turn LLM call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RecommendationUsecase ranks scraped jobs against a parsed resume. The LLM
// picks the ids; when it is unavailable or returns garbage, a skill-overlap
// score decides instead so the endpoint always answers.
type RecommendationUsecase struct {
	llm    Completer
	logger *log.Logger
}

func NewRecommendationUsecase(llm Completer, logger *log.Logger) *RecommendationUsecase {
	return &RecommendationUsecase{llm: llm, logger: logger}
}

type ResumeSummary struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  string   `json:"education,omitempty"`
	Experience string   `json:"experience,omitempty"`
}

func (u *RecommendationUsecase) Recommend(ctx context.Context, resume ResumeSummary, jobs []job.Job, maxRecommendations int) ([]job.Job, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobsProvided
	}
	if isEmptyResume(resume) {
		return nil, ErrNoResumeProvided
	}

	maxN := maxRecommendations
	if maxN < 1 {
		maxN = 1
	}
	if maxN > maxRecommendationCap {
		maxN = maxRecommendationCap
	}

	ids := u.askLLM(ctx, resume, jobs, maxN)
	if len(ids) > 0 {
		if picked := pickByID(jobs, ids, maxN); len(picked) > 0 {
			return picked, nil
		}
	}

	return rankBySkillOverlap(resume.Skills, jobs, maxN), nil
}

var recommendedIDsRe = regexp.MustCompile(`(?i)\{[^{}]*recommended_job_ids[^{}]*\}`)

func (u *RecommendationUsecase) askLLM(ctx context.Context, resume ResumeSummary, jobs []job.Job, maxN int) []string {
	if u.llm == nil {
		return nil
	}

	prompt, err := buildPrompt(resume, jobs, maxN)
	if err != nil {
		return nil
	}

	text, err := u.llm.Complete(ctx, prompt)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Recommend] llm call failed, using overlap fallback | error=%v", err)
		}
		return nil
	}

	block := recommendedIDsRe.FindString(text)
	if block == "" {
		return nil
	}

	var parsed struct {
		RecommendedJobIDs []string `json:"recommended_job_ids"`
	}
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return nil
	}
	return parsed.RecommendedJobIDs
}

type compactJob struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

func buildPrompt(resume ResumeSummary, jobs []job.Job, maxN int) (string, error) {
	// Cap list size and trim descriptions to keep the prompt small.
	capped := jobs
	if len(capped) > 100 {
		capped = capped[:100]
	}
	compact := make([]compactJob, 0, len(capped))
	for _, j := range capped {
		skills := j.Skills
		if len(skills) > 8 {
			skills = skills[:8]
		}
		desc := j.Description
		if len(desc) > 180 {
			desc = desc[:180]
		}
		compact = append(compact, compactJob{
			JobID:       j.JobID,
			Title:       j.Title,
			Company:     j.Company,
			Skills:      skills,
			Experience:  j.ExperienceRequired,
			Location:    j.Location,
			Description: desc,
		})
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return "", err
	}
	jobsJSON, err := json.Marshal(compact)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		`You are a job matching engine. Given a resume summary and a list of jobs, `+
			`return EXACT JSON: {"recommended_job_ids": ["id1", ...]} containing up to %d best matching job_ids. `+
			`Prefer strong skill overlap, appropriate experience, and location fit. `+
			`Do not include explanations, ONLY valid JSON.`+"\n\n"+
			`Resume: %s`+"\n"+`Jobs: %s`,
		maxN, resumeJSON, jobsJSON,
	), nil
}

func pickByID(jobs []job.Job, ids []string, maxN int) []job.Job {
	order := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, ok := order[id]; !ok {
			order[id] = i
		}
	}

	picked := make([]job.Job, 0, maxN)
	for _, j := range jobs {
		if _, ok := order[j.JobID]; ok {
			picked = append(picked, j)
		}
	}
	sort.SliceStable(picked, func(i, k int) bool {
		return order[picked[i].JobID] < order[picked[k].JobID]
	})
	if len(picked) > maxN {
		picked = picked[:maxN]
	}
	return picked
}

func rankBySkillOverlap(resumeSkills []string, jobs []job.Job, maxN int) []job.Job {
	skillSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		skillSet[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	type scored struct {
		j     job.Job
		score int
	}
	ranked := make([]scored, 0, len(jobs))
	for _, j := range jobs {
		count := 0
		for _, s := range j.Skills {
			if _, ok := skillSet[strings.ToLower(s)]; ok {
				count++
			}
		}
		ranked = append(ranked, scored{j: j, score: count})
	}
	sort.SliceStable(ranked, func(i, k int) bool { return ranked[i].score > ranked[k].score })

	out := make([]job.Job, 0, maxN)
	for i := 0; i < len(ranked) && i < maxN; i++ {
		out = append(out, ranked[i].j)
	}
	return out
}

func isEmptyResume(r ResumeSummary) bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" &&
		len(r.Skills) == 0 && r.Education == "" && r.Experience == ""
}
