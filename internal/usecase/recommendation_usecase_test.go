package usecase

import (
	"context"
	"errors"
	"testing"

	"jobradar/internal/domain/job"
)

type fakeCompleter struct {
	reply string
	err   error

	gotPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.reply, f.err
}

func recJob(id, title string, skills ...string) job.Job {
	return job.Job{JobID: id, Title: title, Company: "Acme", Location: "Remote", Skills: skills}
}

func TestRecommend_UsesLLMOrdering(t *testing.T) {
	jobs := []job.Job{
		recJob("j1", "Backend", "Go"),
		recJob("j2", "Frontend", "React"),
		recJob("j3", "Data", "Python"),
	}
	llm := &fakeCompleter{reply: `Here you go: {"recommended_job_ids": ["j3", "j1"]}`}

	uc := NewRecommendationUsecase(llm, nil)
	out, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"Go"}}, jobs, 5)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(out) != 2 || out[0].JobID != "j3" || out[1].JobID != "j1" {
		t.Fatalf("llm ordering not preserved: %+v", out)
	}
	if llm.gotPrompt == "" {
		t.Fatal("llm never called")
	}
}

func TestRecommend_FallsBackOnLLMError(t *testing.T) {
	jobs := []job.Job{
		recJob("j1", "Backend", "Go", "Docker"),
		recJob("j2", "Frontend", "React"),
		recJob("j3", "Platform", "Go", "Docker", "Kubernetes"),
	}
	llm := &fakeCompleter{err: errors.New("quota exceeded")}

	uc := NewRecommendationUsecase(llm, nil)
	out, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"go", "docker", "kubernetes"}}, jobs, 2)
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out))
	}
	if out[0].JobID != "j3" || out[1].JobID != "j1" {
		t.Fatalf("overlap ranking wrong: %s, %s", out[0].JobID, out[1].JobID)
	}
}

func TestRecommend_FallsBackOnGarbageReply(t *testing.T) {
	jobs := []job.Job{recJob("j1", "Backend", "Go"), recJob("j2", "Frontend", "React")}
	llm := &fakeCompleter{reply: "sorry, I cannot help with that"}

	uc := NewRecommendationUsecase(llm, nil)
	out, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"react"}}, jobs, 1)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(out) != 1 || out[0].JobID != "j2" {
		t.Fatalf("expected overlap winner j2, got %+v", out)
	}
}

func TestRecommend_NilLLMStillWorks(t *testing.T) {
	jobs := []job.Job{recJob("j1", "Backend", "Go")}

	uc := NewRecommendationUsecase(nil, nil)
	out, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"go"}}, jobs, 3)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(out))
	}
}

func TestRecommend_InputValidation(t *testing.T) {
	uc := NewRecommendationUsecase(nil, nil)

	if _, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"go"}}, nil, 5); !errors.Is(err, ErrNoJobsProvided) {
		t.Fatalf("expected ErrNoJobsProvided, got %v", err)
	}
	if _, err := uc.Recommend(context.Background(), ResumeSummary{}, []job.Job{recJob("j1", "X")}, 5); !errors.Is(err, ErrNoResumeProvided) {
		t.Fatalf("expected ErrNoResumeProvided, got %v", err)
	}
}

func TestRecommend_CapsRequestedCount(t *testing.T) {
	jobs := make([]job.Job, 0, 20)
	for i := 0; i < 20; i++ {
		jobs = append(jobs, recJob(string(rune('a'+i)), "Role", "Go"))
	}

	uc := NewRecommendationUsecase(nil, nil)
	out, err := uc.Recommend(context.Background(), ResumeSummary{Skills: []string{"go"}}, jobs, 50)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(out) != maxRecommendationCap {
		t.Fatalf("cap not enforced: %d", len(out))
	}
}
