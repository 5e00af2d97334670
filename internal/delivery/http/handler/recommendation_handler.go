package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/pkg/response"
	"jobradar/internal/usecase"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

type recommendationRequest struct {
	ResumeData         usecase.ResumeSummary `json:"resume_data"`
	Jobs               []job.Job             `json:"jobs"`
	MaxRecommendations int                   `json:"max_recommendations"`
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	req := recommendationRequest{MaxRecommendations: 5}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	picked, err := h.uc.Recommend(c.Context(), req.ResumeData, req.Jobs, req.MaxRecommendations)
	if err != nil {
		if errors.Is(err, usecase.ErrNoJobsProvided) || errors.Is(err, usecase.ErrNoResumeProvided) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		}
		return err
	}

	result := job.AggregatedResult{
		Jobs:            picked,
		TotalCount:      len(picked),
		SourceBreakdown: map[string]int{"recommendations": len(picked)},
		LastUpdated:     time.Now().UTC(),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}
