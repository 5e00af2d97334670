package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/domain/job"
	"jobradar/internal/pkg/response"
	"jobradar/internal/scraper"
)

// JobLister serves aggregated listings for a search.
type JobLister interface {
	List(ctx context.Context, searchTerm, location string, pages int) job.AggregatedResult
}

type JobsHandler struct {
	uc JobLister
}

func NewJobsHandler(uc JobLister) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
}

// HandleListJobs runs the scrape fan-out. An out-of-range pages value is a
// client error; missing values fall back to service defaults downstream.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	searchTerm := strings.TrimSpace(c.Query("search_term"))
	location := strings.TrimSpace(c.Query("location"))

	pages, err := parsePagesQuery(c.Query("pages"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	result := h.uc.List(c.Context(), searchTerm, location, pages)
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func parsePagesQuery(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("pages must be an integer")
	}
	if n < 1 || n > scraper.MaxPages {
		return 0, fmt.Errorf("pages must be between 1 and %d", scraper.MaxPages)
	}
	return n, nil
}
