package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/pkg/response"
)

// Pinger covers the backing services the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	sources []string
	db      Pinger
	cache   Pinger
}

func NewHealthHandler(appName string, sources []string, db, cache Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, sources: sources, db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]any{
		"service":   h.appName,
		"status":    "ok",
		"sources":   h.sources,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  probe(ctx, h.db),
		"cache":     probe(ctx, h.cache),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "up"
}
