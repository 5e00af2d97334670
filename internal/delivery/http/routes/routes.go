package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobradar/internal/delivery/http/handler"
	"jobradar/internal/ws"
)

// Registry wires every handler under /api. Handlers whose dependencies were
// not configured (no database, no LLM key) are left nil and skipped.
type Registry struct {
	Health          *handler.HealthHandler
	Jobs            *handler.JobsHandler
	Auth            *handler.AuthHandler
	Applications    *handler.ApplicationHandler
	Resume          *handler.ResumeHandler
	Recommendations *handler.RecommendationHandler
	ScrapeWS        *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api")

	if r.Health != nil {
		r.Health.RegisterRoutes(api)
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(api)
	}
	if r.Auth != nil {
		r.Auth.RegisterRoutes(api)
	}
	if r.Applications != nil {
		r.Applications.RegisterRoutes(api)
	}
	if r.Resume != nil {
		r.Resume.RegisterRoutes(api)
	}
	if r.Recommendations != nil {
		r.Recommendations.RegisterRoutes(api)
	}
	if r.ScrapeWS != nil {
		app.Get("/ws/scrape", r.ScrapeWS.HandleScrapeWS)
	}
}
