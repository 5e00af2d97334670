package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobradar/internal/config"
	"jobradar/internal/delivery/http/handler"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/delivery/http/routes"
	"jobradar/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	go c.Hub.Run()

	registry := &routes.Registry{
		Health:          handler.NewHealthHandler(cfg.App.AppName, c.AdapterNames(), c.DB, c.Cache),
		Jobs:            handler.NewJobsHandler(c.Jobs),
		Resume:          handler.NewResumeHandler(c.Resume),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		ScrapeWS:        ws.NewHandler(c.Hub, c.Logger),
	}
	if c.Auth != nil {
		registry.Auth = handler.NewAuthHandler(c.Auth, c.AuthMiddleware)
	}
	if c.Applications != nil {
		registry.Applications = handler.NewApplicationHandler(c.Applications, c.AuthMiddleware)
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
