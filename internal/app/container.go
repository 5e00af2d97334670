package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobradar/internal/aggregator"
	"jobradar/internal/config"
	"jobradar/internal/database"
	"jobradar/internal/database/migration"
	dbpostgres "jobradar/internal/database/postgres"
	"jobradar/internal/delivery/http/middleware"
	"jobradar/internal/infrastructure/cache"
	"jobradar/internal/infrastructure/llm"
	"jobradar/internal/infrastructure/pdf"
	"jobradar/internal/pkg/jwt"
	"jobradar/internal/repository"
	"jobradar/internal/scraper"
	"jobradar/internal/usecase"
	"jobradar/internal/ws"
	"jobradar/migrations"
)

// Container owns every long-lived dependency. Postgres, Redis and Gemini are
// optional at runtime; the scraping pipeline itself always comes up.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Adapters   []scraper.Adapter
	Aggregator *aggregator.Aggregator

	Jobs            *usecase.JobsUsecase
	Auth            *usecase.AuthUsecase
	Applications    *usecase.ApplicationUsecase
	Resume          *usecase.ResumeUsecase
	Recommendations *usecase.RecommendationUsecase

	AuthMiddleware *middleware.AuthMiddleware
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	if cfg.HasDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			return nil, err
		}
		c.DB = db

		mctx, mcancel := context.WithTimeout(context.Background(), 60*time.Second)
		err = migration.Runner{FS: migrations.FS}.Run(mctx, db.SQLDB())
		mcancel()
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	} else {
		logger.Printf("[App] database not configured, auth and applications disabled")
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.Adapters = BuildAdapters(logger)
	c.Aggregator = aggregator.New(c.Adapters, logger,
		aggregator.WithMaxConcurrent(cfg.Scraper.MaxConcurrent),
		aggregator.WithPerAdapterTimeout(cfg.Scraper.PerAdapterTimeout),
		aggregator.WithProgress(func(source string, count int, err error) {
			ws.NotifySourceDone(source, count, err != nil)
		}),
	)

	c.Jobs = usecase.NewJobsUsecase(c.Aggregator, c.Cache, cfg.Redis.CacheTTL, logger)
	c.Resume = usecase.NewResumeUsecase(pdf.NewExtractor())

	var completer usecase.Completer
	if cfg.Gemini.APIKey != "" {
		gctx, gcancel := context.WithTimeout(context.Background(), 10*time.Second)
		svc, err := llm.NewGeminiService(gctx, cfg.Gemini)
		gcancel()
		if err != nil {
			logger.Printf("[App] gemini unavailable, recommendations use overlap fallback | error=%v", err)
		} else {
			completer = svc
		}
	}
	c.Recommendations = usecase.NewRecommendationUsecase(completer, logger)

	tokens := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	c.AuthMiddleware = middleware.NewAuthMiddleware(tokens)

	if c.DB != nil {
		users := repository.NewPostgresUserRepository(c.DB)
		apps := repository.NewPostgresApplicationRepository(c.DB)
		c.Auth = usecase.NewAuthUsecase(users, tokens, cfg.Auth.BcryptRounds)
		c.Applications = usecase.NewApplicationUsecase(apps)
	}

	return c, nil
}

// BuildAdapters returns every configured source in registration order. The
// order is part of the merge contract. Each browser adapter gets its own
// fetcher so the randomized identity differs per source.
func BuildAdapters(logger *log.Logger) []scraper.Adapter {
	return []scraper.Adapter{
		scraper.NewNaukriAdapter(scraper.NewBrowserFetcher(0), logger),
		scraper.NewRemoteOnlyAdapter(scraper.NewBrowserFetcher(0), logger),
		scraper.NewPlacementIndiaAdapter(logger),
		scraper.NewShineAdapter(scraper.NewBrowserFetcher(0), logger),
	}
}

func (c *Container) AdapterNames() []string {
	names := make([]string, 0, len(c.Adapters))
	for _, a := range c.Adapters {
		names = append(names, a.Name())
	}
	return names
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
