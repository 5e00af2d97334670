package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Scraper  ScraperConfig
	Gemini   GeminiConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type AuthConfig struct {
	JWTSecret    string
	TokenExpiry  time.Duration
	BcryptRounds int
}

type ScraperConfig struct {
	MaxConcurrent     int
	PerAdapterTimeout time.Duration
	DefaultPages      int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		return n
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "jobradar"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8000"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
	}

	cfg.Redis = RedisConfig{
		Addr:     opt("REDIS_ADDR", ""),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       optInt("REDIS_DB", 0),
		CacheTTL: optDuration("CACHE_TTL", 10*time.Minute),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:    req("JWT_SECRET"),
		TokenExpiry:  optDuration("TOKEN_EXPIRY", 24*time.Hour),
		BcryptRounds: optInt("BCRYPT_ROUNDS", 10),
	}

	cfg.Scraper = ScraperConfig{
		MaxConcurrent:     optInt("SCRAPER_MAX_CONCURRENT", 3),
		PerAdapterTimeout: optDuration("SCRAPER_ADAPTER_TIMEOUT", 90*time.Second),
		DefaultPages:      optInt("SCRAPER_DEFAULT_PAGES", 2),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY", ""),
		Model:  opt("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// HasDatabase reports whether enough settings are present to open Postgres.
// The scraping pipeline runs without persistence when they are absent.
func (c Config) HasDatabase() bool {
	return c.Database.DBHost != "" && c.Database.DBName != "" && c.Database.DBUser != ""
}

// HasRedis reports whether a cache address was configured.
func (c Config) HasRedis() bool {
	return c.Redis.Addr != ""
}
