package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName string        `env:"LOG_LEVEL" envDefault:"info"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	DataDir      string        `env:"DATA_DIR" envDefault:"./data"`
	ArchivePath  string        `env:"ARCHIVE_PATH"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	WorkerID     string        `env:"WORKER_ID"`
	DefaultSeed  int64         `env:"DEFAULT_SEED" envDefault:"12345"`

	LogLevel slog.Level `env:"-"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
