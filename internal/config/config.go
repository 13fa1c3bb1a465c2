// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds settings for `folio serve`.
type Config struct {
	Address         string        `envconfig:"FOLIO_ADDRESS" default:":8080"`
	LogLevel        string        `envconfig:"FOLIO_LOG_LEVEL" default:"info"`
	RequestLogging  bool          `envconfig:"FOLIO_REQUEST_LOG" default:"true"`
	CORSOrigins     []string      `envconfig:"FOLIO_CORS_ORIGINS" default:"*"`
	AdvisorRPS      float64       `envconfig:"FOLIO_ADVISOR_RPS" default:"1"`
	AdvisorBurst    int           `envconfig:"FOLIO_ADVISOR_BURST" default:"5"`
	ShutdownTimeout time.Duration `envconfig:"FOLIO_SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadDotEnv reads .env from the working directory and its parent when
// present. Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
}

// Load reads Config from the environment.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if cfg.AdvisorRPS <= 0 {
		return nil, fmt.Errorf("FOLIO_ADVISOR_RPS must be positive, got %v", cfg.AdvisorRPS)
	}
	if cfg.AdvisorBurst < 1 {
		return nil, fmt.Errorf("FOLIO_ADVISOR_BURST must be at least 1, got %d", cfg.AdvisorBurst)
	}
	return cfg, nil
}
