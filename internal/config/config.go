// Package config loads the parzend service configuration from the
// environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the parzend service configuration.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	// Study holds the defaults applied to studies that do not override
	// them at creation time.
	Study struct {
		SplitFraction float64 `env:"STUDY_SPLIT_FRACTION" envDefault:"0.25"`
		Candidates    int     `env:"STUDY_CANDIDATES" envDefault:"24"`
		Seed          uint64  `env:"STUDY_SEED" envDefault:"0"`
	}
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
