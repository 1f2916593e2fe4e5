package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, populated from environment variables.
type Config struct {
	Port         string   `env:"PORT" envDefault:"8080"`
	DatabasePath string   `env:"DATABASE_PATH" envDefault:"carbid.db"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	JWTSecret string        `env:"JWT_SECRET_KEY" envDefault:"jwt-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	// Auction defaults applied to new listings.
	MinIncrementDefault int64         `env:"MIN_INCREMENT_DEFAULT" envDefault:"100"`
	AuctionWindow       time.Duration `env:"AUCTION_WINDOW" envDefault:"168h"`

	// Background closer and bid admission tuning.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	BidLockWait   time.Duration `env:"BID_LOCK_WAIT" envDefault:"5s"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if cfg.MinIncrementDefault <= 0 {
		return Config{}, fmt.Errorf("config: MIN_INCREMENT_DEFAULT must be positive, got %d", cfg.MinIncrementDefault)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
