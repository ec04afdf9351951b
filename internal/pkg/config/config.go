package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session bearer token. Tokens are only honored
	// while the in-memory session matches, so the secret guards integrity,
	// not persistence.
	SessionSecret string        `env:"SESSION_SECRET, default=activax-dev-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`

	Storage StorageConfig
}

type StorageConfig struct {
	// Path of the embedded SQLite file holding the two durable collections.
	Path string `env:"STORAGE_PATH, default=activax.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
