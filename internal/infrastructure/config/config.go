package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,          default=8080"`
	Env       string        `env:"ENV,           default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,     default=1h"`
	LogLevel  string        `env:"LOG_LEVEL,     default=info"`

	// Bootstrap admin account, created at startup when absent.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@localhost.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=changeme123D+"`

	// PageLimitMax caps the per-page size on list endpoints.
	PageLimitMax int `env:"PAGE_LIMIT_MAX, default=100"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=burger_queen"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
