package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment
// variables.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		// Maximum age of init data in seconds; 0 disables the
		// freshness check.
		InitDataTTL int `env:"INIT_DATA_TTL" envDefault:"86400"`
	}

	Redis struct {
		// Empty host disables the verification cache entirely.
		Host     string `env:"REDIS_HOST" envDefault:""`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
		CacheTTL int    `env:"CACHE_TTL" envDefault:"300"`
	}
}

// Load reads the environment (optionally seeded from a .env file) into
// a Config.
func Load() (*Config, error) {
	// A missing .env file is fine; in production the variables are set
	// directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// RedisAddr builds the host:port address, or "" when Redis is disabled.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// InitDataTTL returns the freshness window as a duration.
func (c *Config) InitDataTTL() time.Duration {
	return time.Duration(c.Telegram.InitDataTTL) * time.Second
}

// CacheTTL returns the verification-cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.CacheTTL) * time.Second
}
