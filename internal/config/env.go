package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config is read from the environment.
type Config struct {
	DBPath       string `env:"LRPG_DB_PATH"`
	StateBackend string `env:"LRPG_STATE_BACKEND" envDefault:"sqlite"`
	RedisAddr    string `env:"LRPG_REDIS_ADDR" envDefault:"localhost:6379"`
	RulesPath    string `env:"LRPG_RULES_PATH"`
	AuthPolicy   string `env:"LRPG_AUTH_POLICY" envDefault:"bcrypt"`
	Seed         uint64 `env:"LRPG_SEED"`
	Debug        bool   `env:"LRPG_DEBUG"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"LRPG_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"LRPG_OPENAI_BASE_URL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StateBackend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("LRPG_STATE_BACKEND: unknown backend %q (sqlite|redis)", c.StateBackend)
	}
	return nil
}
