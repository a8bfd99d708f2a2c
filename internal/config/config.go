package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// LLM collaborator. Empty key disables the model-assisted paths;
	// the core then runs on its deterministic fallbacks.
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	Model         string `env:"MODEL" envDefault:"gpt-4o-mini"`

	// Timeout applied to every collaborator call.
	AITimeoutSeconds int `env:"AI_TIMEOUT_SECONDS" envDefault:"6"`

	// Optional directory of JSON content overrides (who5.json,
	// exercises.json, helplines.json, riddles.json). Built-in defaults
	// apply for anything missing.
	ContentDir string `env:"CONTENT_DIR" envDefault:"content"`

	// Check-in log database.
	CheckinDBPath string `env:"CHECKIN_DB_PATH" envDefault:"data/checkins.db"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func FromEnv() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) AITimeout() time.Duration {
	if c.AITimeoutSeconds <= 0 {
		return 6 * time.Second
	}
	return time.Duration(c.AITimeoutSeconds) * time.Second
}
