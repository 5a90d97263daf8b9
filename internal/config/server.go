package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig holds configuration for the local Jupiter Toys replica
type ServerConfig struct {
	Port         string `env:"PORT" env-default:"8080"`
	TemplatesDir string `env:"TEMPLATES_DIR" env-default:"templates"`
	StaticDir    string `env:"STATIC_DIR" env-default:"static"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	Environment  string `env:"ENVIRONMENT" env-default:"development"`
	// FeedbackDelay is how long the replica shows "Sending Feedback" before
	// confirming a contact form submission
	FeedbackDelay   time.Duration `env:"FEEDBACK_DELAY" env-default:"1s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, errors.Wrap(err, "read server config")
	}
	if cfg.FeedbackDelay < 0 {
		return cfg, errors.New("FEEDBACK_DELAY cannot be negative")
	}
	return cfg, nil
}
