package config

import (
	"fmt"
	"strings"
)

// PostgresConfig holds the connection settings for the replica's feedback
// store. It is optional: without POSTGRES_HOSTNAME feedback stays in memory.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// PostgresConfigured reports whether the environment asks for a Postgres
// backed feedback store
func PostgresConfigured(getenv func(string) string) bool {
	return getenv("POSTGRES_HOSTNAME") != ""
}

// LoadPostgresConfig reads the POSTGRES_* variables through getenv, so tests
// can inject their own lookup
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	cfg := &PostgresConfig{
		Host:     getenv("POSTGRES_HOSTNAME"),
		Port:     withDefault(getenv("POSTGRES_PORT"), "5432"),
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		SSLMode:  withDefault(getenv("POSTGRES_SSLMODE"), "disable"),
	}

	var missing []string
	for _, req := range []struct{ key, value string }{
		{"POSTGRES_HOSTNAME", cfg.Host},
		{"POSTGRES_USER", cfg.User},
		{"POSTGRES_PASSWORD", cfg.Password},
		{"POSTGRES_DB", cfg.Database},
	} {
		if req.value == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing postgres settings: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// ConnectionString returns a lib/pq key/value connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
