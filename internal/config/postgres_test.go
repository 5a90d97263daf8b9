package config

import (
	"strings"
	"testing"
)

func mapEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadPostgresConfig(t *testing.T) {
	full := map[string]string{
		"POSTGRES_HOSTNAME": "db",
		"POSTGRES_USER":     "jupiter",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "feedback",
	}

	cfg, err := LoadPostgresConfig(mapEnv(full))
	if err != nil {
		t.Fatalf("LoadPostgresConfig() unexpected error = %v", err)
	}
	want := "host=db port=5432 user=jupiter password=secret dbname=feedback sslmode=disable"
	if got := cfg.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}

	_, err = LoadPostgresConfig(mapEnv(map[string]string{"POSTGRES_HOSTNAME": "db"}))
	if err == nil {
		t.Fatal("Expected error for missing settings")
	}
	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected error to name %s, got %v", key, err)
		}
	}
}

func TestPostgresConfigured(t *testing.T) {
	if PostgresConfigured(mapEnv(nil)) {
		t.Error("Expected no postgres without POSTGRES_HOSTNAME")
	}
	if !PostgresConfigured(mapEnv(map[string]string{"POSTGRES_HOSTNAME": "db"})) {
		t.Error("Expected postgres when POSTGRES_HOSTNAME is set")
	}
}
