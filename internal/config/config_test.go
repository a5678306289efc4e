package config

import (
	"testing"

	"cfomatch/internal/domain"
)

func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("EXIT_FEE_RATE", "")
	t.Setenv("MIGRATE_ON_START", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("LISTEN_ADDR", "")
}

func TestLoadDefaults(t *testing.T) {
	baseEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" || cfg.ExitFeeRate != 0.05 || !cfg.MigrateOnStart || cfg.DBMaxConns != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	baseEnv(t)
	t.Setenv("EXIT_FEE_RATE", "0.08")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExitFeeRate != 0.08 || cfg.MigrateOnStart || cfg.DBMaxConns != 25 || cfg.ListenAddr != "127.0.0.1:9000" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"exit rate too low":    {"EXIT_FEE_RATE": "0.04"},
		"exit rate too high":   {"EXIT_FEE_RATE": "0.11"},
		"exit rate garbage":    {"EXIT_FEE_RATE": "five"},
		"missing secret":       {"AUTH_SECRET": ""},
		"postgres without url": {"STORE_DRIVER": "postgres"},
		"unknown driver":       {"STORE_DRIVER": "sqlite"},
		"bad max conns":        {"DB_MAX_CONNS": "0"},
		"bad bool":             {"MIGRATE_ON_START": "sometimes"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			baseEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if !domain.IsKind(err, domain.KindConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}
