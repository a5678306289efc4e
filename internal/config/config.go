package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env            string
	ListenAddr     string
	DatabaseURL    string
	StoreDriver    string
	AuthSecret     string
	ExitFeeRate    float64
	MigrateOnStart bool
	DBMaxConns     int
}

// Load reads the environment, after merging a .env file when one exists.
// Every returned error is a configuration error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		StoreDriver:    getenv("STORE_DRIVER", DriverPostgres),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
		ExitFeeRate:    fees.MinExitRate,
		MigrateOnStart: true,
		DBMaxConns:     10,
	}
	var err error
	if cfg.ExitFeeRate, err = getenvFloat("EXIT_FEE_RATE", cfg.ExitFeeRate); err != nil {
		return cfg, err
	}
	if cfg.MigrateOnStart, err = getenvBool("MIGRATE_ON_START", cfg.MigrateOnStart); err != nil {
		return cfg, err
	}
	if cfg.DBMaxConns, err = getenvInt("DB_MAX_CONNS", cfg.DBMaxConns); err != nil {
		return cfg, err
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return cfg, domain.ConfigurationError("DATABASE_URL not set")
		}
	case DriverMemory:
	default:
		return cfg, domain.ConfigurationError("STORE_DRIVER must be %s or %s, got %q", DriverPostgres, DriverMemory, cfg.StoreDriver)
	}
	if cfg.AuthSecret == "" {
		return cfg, domain.ConfigurationError("AUTH_SECRET not set")
	}
	if cfg.DBMaxConns < 1 {
		return cfg, domain.ConfigurationError("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}
	if _, err := fees.NewPolicy(cfg.ExitFeeRate); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	var out int
	if _, err := fmt.Sscanf(v, "%d", &out); err != nil {
		return def, domain.ConfigurationError("%s: %q is not an integer", key, v)
	}
	return out, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, domain.ConfigurationError("%s: %q is not a number", key, v)
	}
	return out, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		return def, domain.ConfigurationError("%s: %q is not a boolean", key, v)
	}
	return out, nil
}
