package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// RateLimit stores per-IP token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the optional debug server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Config stores HTTP service settings.
type Config struct {
	Port       int
	CORSOrigin string
	DB         DB
	RateLimit  RateLimit
	Pprof      Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       DefaultPort(),
		CORSOrigin: DefaultCORSOrigin(),
		DB:         DefaultDB(),
		RateLimit:  DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}

	readEnv("POSTGRES_HOST", &cfg.DB.Host)
	readEnv("POSTGRES_PORT", &cfg.DB.Port)
	readEnv("POSTGRES_USER", &cfg.DB.User)
	readEnv("POSTGRES_PASSWORD", &cfg.DB.Pass)
	readEnv("POSTGRES_DB", &cfg.DB.Name)

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit.Rate = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Burst = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RateLimit.TTL = d
		}
	}

	readEnv("PPROF_ADDR", &cfg.Pprof.Addr)
	readEnv("PPROF_USER", &cfg.Pprof.User)
	readEnv("PPROF_PASS", &cfg.Pprof.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func readEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
