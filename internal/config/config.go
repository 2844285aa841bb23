package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCurrency is applied by the listing repository when a listing has no
// currency set. The booking engine itself never hardcodes a currency.
const DefaultCurrency = "USD"

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	HTTPAddr    string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      24 * time.Hour,
		HTTPAddr:    os.Getenv("HTTP_ADDR"),
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("config: invalid JWT_TTL")
		}
		cfg.JWTTTL = d
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is empty")
	}
	return cfg, nil
}
