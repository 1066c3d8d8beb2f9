package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	devJWTSecret  = "dev-secret-change-in-production"
	devHistoryKey = "dev-history-key-change-in-production"
)

var (
	ErrProductionSecret = errors.New("JWT_SECRET and HISTORY_KEY must be set in production environment")
	ErrLengthBounds     = errors.New("GENERATE_MIN_LENGTH must be at least 4 and not above GENERATE_MAX_LENGTH")
	ErrHistorySize      = errors.New("HISTORY_SIZE must be at least 1")
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	HistoryKey  string
	HistorySize int

	GenerateMinLength int
	GenerateMaxLength int

	// RandomSeed selects a deterministic generator source when set.
	RandomSeed    uint64
	HasRandomSeed bool

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		JWTSecret:         getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		HistoryKey:        getEnv("HISTORY_KEY", devHistoryKey),
		HistorySize:       getInt("HISTORY_SIZE", 10),
		GenerateMinLength: getInt("GENERATE_MIN_LENGTH", 8),
		GenerateMaxLength: getInt("GENERATE_MAX_LENGTH", 16),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", 10),
	}

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("invalid RANDOM_SEED, using secure random source", "value", v)
		} else {
			cfg.RandomSeed = seed
			cfg.HasRandomSeed = true
		}
	}

	return cfg
}

// Validate reports settings the server must not start with.
func (c Config) Validate() error {
	if c.Env == "production" && (c.JWTSecret == devJWTSecret || c.HistoryKey == devHistoryKey) {
		return ErrProductionSecret
	}
	if c.GenerateMinLength < 4 || c.GenerateMinLength > c.GenerateMaxLength {
		return ErrLengthBounds
	}
	if c.HistorySize < 1 {
		return ErrHistorySize
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
