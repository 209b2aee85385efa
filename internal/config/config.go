package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	maxPricePrecision   = 18
	maxAppraisalWorkers = 1024
)

// Config holds appraisal configuration loaded from environment variables.
type Config struct {
	PricePrecision   int
	AppraisalWorkers int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		PricePrecision:   envOrDefaultInt("PRICE_PRECISION", 2, 0, maxPricePrecision),
		AppraisalWorkers: envOrDefaultInt("APPRAISAL_WORKERS", 4, 1, maxAppraisalWorkers),
	}
}

func envOrDefaultInt(key string, defaultVal, minVal, maxVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
		return defaultVal
	}
	if n < minVal {
		slog.Warn("env var below minimum, using default", "key", key, "value", n, "min", minVal, "default", defaultVal)
		return defaultVal
	}
	if n > maxVal {
		slog.Warn("env var above maximum, using default", "key", key, "value", n, "max", maxVal, "default", defaultVal)
		return defaultVal
	}
	return n
}
