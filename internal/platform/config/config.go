package config

import (
	"os"
	"strconv"
	"time"
)

// Dashboard captures admin dashboard tuning knobs.
type Dashboard struct {
	// AbandonedWindowDays is how far back the abandoned-cart block looks.
	AbandonedWindowDays int
	// AbandonedCutoff is how long a basket must sit untouched before it
	// counts as abandoned.
	AbandonedCutoff time.Duration
}

// Defaults for the abandoned-cart block.
const (
	DefaultAbandonedWindowDays = 14
	DefaultAbandonedCutoff     = 2 * time.Hour
)

// FromEnv builds a Dashboard config from environment variables so callers
// stay lean. Malformed or non-positive values fall back to the defaults.
func FromEnv() Dashboard {
	cfg := Dashboard{
		AbandonedWindowDays: DefaultAbandonedWindowDays,
		AbandonedCutoff:     DefaultAbandonedCutoff,
	}

	if v := os.Getenv("STOREFRONT_ABANDONED_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.AbandonedWindowDays = days
		}
	}
	if v := os.Getenv("STOREFRONT_ABANDONED_CUTOFF"); v != "" {
		if cutoff, err := time.ParseDuration(v); err == nil && cutoff > 0 {
			cfg.AbandonedCutoff = cutoff
		}
	}
	return cfg
}
