package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		cfg := FromEnv()
		assert.Equal(t, DefaultAbandonedWindowDays, cfg.AbandonedWindowDays)
		assert.Equal(t, DefaultAbandonedCutoff, cfg.AbandonedCutoff)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("STOREFRONT_ABANDONED_WINDOW_DAYS", "30")
		t.Setenv("STOREFRONT_ABANDONED_CUTOFF", "45m")

		cfg := FromEnv()
		assert.Equal(t, 30, cfg.AbandonedWindowDays)
		assert.Equal(t, 45*time.Minute, cfg.AbandonedCutoff)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("STOREFRONT_ABANDONED_WINDOW_DAYS", "soon")
		t.Setenv("STOREFRONT_ABANDONED_CUTOFF", "-2h")

		cfg := FromEnv()
		assert.Equal(t, DefaultAbandonedWindowDays, cfg.AbandonedWindowDays)
		assert.Equal(t, DefaultAbandonedCutoff, cfg.AbandonedCutoff)
	})
}
