package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = append([]string{"memobook"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "memobook.db", cfg.DatabasePath)
	assert.Equal(t, float64(390), cfg.PageWidth)
	assert.Equal(t, float64(844), cfg.PageHeight)
	assert.Equal(t, float64(50), cfg.ClampMargin)
	assert.True(t, cfg.ClampToPage)
	assert.Equal(t, 500*time.Millisecond, cfg.AutosaveDelay)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-d", "other.db", "-s", "250")

	cfg := LoadConfig()
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 250*time.Millisecond, cfg.AutosaveDelay)
	// Untouched fields keep defaults.
	assert.Equal(t, float64(390), cfg.PageWidth)
}

func TestLoadConfig_NoFlags(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "memobook.db", cfg.DatabasePath)
	assert.Equal(t, 500*time.Millisecond, cfg.AutosaveDelay)
}
