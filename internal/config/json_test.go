package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"database_path": "json.db",
		"page_width": 420,
		"clamp_to_page": false,
		"autosave_delay": "1s"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	resetArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, float64(420), cfg.PageWidth)
	assert.False(t, cfg.ClampToPage)
	assert.Equal(t, time.Second, cfg.AutosaveDelay)
	// Fields absent from the JSON keep their defaults.
	assert.Equal(t, float64(844), cfg.PageHeight)
	assert.Equal(t, float64(50), cfg.ClampMargin)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	resetArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "memobook.db", cfg.DatabasePath)
}

func TestParseJson_MalformedPanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	resetArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}
