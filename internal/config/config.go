package config

import "time"

// Config holds runtime settings for the memobook CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - PageWidth/PageHeight: logical page dimensions in points, used when
//     clamping dragged items onto the page.
//   - ClampMargin: distance from the page edge dragged items are kept inside.
//   - ClampToPage: whether drag positions are clamped at all.
//   - AutosaveDelay: debounce interval between an edit and the background save.
type Config struct {
	DatabasePath  string
	PageWidth     float64
	PageHeight    float64
	ClampMargin   float64
	ClampToPage   bool
	AutosaveDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "memobook.db"
	c.PageWidth = 390
	c.PageHeight = 844
	c.ClampMargin = 50
	c.ClampToPage = true
	c.AutosaveDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
