package config

import (
	"encoding/json"
	"os"

	"github.com/memokeep/memobook/internal/flagx"
	"github.com/memokeep/memobook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "500ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath  *string         `json:"database_path"`
	PageWidth     *float64        `json:"page_width"`
	PageHeight    *float64        `json:"page_height"`
	ClampMargin   *float64        `json:"clamp_margin"`
	ClampToPage   *bool           `json:"clamp_to_page"`
	AutosaveDelay *timex.Duration `json:"autosave_delay"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Absent file means no overlay; read or unmarshal
// errors panic (the config is malformed, starting anyway would hide it).
// Fields omitted in the JSON keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.PageWidth != nil {
		cfg.PageWidth = *jc.PageWidth
	}
	if jc.PageHeight != nil {
		cfg.PageHeight = *jc.PageHeight
	}
	if jc.ClampMargin != nil {
		cfg.ClampMargin = *jc.ClampMargin
	}
	if jc.ClampToPage != nil {
		cfg.ClampToPage = *jc.ClampToPage
	}
	if jc.AutosaveDelay != nil {
		cfg.AutosaveDelay = jc.AutosaveDelay.Duration
	}
}
