// Package config loads runtime configuration for the memobook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-s int      autosave debounce (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "500ms" or integer nanoseconds:
//
//	{
//	  "database_path": "memobook.db",
//	  "page_width": 390,
//	  "page_height": 844,
//	  "clamp_margin": 50,
//	  "clamp_to_page": true,
//	  "autosave_delay": "500ms"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the app
//   - func LoadConfig() *Config      — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()  — sets sensible defaults
package config
