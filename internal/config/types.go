package config

import "time"

// Config is the optional cronparse configuration file.
//
// Example (YAML):
//
//	logging:
//	  level: info
//	  console: true
//	output:
//	  format: yaml
//	watch:
//	  debounce: 200ms
//	  max_renders_per_sec: 2
//
// Omitted fields keep the values from Default.
type Config struct {
	Logging LoggingConfig `json:"logging"`
	Output  OutputConfig  `json:"output"`
	Watch   WatchConfig   `json:"watch"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// OutputConfig controls how parsed schedules are printed.
type OutputConfig struct {
	// Format is one of "text", "yaml", "json".
	Format string `json:"format"`
	// Check prints standard-parser divergences to stderr.
	Check bool `json:"check,omitempty"`
}

// WatchConfig controls --watch mode.
type WatchConfig struct {
	// Debounce is a Go duration string (e.g. "200ms").
	Debounce         string `json:"debounce"`
	MaxRendersPerSec int    `json:"max_renders_per_sec"`
}

const (
	defaultLevel    = "warn"
	defaultFormat   = "text"
	defaultDebounce = 200 * time.Millisecond
	defaultRenders  = 2
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   defaultLevel,
			Console: true,
			File:    LoggingFile{Path: "./cronparse.log"},
		},
		Output: OutputConfig{Format: defaultFormat},
		Watch: WatchConfig{
			Debounce:         defaultDebounce.String(),
			MaxRendersPerSec: defaultRenders,
		},
	}
}
