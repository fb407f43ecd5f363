package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cronparse/internal/render"
)

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, b)
}

// Decode parses config bytes. The path extension selects YAML or JSON.
func Decode(path string, b []byte) (*Config, error) {
	jb, format, err := coerceToJSONBytes(path, b)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s config %s: %w", format, path, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("invalid config: trailing data")
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that the decoder cannot.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := c.Watch.DebounceDuration(); err != nil {
		return err
	}
	if c.Watch.MaxRendersPerSec < 0 {
		return fmt.Errorf("watch.max_renders_per_sec: must be >= 0")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

// DebounceDuration returns the parsed debounce, falling back to the default.
func (w WatchConfig) DebounceDuration() (time.Duration, error) {
	return parseDuration("watch.debounce", w.Debounce, defaultDebounce)
}

// RendersPerSec returns the render rate limit, falling back to the default.
func (w WatchConfig) RendersPerSec() int {
	if w.MaxRendersPerSec <= 0 {
		return defaultRenders
	}
	return w.MaxRendersPerSec
}
