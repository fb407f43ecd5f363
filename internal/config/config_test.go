package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cronparse.yaml")
	data := "logging:\n  level: debug\noutput:\n  format: yaml\n  check: true\nwatch:\n  debounce: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console, "omitted fields keep defaults")
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Check)

	d, err := cfg.Watch.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
	assert.Equal(t, defaultRenders, cfg.Watch.RendersPerSec())
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cronparse.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"format":"json"},"watch":{"max_renders_per_sec":5}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Watch.RendersPerSec())
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		data string
	}{
		{name: "unknown field", path: "c.yaml", data: "output:\n  colour: red\n"},
		{name: "unknown format", path: "c.yaml", data: "output:\n  format: xml\n"},
		{name: "bad debounce", path: "c.yml", data: "watch:\n  debounce: soon\n"},
		{name: "negative debounce", path: "c.yml", data: "watch:\n  debounce: -1s\n"},
		{name: "bad level", path: "c.json", data: `{"logging":{"level":"loud"}}`},
		{name: "trailing data", path: "c.json", data: `{} {}`},
		{name: "invalid yaml", path: "c.yaml", data: "output: [\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tt.path, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Decode("empty.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	d, err := parseDuration("k", "", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	d, err = parseDuration("k", "0s", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	d, err = parseDuration("k", " 50ms ", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, d)

	_, err = parseDuration("k", "-1s", time.Second)
	assert.ErrorContains(t, err, "k: duration must be >= 0")
}
