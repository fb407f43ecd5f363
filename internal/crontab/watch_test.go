package crontab

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchResult struct {
	entries []Entry
	err     error
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crontab")
	require.NoError(t, os.WriteFile(path, []byte("0 0 1 1 0 first\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan watchResult, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, WatchOptions{Debounce: 20 * time.Millisecond, RendersPerSec: 100}, func(e []Entry, err error) {
			results <- watchResult{entries: e, err: err}
		})
	}()

	first := waitResult(t, results)
	require.NoError(t, first.err)
	require.Len(t, first.entries, 1)
	assert.Equal(t, "first", first.entries[0].Schedule.Command())

	require.NoError(t, os.WriteFile(path, []byte("0 0 1 1 0 second\n*/30 * * * * third\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		var r watchResult
		select {
		case r = <-results:
		case <-deadline:
			t.Fatal("no reload observed after write")
		}
		if r.err == nil && len(r.entries) == 2 {
			assert.Equal(t, "third", r.entries[1].Schedule.Command())
			break
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "crontab"), WatchOptions{}, func([]Entry, error) {
		t.Fatal("fn must not be called")
	})
	assert.Error(t, err)
}

func waitResult(t *testing.T, ch <-chan watchResult) watchResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch callback")
		return watchResult{}
	}
}
