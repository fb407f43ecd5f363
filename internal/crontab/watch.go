package crontab

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"cronparse/pkg/logx"
)

var errWatcherClosed = errors.New("crontab watch: watcher closed")

// WatchOptions tunes Watch. Zero values select the defaults.
type WatchOptions struct {
	// Debounce collapses bursts of file events (editors often write twice).
	Debounce time.Duration
	// RendersPerSec caps how often fn is invoked.
	RendersPerSec int
	Log           logx.Logger
}

func (o WatchOptions) withDefaults() WatchOptions {
	if o.Debounce <= 0 {
		o.Debounce = 200 * time.Millisecond
	}
	if o.RendersPerSec <= 0 {
		o.RendersPerSec = 2
	}
	if o.Log.IsZero() {
		o.Log = logx.Nop()
	}
	return o
}

// Watch parses path once, hands the result to fn, and repeats every time the
// file is written, created, renamed or removed. The parent directory is
// watched so editors that replace the file are handled.
//
// fn runs on the caller's goroutine. Watch returns nil when ctx is done.
func Watch(ctx context.Context, path string, opts WatchOptions, fn func([]Entry, error)) error {
	opts = opts.withDefaults()
	log := opts.Log.With(logx.String("path", path))

	dir := filepath.Dir(path)
	file := filepath.Base(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Debug("crontab watcher started", logx.String("dir", dir))

	limiter := rate.NewLimiter(rate.Limit(opts.RendersPerSec), 1)
	reload := func() bool {
		if err := limiter.Wait(ctx); err != nil {
			return false
		}
		entries, err := ParseFile(path)
		fn(entries, err)
		return true
	}

	if !reload() {
		return nil
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errWatcherClosed
			}
			// Compare by basename (robust across absolute/relative paths).
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debug("crontab change detected; scheduling reload", logx.String("op", ev.Op.String()))
			fire = time.After(opts.Debounce)
		case <-fire:
			fire = nil
			if !reload() {
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errWatcherClosed
			}
			if err != nil {
				log.Warn("crontab watch error", logx.Err(err))
			}
		}
	}
}
