// Package crontab reads files holding one cron line per row.
//
// Blank lines and lines starting with '#' are skipped. Every other line must
// be a complete "<5 fields> <command>" expression.
package crontab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cronparse/internal/cronexpr"
)

// Entry is one parsed line.
type Entry struct {
	Line     int
	Schedule *cronexpr.Schedule
}

// LineError ties a parse failure to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// Parse reads every expression from r. Valid lines are returned even when
// others fail; the failures are joined into the returned error.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		errs    []error
	)

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := cronexpr.Parse(line)
		if err != nil {
			errs = append(errs, &LineError{Line: n, Err: err})
			continue
		}
		entries = append(entries, Entry{Line: n, Schedule: s})
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read: %w", err))
	}
	return entries, errors.Join(errs...)
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return entries, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Schedules returns the schedules of entries in file order.
func Schedules(entries []Entry) []*cronexpr.Schedule {
	out := make([]*cronexpr.Schedule, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Schedule)
	}
	return out
}
