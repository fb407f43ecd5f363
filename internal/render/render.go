// Package render prints parsed schedules as text, YAML or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"cronparse/internal/cronexpr"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts "text", "yaml"/"yml" and "json", case-insensitively.
// An empty string selects Text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w %q (use text, yaml or json)", ErrUnknownFormat, s)
	}
}

// Document is the structured form of a schedule.
type Document struct {
	Minute     []int  `json:"minute" yaml:"minute,flow"`
	Hour       []int  `json:"hour" yaml:"hour,flow"`
	DayOfMonth []int  `json:"day_of_month" yaml:"day_of_month,flow"`
	Month      []int  `json:"month" yaml:"month,flow"`
	DayOfWeek  []int  `json:"day_of_week" yaml:"day_of_week,flow"`
	Command    string `json:"command" yaml:"command"`
}

// NewDocument copies the expanded fields of s.
func NewDocument(s *cronexpr.Schedule) Document {
	return Document{
		Minute:     s.Minute(),
		Hour:       s.Hour(),
		DayOfMonth: s.DayOfMonth(),
		Month:      s.Month(),
		DayOfWeek:  s.DayOfWeek(),
		Command:    s.Command(),
	}
}

// Write renders schedules to w.
//
// Text output is the fixed six-line summary per schedule, separated by a
// blank line and terminated by a newline. A single schedule renders as a
// YAML/JSON object, several as a YAML/JSON sequence.
func Write(w io.Writer, f Format, schedules ...*cronexpr.Schedule) error {
	switch f {
	case Text:
		return writeText(w, schedules)
	case YAML, JSON:
		docs := make([]Document, 0, len(schedules))
		for _, s := range schedules {
			docs = append(docs, NewDocument(s))
		}
		var v any = docs
		if len(docs) == 1 {
			v = docs[0]
		}
		if f == JSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

func writeText(w io.Writer, schedules []*cronexpr.Schedule) error {
	for i, s := range schedules {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", sep, s); err != nil {
			return err
		}
	}
	return nil
}
