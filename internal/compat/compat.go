// Package compat compares expansions against the standard 5-field cron
// parser from github.com/robfig/cron/v3.
//
// This tool keeps a few historical quirks (a bare "*" hour includes 24, a
// bare "*" day of month stops at 30, values are not range checked). Check
// makes those differences visible per field instead of silently changing
// the output.
package compat

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"cronparse/internal/cronexpr"
)

// starBit is set by robfig/cron on fields written as a bare "*".
const starBit = 1 << 63

// Finding describes one field whose expansion differs from the standard parser.
type Finding struct {
	Field cronexpr.Kind
	Raw   string

	// OnlyHere are values this tool expands to that the standard parser does not.
	OnlyHere []int
	// OnlyStandard are values the standard parser matches that this tool omits.
	OnlyStandard []int
}

func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q:", f.Field, f.Raw)
	if len(f.OnlyHere) > 0 {
		fmt.Fprintf(&b, " extra [%s]", cronexpr.JoinValues(f.OnlyHere, " "))
	}
	if len(f.OnlyStandard) > 0 {
		fmt.Fprintf(&b, " missing [%s]", cronexpr.JoinValues(f.OnlyStandard, " "))
	}
	return b.String()
}

// Report is the outcome of Check.
type Report struct {
	// Rejected is set when the standard parser refuses the expression.
	Rejected error
	Findings []Finding
}

// OK reports whether the expansion matches the standard parser exactly.
func (r Report) OK() bool { return r.Rejected == nil && len(r.Findings) == 0 }

// Check re-parses the field tokens of s with cron.ParseStandard and diffs the
// resulting value sets field by field.
func Check(s *cronexpr.Schedule) Report {
	if s == nil {
		return Report{Rejected: fmt.Errorf("compat: nil schedule")}
	}

	raws := make([]string, 0, len(cronexpr.Kinds()))
	for _, kind := range cronexpr.Kinds() {
		raws = append(raws, s.Raw(kind))
	}
	spec := strings.Join(raws, " ")

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return Report{Rejected: fmt.Errorf("standard parser rejected %q: %w", spec, err)}
	}
	std, ok := sched.(*cron.SpecSchedule)
	if !ok {
		return Report{Rejected: fmt.Errorf("standard parser returned %T for %q", sched, spec)}
	}

	bits := map[cronexpr.Kind]uint64{
		cronexpr.Minute:     std.Minute,
		cronexpr.Hour:       std.Hour,
		cronexpr.DayOfMonth: std.Dom,
		cronexpr.Month:      std.Month,
		cronexpr.DayOfWeek:  std.Dow,
	}

	var rep Report
	for _, kind := range cronexpr.Kinds() {
		here := s.Field(kind)
		onlyHere, onlyStd := diff(here, bits[kind])
		if len(onlyHere) == 0 && len(onlyStd) == 0 {
			continue
		}
		rep.Findings = append(rep.Findings, Finding{
			Field:        kind,
			Raw:          s.Raw(kind),
			OnlyHere:     onlyHere,
			OnlyStandard: onlyStd,
		})
	}
	return rep
}

// diff compares an expansion with a robfig/cron field bitset.
func diff(vals []int, set uint64) (onlyHere, onlyStd []int) {
	set &^= starBit

	var seen uint64
	for _, v := range vals {
		if v < 0 || v >= 63 || set&(1<<uint(v)) == 0 {
			onlyHere = appendUnique(onlyHere, v)
			continue
		}
		seen |= 1 << uint(v)
	}
	for v := 0; v < 63; v++ {
		if set&(1<<uint(v)) != 0 && seen&(1<<uint(v)) == 0 {
			onlyStd = append(onlyStd, v)
		}
	}
	return onlyHere, onlyStd
}

func appendUnique(vals []int, v int) []int {
	for _, x := range vals {
		if x == v {
			return vals
		}
	}
	return append(vals, v)
}
