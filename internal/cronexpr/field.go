package cronexpr

import (
	"fmt"
	"strconv"
)

// Kind is one of the five schedule slots.
type Kind int

const (
	Minute Kind = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
)

// fieldCount is the number of schedule slots in a line.
const fieldCount = 5

type fieldSpec struct {
	label    string
	wildcard Bound // used for a bare "*"
	step     Bound // used for "*/N"
}

// specs is indexed by Kind.
var specs = [fieldCount]fieldSpec{
	Minute:     {label: "minute", wildcard: Bound{0, 60}, step: Bound{0, 60}},
	Hour:       {label: "hour", wildcard: Bound{0, 25}, step: Bound{0, 24}},
	DayOfMonth: {label: "day of month", wildcard: Bound{1, 31}, step: Bound{1, 32}},
	Month:      {label: "month", wildcard: Bound{1, 13}, step: Bound{1, 13}},
	DayOfWeek:  {label: "day of week", wildcard: Bound{0, 7}, step: Bound{0, 7}},
}

// Kinds returns the field kinds in line order.
func Kinds() []Kind {
	return []Kind{Minute, Hour, DayOfMonth, Month, DayOfWeek}
}

func (k Kind) valid() bool { return k >= 0 && int(k) < fieldCount }

func (k Kind) String() string {
	if !k.valid() {
		return "field(" + strconv.Itoa(int(k)) + ")"
	}
	return specs[k].label
}

// WildcardBound is the interval a bare "*" expands to.
func (k Kind) WildcardBound() Bound {
	if !k.valid() {
		return Bound{}
	}
	return specs[k].wildcard
}

// StepBound is the interval "*/N" steps through.
func (k Kind) StepBound() Bound {
	if !k.valid() {
		return Bound{}
	}
	return specs[k].step
}

// ExpandField expands one field token for the given kind.
func ExpandField(kind Kind, raw string) ([]int, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: unknown field kind %d", ErrBadFormat, int(kind))
	}

	tok, ok := Classify(raw)
	if !ok {
		return nil, &FieldError{Field: kind, Raw: raw}
	}

	b := kind.StepBound()
	if tok.Syntax == Wildcard {
		b = kind.WildcardBound()
	}
	vals, ok := tok.Expand(b)
	if !ok || len(vals) == 0 {
		return nil, &FieldError{Field: kind, Raw: raw}
	}
	return vals, nil
}

func ParseMinute(raw string) ([]int, error)     { return ExpandField(Minute, raw) }
func ParseHour(raw string) ([]int, error)       { return ExpandField(Hour, raw) }
func ParseDayOfMonth(raw string) ([]int, error) { return ExpandField(DayOfMonth, raw) }
func ParseMonth(raw string) ([]int, error)      { return ExpandField(Month, raw) }
func ParseDayOfWeek(raw string) ([]int, error)  { return ExpandField(DayOfWeek, raw) }
