package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenCount is five fields plus the command.
const tokenCount = fieldCount + 1

// labelWidth is the column where rendered values start.
const labelWidth = 14

// Schedule is a parsed cron line. It is immutable once returned by Parse.
type Schedule struct {
	raw     [fieldCount]string
	fields  [fieldCount][]int
	command string
}

// Parse builds a Schedule from one line. Tokens are separated by single
// spaces; anything but exactly six tokens is rejected.
func Parse(line string) (*Schedule, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != tokenCount {
		return nil, fmt.Errorf("%w: expected %d space-separated tokens, got %d", ErrBadFormat, tokenCount, len(tokens))
	}

	s := &Schedule{command: tokens[fieldCount]}
	if s.command == "" {
		return nil, fmt.Errorf("%w: missing command", ErrBadFormat)
	}

	for _, kind := range Kinds() {
		vals, err := ExpandField(kind, tokens[kind])
		if err != nil {
			return nil, err
		}
		s.raw[kind] = tokens[kind]
		s.fields[kind] = vals
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(line string) *Schedule {
	s, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return s
}

// Field returns a copy of the expanded values for kind.
func (s *Schedule) Field(kind Kind) []int {
	if s == nil || !kind.valid() {
		return nil
	}
	return append([]int(nil), s.fields[kind]...)
}

// Raw returns the field token exactly as written.
func (s *Schedule) Raw(kind Kind) string {
	if s == nil || !kind.valid() {
		return ""
	}
	return s.raw[kind]
}

func (s *Schedule) Minute() []int     { return s.Field(Minute) }
func (s *Schedule) Hour() []int       { return s.Field(Hour) }
func (s *Schedule) DayOfMonth() []int { return s.Field(DayOfMonth) }
func (s *Schedule) Month() []int      { return s.Field(Month) }
func (s *Schedule) DayOfWeek() []int  { return s.Field(DayOfWeek) }

func (s *Schedule) Command() string {
	if s == nil {
		return ""
	}
	return s.command
}

// String renders the fixed six-line summary, without a trailing newline.
func (s *Schedule) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, kind := range Kinds() {
		writeLine(&b, kind.String(), JoinValues(s.fields[kind], " "))
		b.WriteByte('\n')
	}
	writeLine(&b, "command", s.command)
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(label)
	for i := len(label); i < labelWidth; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(value)
}

// JoinValues formats vals as decimal integers separated by sep.
func JoinValues(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
