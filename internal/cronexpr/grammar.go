package cronexpr

import (
	"regexp"
	"strconv"
	"strings"
)

// Syntax identifies which shorthand a field token is written in.
type Syntax int

const (
	Wildcard Syntax = iota // "*"
	Step                   // "*/N"
	Single                 // "N"
	List                   // "N,N,..."
	Range                  // "N-M"
)

func (s Syntax) String() string {
	switch s {
	case Wildcard:
		return "wildcard"
	case Step:
		return "step"
	case Single:
		return "single"
	case List:
		return "list"
	case Range:
		return "range"
	default:
		return "syntax(" + strconv.Itoa(int(s)) + ")"
	}
}

// reToken is the whole field grammar. The alternatives are disjoint, so at
// most one named group is non-empty for any input.
var reToken = regexp.MustCompile(
	`^(?:(?P<wild>\*)` +
		`|\*/(?P<step>\d+)` +
		`|(?P<lo>\d+)-(?P<hi>\d+)` +
		`|(?P<list>\d+(?:,\d+)+)` +
		`|(?P<single>\d+))$`,
)

var (
	groupWild   = reToken.SubexpIndex("wild")
	groupStep   = reToken.SubexpIndex("step")
	groupLo     = reToken.SubexpIndex("lo")
	groupHi     = reToken.SubexpIndex("hi")
	groupList   = reToken.SubexpIndex("list")
	groupSingle = reToken.SubexpIndex("single")
)

// Token is a classified field expression.
//
// Only the members relevant to Syntax are set:
//   - Step:   Every
//   - Single: Values (one element)
//   - List:   Values (as written)
//   - Range:  Low, High
type Token struct {
	Syntax Syntax
	Every  int
	Low    int
	High   int
	Values []int
}

// Classify matches raw against the field grammar. It reports false when raw
// is not a valid field token or one of its numbers does not fit an int.
func Classify(raw string) (Token, bool) {
	m := reToken.FindStringSubmatch(raw)
	if m == nil {
		return Token{}, false
	}

	switch {
	case m[groupWild] != "":
		return Token{Syntax: Wildcard}, true
	case m[groupStep] != "":
		n, err := strconv.Atoi(m[groupStep])
		if err != nil {
			return Token{}, false
		}
		return Token{Syntax: Step, Every: n}, true
	case m[groupLo] != "":
		lo, err := strconv.Atoi(m[groupLo])
		if err != nil {
			return Token{}, false
		}
		hi, err := strconv.Atoi(m[groupHi])
		if err != nil {
			return Token{}, false
		}
		return Token{Syntax: Range, Low: lo, High: hi}, true
	case m[groupList] != "":
		parts := strings.Split(m[groupList], ",")
		vals := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Token{}, false
			}
			vals = append(vals, n)
		}
		return Token{Syntax: List, Values: vals}, true
	case m[groupSingle] != "":
		n, err := strconv.Atoi(m[groupSingle])
		if err != nil {
			return Token{}, false
		}
		return Token{Syntax: Single, Values: []int{n}}, true
	}
	return Token{}, false
}

// Expand returns the values matched by t. The bound is only consulted by the
// Wildcard and Step variants. It reports false when the token describes no
// values at all (a zero step, an inverted range).
func (t Token) Expand(b Bound) ([]int, bool) {
	switch t.Syntax {
	case Wildcard:
		return b.every(1), b.Max > b.Min
	case Step:
		if t.Every <= 0 {
			return nil, false
		}
		vals := b.every(t.Every)
		return vals, len(vals) > 0
	case Single, List:
		if len(t.Values) == 0 {
			return nil, false
		}
		return append([]int(nil), t.Values...), true
	case Range:
		if t.Low > t.High || t.High-t.Low >= maxRangeSpan {
			return nil, false
		}
		vals := make([]int, 0, t.High-t.Low+1)
		for v := t.Low; v <= t.High; v++ {
			vals = append(vals, v)
		}
		return vals, true
	}
	return nil, false
}

// maxRangeSpan caps how many values a single "N-M" token may expand to.
const maxRangeSpan = 1 << 16

// Bound is a half-open value interval [Min, Max).
type Bound struct {
	Min int
	Max int
}

func (b Bound) every(step int) []int {
	if b.Max <= b.Min {
		return nil
	}
	vals := make([]int, 0, (b.Max-b.Min-1)/step+1)
	for v := b.Min; v < b.Max; v += step {
		vals = append(vals, v)
		if step >= b.Max-v {
			break
		}
	}
	return vals
}
