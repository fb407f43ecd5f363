package cronexpr

import (
	"errors"
	"fmt"
)

// ErrBadFormat is the single failure kind of this package. Every error
// returned by Parse or ExpandField satisfies errors.Is(err, ErrBadFormat).
var ErrBadFormat = errors.New("Bad format")

// FieldError reports a field token that matched no supported syntax.
type FieldError struct {
	Field Kind
	Raw   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s field %q", ErrBadFormat, e.Field, e.Raw)
}

func (e *FieldError) Unwrap() error { return ErrBadFormat }
