package fleet

import (
	"errors"
	"fmt"
)

var (
	// ErrBoatNotFound is returned when no boat matches a name.
	ErrBoatNotFound = errors.New("boat not found")
	// ErrUnknownCategory is returned for a category token outside of Categories.
	ErrUnknownCategory = errors.New("unknown boat category")
	// ErrNegativePrice is returned when a boat is created with a negative purchase price.
	ErrNegativePrice = errors.New("purchase price cannot be negative")
	// ErrNegativeExpense is returned when spending a negative amount on a boat.
	ErrNegativeExpense = errors.New("expense cannot be negative")
	// ErrMalformedRecord is returned when a delimited record has too few fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// ParseError reports a field that could not be parsed from a delimited record.
//
// Line is 1-based and zero when the record did not come from a file.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	if e.Field == "" {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
