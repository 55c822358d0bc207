package report

import (
	"errors"
	"fmt"
)

// HeaderParseError is a cell that starts like a weekday label but does not
// carry a usable month/day.
type HeaderParseError struct {
	Row    int
	Column int
	Value  string
	Err    error
}

func (e *HeaderParseError) Error() string {
	return fmt.Sprintf("parse date header %q at row %d, column %d: %v", e.Value, e.Row, e.Column, e.Err)
}

func (e *HeaderParseError) Unwrap() error {
	return e.Err
}

// EntryParseError is a time-range entry whose clock-in could not be parsed.
// Row and Column point at the entry cell, Header at the date label above it.
type EntryParseError struct {
	Row    int
	Column int
	Header string
	Value  string
	Err    error
}

func (e *EntryParseError) Error() string {
	return fmt.Sprintf("parse entry %q under %q at row %d, column %d: %v", e.Value, e.Header, e.Row, e.Column, e.Err)
}

func (e *EntryParseError) Unwrap() error {
	return e.Err
}

// Position returns the zero-based grid position carried by a diagnostic.
func Position(err error) (row, column int, ok bool) {
	var headerErr *HeaderParseError
	if errors.As(err, &headerErr) {
		return headerErr.Row, headerErr.Column, true
	}
	var entryErr *EntryParseError
	if errors.As(err, &entryErr) {
		return entryErr.Row, entryErr.Column, true
	}
	return 0, 0, false
}
