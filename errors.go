package ofxparser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when the document path does not exist.
	ErrNotFound = errors.New("error - file not found")
	// ErrMalformedDocument is returned when the OFX root tag can not be located.
	ErrMalformedDocument = errors.New("error - invalid file, OFX tag not found")
	// ErrParseFailure matches any *ParseFailure with errors.Is.
	ErrParseFailure = errors.New("error - failed to parse OFX")
)

// Severity is the level of a well-formedness error.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseError is a single well-formedness error reported by the XML loader. Line and Column are
// 1-based; 0 means the position is unknown.
type ParseError struct {
	Line     int
	Column   int
	Severity Severity
	Message  string
}

func (e ParseError) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Severity, e.Message)
}

// ParseFailure carries every error reported while loading the normalized XML.
type ParseFailure struct {
	Errors []ParseError
}

func (f *ParseFailure) Error() string {
	msgs := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		msgs = append(msgs, e.String())
	}
	return fmt.Sprintf("%s: %d error(s): %s", ErrParseFailure, len(f.Errors), strings.Join(msgs, "; "))
}

// Is reports whether target is ErrParseFailure.
func (f *ParseFailure) Is(target error) bool {
	return target == ErrParseFailure
}
