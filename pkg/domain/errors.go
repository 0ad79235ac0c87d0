package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedEquation is returned when the "=" separator is missing or repeated.
var ErrMalformedEquation = errors.New("malformed equation")

// ErrMalformedTerm is returned for empty terms, lone signs, invalid numbers
// and invalid variable factors.
var ErrMalformedTerm = errors.New("malformed term")

// ErrUnsupportedDegree is returned when the polynomial degree is strictly greater than 2.
var ErrUnsupportedDegree = errors.New("the polynomial degree is strictly greater than 2, I can't solve")

// ErrUnsupportedPower is returned when a parsed power falls outside {0, 1, 2}.
// It wraps ErrUnsupportedDegree.
var ErrUnsupportedPower = fmt.Errorf("unsupported power: %w", ErrUnsupportedDegree)

// ErrCacheMiss is returned by result caches when a key is not stored.
var ErrCacheMiss = errors.New("report not found in cache")

// ParseError describes where parsing failed.
type ParseError struct {
	Kind   error  // One of the sentinel errors above
	Input  string // The offending substring
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%s: %s: %q", e.Kind, e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ErrorCode returns a stable machine-readable name for err, suitable for JSON
// payloads and metric labels.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedEquation):
		return "malformed_equation"
	case errors.Is(err, ErrMalformedTerm):
		return "malformed_term"
	case errors.Is(err, ErrUnsupportedPower):
		return "unsupported_power"
	case errors.Is(err, ErrUnsupportedDegree):
		return "unsupported_degree"
	default:
		return "internal"
	}
}
