// Package validate holds the pure parameter checks shared by the search and
// order endpoints. Error messages are part of the API contract.
package validate

import (
	"fmt"
	"strings"
)

// Error is a caller-input failure. Handlers map it to HTTP 400.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Required fails when a required value is absent.
func Required(field string, present bool) error {
	if !present {
		return Errorf("%s is required", field)
	}
	return nil
}

// MinLength fails when s has fewer than min characters.
func MinLength(field, s string, min int) error {
	if len([]rune(s)) < min {
		return Errorf("%s must be at least %d characters", field, min)
	}
	return nil
}

// OneOf fails when v is not one of the allowed values.
func OneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// IntRange fails when n is outside [lo, hi].
func IntRange(field string, n, lo, hi int) error {
	if n < lo || n > hi {
		return Errorf("%s must be an integer between %d and %d", field, lo, hi)
	}
	return nil
}

// Min fails when n is below lo.
func Min(field string, n, lo int) error {
	if n < lo {
		return Errorf("%s must be at least %d", field, lo)
	}
	return nil
}
