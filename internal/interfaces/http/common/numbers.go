package common

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber reports a query parameter that failed numeric coercion.
var ErrNotANumber = errors.New("not a number")

// ParseIntParam parses an optional integer query parameter. An absent value
// yields the fallback; a non-numeric or negative value is an error.
func ParseIntParam(value string, fallback int64) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0, ErrNotANumber
	}
	return parsed, nil
}

// ParseFloatParam parses a required floating-point query parameter.
func ParseFloatParam(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return parsed, nil
}
