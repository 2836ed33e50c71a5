package handler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	errMissingParam = errors.New("missing parameter")
	errNotFinite    = errors.New("must be a finite number")
)

// parseFactor reads a factor query value. NaN and infinities are rejected
// because they have no JSON encoding.
func parseFactor(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("factor: %w", errMissingParam)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("factor %q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("factor %q: %w", s, errNotFinite)
	}
	return f, nil
}

func parseBool(name, s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s %q is not a boolean", name, s)
	}
	return b, nil
}
