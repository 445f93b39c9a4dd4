package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseScalar parses s as a base-10 value of type T. Surrounding
// whitespace is ignored. Values that do not fit into T are rejected,
// as are infinities and NaN.
func ParseScalar[T Scalar](s string) (T, error) {
	s = strings.TrimSpace(s)

	switch {
	case isFloat[T]():
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		if f := float64(T(v)); math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %q: value out of range", ErrParse, s)
		}
		return T(v), nil

	case isSigned[T]():
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		if int64(T(v)) != v {
			return 0, fmt.Errorf("%w: %q: value out of range", ErrParse, s)
		}
		return T(v), nil

	default:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		if uint64(T(v)) != v {
			return 0, fmt.Errorf("%w: %q: value out of range", ErrParse, s)
		}
		return T(v), nil
	}
}

func isFloat[T Scalar]() bool {
	return T(1)/2 != 0
}

func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < 0
}
