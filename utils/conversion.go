package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// CoerceFloat converts a decoded JSON value to float64. Clients send numeric
// fields as either numbers or strings, so both are accepted. NaN and the
// infinities are rejected; they have no meaning as a price or a count.
func CoerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, n.String())
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, n)
		}
		return finite(f)
	default:
		return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidInput, v)
	}
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, f)
	}
	return f, nil
}

// CoerceInt converts a decoded JSON value to int, truncating fractions the
// way parseInt does. Values that do not fit in an int are rejected rather
// than silently wrapped.
func CoerceInt(v any) (int, error) {
	if n, ok := v.(int); ok {
		return n, nil
	}
	f, err := CoerceFloat(v)
	if err != nil {
		return 0, err
	}
	f = math.Trunc(f)
	// math.MaxInt64 rounds up to 2^63 as a float64, so >= catches overflow.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v does not fit in an int", ErrInvalidInput, f)
	}
	return int(f), nil
}
