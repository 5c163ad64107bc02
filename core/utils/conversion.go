package utils

import (
	"math"
	"strconv"
)

// ToFloat64 converts any Go numeric type to float64 using explicit type switching.
// It reports false for non-numeric values.
func ToFloat64(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// FormatNumber renders a numeric value without exponent. Integers print as is,
// floats in their shortest round-trip form with a negative zero printed as "0".
// It reports false for non-numeric and non-finite values.
func FormatNumber(val any) (string, bool) {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32, int16, int8:
		f, _ := ToFloat64(v)
		return strconv.FormatInt(int64(f), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uint32, uint16, uint8:
		f, _ := ToFloat64(v)
		return strconv.FormatUint(uint64(f), 10), true
	}

	f, ok := ToFloat64(val)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	if f == 0 {
		return "0", true
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
