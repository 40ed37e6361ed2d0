// Package format provides fixed-precision numeric formatting for report
// cells. Non-finite input is always an error, never a placeholder.
package format

import (
	"fmt"
	"math"
	"strconv"
)

// FormatError reports non-finite or malformed numeric input.
type FormatError struct {
	Value    float64
	Decimals int
	Message  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format: %s (value=%v, decimals=%d)", e.Message, e.Value, e.Decimals)
}

// NewFormatError creates a FormatError for the offending input.
func NewFormatError(value float64, decimals int, message string) error {
	return &FormatError{Value: value, Decimals: decimals, Message: message}
}

// Fixed renders value with exactly decimals fractional digits, rounding
// half away from zero and preserving sign. NaN and infinities fail with a
// *FormatError.
func Fixed(value float64, decimals int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", NewFormatError(value, decimals, "non-finite value")
	}
	if decimals < 0 {
		return "", NewFormatError(value, decimals, "negative decimal count")
	}
	pow := math.Pow(10, float64(decimals))
	scaled := value * pow
	if math.IsInf(scaled, 0) {
		// Magnitude too large for the scaling step; such values are
		// already integral, so rounding is the identity.
		return strconv.FormatFloat(value, 'f', decimals, 64), nil
	}
	rounded := math.Round(scaled) / pow
	return strconv.FormatFloat(rounded, 'f', decimals, 64), nil
}

// Unit renders value at the given precision followed by a unit suffix,
// e.g. "12.35 kN/m^2^".
func Unit(value float64, decimals int, unit string) (string, error) {
	s, err := Fixed(value, decimals)
	if err != nil {
		return "", err
	}
	if unit == "" {
		return s, nil
	}
	return s + " " + unit, nil
}
