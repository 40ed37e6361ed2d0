package format

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFixed(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"two decimals", 12.345678, 2, "12.35"},
		{"zero decimals", 42.7, 0, "43"},
		{"pads fractional digits", 5, 3, "5.000"},
		{"half away from zero", 0.125, 2, "0.13"},
		{"negative half away from zero", -0.125, 2, "-0.13"},
		{"preserves sign", -273.456, 1, "-273.5"},
		{"zero", 0, 2, "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Fixed(tc.value, tc.decimals)
			if err != nil {
				t.Fatalf("Fixed(%v, %d) returned error: %v", tc.value, tc.decimals, err)
			}
			if got != tc.want {
				t.Fatalf("Fixed(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestFixed_NonFinite(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Fixed(value, 2)
		if err == nil {
			t.Fatalf("Fixed(%v, 2) expected error", value)
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("Fixed(%v, 2) error = %T, want *FormatError", value, err)
		}
	}
}

// Magnitudes large enough to overflow the rounding scale factor are
// still finite and must format as numbers, never as an infinity.
func TestFixed_LargeMagnitude(t *testing.T) {
	for _, value := range []float64{1e307, -1e307, math.MaxFloat64} {
		got, err := Fixed(value, 2)
		if err != nil {
			t.Fatalf("Fixed(%v, 2) returned error: %v", value, err)
		}
		if strings.Contains(got, "Inf") {
			t.Fatalf("Fixed(%v, 2) = %q, want a numeric rendering", value, got)
		}
		if !strings.HasSuffix(got, ".00") {
			t.Fatalf("Fixed(%v, 2) = %q, want two fractional digits", value, got)
		}
		if _, err := strconv.ParseFloat(got, 64); err != nil {
			t.Fatalf("output %q does not parse: %v", got, err)
		}
	}
}

func TestFixed_NegativeDecimals(t *testing.T) {
	_, err := Fixed(1.0, -1)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *FormatError for negative decimals, got %v", err)
	}
}

// Formatting at two decimals is a fixed point: parsing the output and
// formatting again yields the same text.
func TestFixed_RoundTrip(t *testing.T) {
	for _, value := range []float64{0, 0.004, 1.005, 12.345, -98.7654, 1234.5, -0.001} {
		first, err := Fixed(value, 2)
		if err != nil {
			t.Fatalf("Fixed(%v, 2) returned error: %v", value, err)
		}
		parsed, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("output %q does not parse: %v", first, err)
		}
		second, err := Fixed(parsed, 2)
		if err != nil {
			t.Fatalf("Fixed(%v, 2) returned error: %v", parsed, err)
		}
		if first != second {
			t.Fatalf("round trip mismatch for %v: %q != %q", value, first, second)
		}
	}
}

func TestUnit(t *testing.T) {
	got, err := Unit(1234.5, 2, "kN/m^2^")
	if err != nil {
		t.Fatalf("Unit returned error: %v", err)
	}
	if want := "1234.50 kN/m^2^"; got != want {
		t.Fatalf("Unit = %q, want %q", got, want)
	}

	bare, err := Unit(7, 0, "")
	if err != nil {
		t.Fatalf("Unit returned error: %v", err)
	}
	if bare != "7" {
		t.Fatalf("Unit without suffix = %q, want %q", bare, "7")
	}

	if _, err := Unit(math.NaN(), 2, "N"); err == nil {
		t.Fatal("Unit with NaN expected error")
	}
}
