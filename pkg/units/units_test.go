package units

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		unit  Unit
		want  float64
	}{
		{"newton is identity", 1500, Newton, 1500},
		{"kilonewton", 1500, Kilonewton, 1.5},
		{"kilogram force", 1000, KilogramForce, 101.9716213},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.value, tc.unit)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Convert(%v, %s) = %v, want %v", tc.value, tc.unit, got, tc.want)
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	var empty Set
	if got := empty.Pressure(); got != Newton {
		t.Fatalf("empty set pressure unit = %s, want N", got)
	}
	if got := empty.Force(); got != Newton {
		t.Fatalf("empty set force unit = %s, want N", got)
	}

	s := Set{Pressure: Kilonewton, Force: KilogramForce}
	if got := s.Pressure(); got != Kilonewton {
		t.Fatalf("pressure unit = %s, want kN", got)
	}
	if got := s.Force(); got != KilogramForce {
		t.Fatalf("force unit = %s, want kG", got)
	}
}

func TestLabels(t *testing.T) {
	if got := Kilonewton.PressureLabel(); got != "kN/m^2^" {
		t.Fatalf("pressure label = %q", got)
	}
	if got := KilogramForce.ForceLabel(); got != "kG" {
		t.Fatalf("force label = %q", got)
	}
	if Unit("lb").Valid() {
		t.Fatal("lb should not be a valid unit")
	}
}
