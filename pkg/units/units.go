// Package units holds the unit enumeration used by report tables and the
// conversion contract the rendering core consumes. Model values are always
// produced in Newtons (and N/m² for pressures); conversion happens at the
// table cell, never inside the engineering model.
package units

// Kind distinguishes the two magnitudes a report column can carry.
type Kind string

const (
	Pressure Kind = "presion"
	Force    Kind = "fuerza"
)

// Unit is a force unit selectable per report request.
type Unit string

const (
	Newton        Unit = "N"
	Kilonewton    Unit = "kN"
	KilogramForce Unit = "kG"
)

// Valid reports whether u is one of the recognised units.
func (u Unit) Valid() bool {
	switch u {
	case Newton, Kilonewton, KilogramForce:
		return true
	}
	return false
}

// ForceLabel returns the column suffix for force values, using pandoc
// inline markup where needed.
func (u Unit) ForceLabel() string {
	return string(u)
}

// PressureLabel returns the column suffix for pressure values. The m² is
// written with pandoc superscript markup so it survives conversion.
func (u Unit) PressureLabel() string {
	return string(u) + "/m^2^"
}

// Converter is the external conversion contract: it takes a value in
// Newtons (or N/m²) and returns it expressed in the target unit. The
// rendering core treats it as opaque.
type Converter func(value float64, unit Unit) float64

// Convert is the default Converter.
func Convert(value float64, unit Unit) float64 {
	switch unit {
	case Kilonewton:
		return value * 0.001
	case KilogramForce:
		return value * 0.1019716213
	default:
		return value
	}
}

// Set selects the display unit per magnitude for one report request.
type Set map[Kind]Unit

// DefaultSet renders everything in Newtons.
func DefaultSet() Set {
	return Set{Pressure: Newton, Force: Newton}
}

// Pressure returns the configured pressure unit, defaulting to Newton.
func (s Set) Pressure() Unit {
	if u, ok := s[Pressure]; ok && u.Valid() {
		return u
	}
	return Newton
}

// Force returns the configured force unit, defaulting to Newton.
func (s Set) Force() Unit {
	if u, ok := s[Force]; ok && u.Valid() {
		return u
	}
	return Newton
}
