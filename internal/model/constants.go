package model

// ExposureConstants are the terrain exposure constants of CIRSOC
// 102-2005 Tabla 4. The calculation engine embeds the same table; it is
// repeated here so reports can render it without a round trip.
type ExposureConstants struct {
	Alpha      float64
	Zg         float64
	AHat       float64
	BHat       float64
	AlphaBar   float64
	BBar       float64
	C          float64
	L          float64
	EpsilonBar float64
	Zmin       float64
}

var exposureConstants = map[ExposureCategory]ExposureConstants{
	ExposureA: {5, 457, 1.0 / 5, 0.64, 1.0 / 3, 0.3, 0.45, 55, 1.0 / 2, 18.3},
	ExposureB: {7, 366, 1.0 / 7, 0.84, 1.0 / 4, 0.45, 0.3, 98, 1.0 / 3, 9.2},
	ExposureC: {9.5, 274, 1 / 9.5, 1, 1 / 6.5, 0.65, 0.2, 152, 1.0 / 5, 4.6},
	ExposureD: {11.5, 213, 1 / 11.5, 1.07, 1.0 / 9, 0.8, 0.15, 198, 1.0 / 8, 2.1},
}

// ConstantsFor returns the exposure constants for a category.
func ConstantsFor(category ExposureCategory) (ExposureConstants, bool) {
	c, ok := exposureConstants[category]
	return c, ok
}
