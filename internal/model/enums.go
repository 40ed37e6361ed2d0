package model

// Enumeration values keep the Spanish spelling used by the CIRSOC 102
// calculation engine and by the YAML documents it exports; Label methods
// return the capitalised form shown in report tables.

// ExposureCategory is the terrain exposure category.
type ExposureCategory string

const (
	ExposureA ExposureCategory = "A"
	ExposureB ExposureCategory = "B"
	ExposureC ExposureCategory = "C"
	ExposureD ExposureCategory = "D"
)

// StructureCategory is the structure importance category.
type StructureCategory string

const (
	CategoryI   StructureCategory = "I"
	CategoryII  StructureCategory = "II"
	CategoryIII StructureCategory = "III"
	CategoryIV  StructureCategory = "IV"
)

// Flexibility distinguishes rigid and flexible structures for the gust
// factor calculation.
type Flexibility string

const (
	Rigid    Flexibility = "rigida"
	Flexible Flexibility = "flexible"
)

// Label returns the display form.
func (f Flexibility) Label() string {
	if f == Flexible {
		return "Flexible"
	}
	return "Rígida"
}

// StructureKind identifies which report a model document belongs to.
type StructureKind string

const (
	KindBuilding StructureKind = "edificio"
	KindSign     StructureKind = "cartel"
	KindOpenRoof StructureKind = "cubierta_aislada"
)

// Label returns the display form.
func (k StructureKind) Label() string {
	switch k {
	case KindBuilding:
		return "Edificio"
	case KindSign:
		return "Cartel"
	case KindOpenRoof:
		return "Cubierta aislada"
	}
	return string(k)
}

// WallPosition keys the wall pressure groups of a building.
type WallPosition string

const (
	WallWindward WallPosition = "barlovento"
	WallLeeward  WallPosition = "sotavento"
	WallSide     WallPosition = "lateral"
)

// Label returns the display form.
func (p WallPosition) Label() string {
	switch p {
	case WallWindward:
		return "Barlovento"
	case WallLeeward:
		return "Sotavento"
	case WallSide:
		return "Lateral"
	}
	return string(p)
}

// RoofSlopePosition keys roof and eave rows relative to the wind.
type RoofSlopePosition string

const (
	SlopeWindward RoofSlopePosition = "barlovento"
	SlopeLeeward  RoofSlopePosition = "sotavento"
)

// Label returns the display form.
func (p RoofSlopePosition) Label() string {
	if p == SlopeLeeward {
		return "Sotavento"
	}
	return "Barlovento"
}

// TerrainFeature is the topographic feature type.
type TerrainFeature string

const (
	FeatureRidge      TerrainFeature = "loma bidimensional"
	FeatureEscarpment TerrainFeature = "escarpa bidimensional"
	FeatureHill       TerrainFeature = "colina tridimensional"
)

// Label returns the display form.
func (t TerrainFeature) Label() string {
	switch t {
	case FeatureRidge:
		return "Loma bidimensional"
	case FeatureEscarpment:
		return "Escarpa bidimensional"
	case FeatureHill:
		return "Colina tridimensional"
	}
	return string(t)
}

// TopographyDirection locates the structure relative to the crest.
type TopographyDirection string

const (
	TopoWindward TopographyDirection = "barlovento"
	TopoLeeward  TopographyDirection = "sotavento"
)

// RoofKind is the roof typology of a building or isolated roof.
type RoofKind string

const (
	RoofFlat      RoofKind = "plana"
	RoofMonoslope RoofKind = "un agua"
	RoofDuopitch  RoofKind = "dos aguas"
)

// Label returns the display form.
func (r RoofKind) Label() string {
	switch r {
	case RoofFlat:
		return "Plana"
	case RoofMonoslope:
		return "Un agua"
	case RoofDuopitch:
		return "Dos aguas"
	}
	return string(r)
}

// Enclosure is the building enclosure classification.
type Enclosure string

const (
	Enclosed          Enclosure = "cerrado"
	PartiallyEnclosed Enclosure = "parcialmente cerrado"
	Open              Enclosure = "abierto"
)

// Label returns the display form.
func (e Enclosure) Label() string {
	switch e {
	case Enclosed:
		return "Cerrado"
	case PartiallyEnclosed:
		return "Parcialmente cerrado"
	case Open:
		return "Abierto"
	}
	return string(e)
}

// PressureExtreme distinguishes the two global pressure cases of an
// isolated roof.
type PressureExtreme string

const (
	ExtremeMax PressureExtreme = "max"
	ExtremeMin PressureExtreme = "min"
)

// Label returns the display form used in captions.
func (p PressureExtreme) Label() string {
	if p == ExtremeMin {
		return "C~pn~ mín"
	}
	return "C~pn~ máx"
}
