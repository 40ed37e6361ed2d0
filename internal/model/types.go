package model

// The structures below are the data contract with the wind-load
// calculation engine: every numeric value is already computed (and
// expressed in N and N/m²) before rendering starts. The renderer never
// derives engineering quantities, it only lays them out.

// Project is the report header metadata.
type Project struct {
	Name     string `yaml:"nombre"`
	Location string `yaml:"ubicacion,omitempty"`
	Code     string `yaml:"reglamento,omitempty"`
}

// CodeReference returns the code citation for the reference line.
func (p Project) CodeReference() string {
	if p.Code != "" {
		return p.Code
	}
	return "Reglamento CIRSOC 102-2005"
}

// Site carries the wind design parameters common to every structure.
type Site struct {
	Velocity       float64           `yaml:"velocidad"`
	Category       StructureCategory `yaml:"categoria"`
	Exposure       ExposureCategory  `yaml:"categoria_exposicion"`
	Directionality float64           `yaml:"factor_direccionalidad"`
	Importance     float64           `yaml:"factor_importancia"`
}

// GustParams are the intermediate gust-factor parameters for a
// non-simplified calculation.
type GustParams struct {
	Z  float64 `yaml:"z"`
	Iz float64 `yaml:"iz"`
	Lz float64 `yaml:"lz"`
	GR float64 `yaml:"gr"`
	R  float64 `yaml:"r"`
	Q  float64 `yaml:"q"`
}

// GustFactor is the gust effect factor G with its parameters. When
// Simplified is set the engine adopted the fixed 0.85 value and the
// parameter set is meaningless.
type GustFactor struct {
	Simplified  bool        `yaml:"simplificado"`
	Flexibility Flexibility `yaml:"flexibilidad,omitempty"`
	Factor      float64     `yaml:"factor"`
	Params      GustParams  `yaml:"parametros,omitempty"`
}

// TopoParams are the topographic factor parameters. K3 and Kzt carry one
// entry per analysis height.
type TopoParams struct {
	K     float64   `yaml:"k"`
	Gamma float64   `yaml:"gamma"`
	Mu    float64   `yaml:"mu"`
	Lh    float64   `yaml:"lh"`
	K1    float64   `yaml:"k1"`
	K2    float64   `yaml:"k2"`
	K3    []float64 `yaml:"k3,omitempty"`
	Kzt   []float64 `yaml:"kzt,omitempty"`
}

// Topography describes the terrain feature and its factor. When
// Considered is false the factor is 1.0 everywhere and the report states
// so in a single sentence.
type Topography struct {
	Considered    bool                `yaml:"considerada"`
	Feature       TerrainFeature      `yaml:"tipo_terreno,omitempty"`
	Direction     TopographyDirection `yaml:"direccion,omitempty"`
	FeatureHeight float64             `yaml:"altura_terreno,omitempty"`
	CrestDistance float64             `yaml:"distancia_cresta,omitempty"`
	Distance      float64             `yaml:"distancia_barlovento_sotavento,omitempty"`
	Params        TopoParams          `yaml:"parametros,omitempty"`
}

// PressureRow is one per-height velocity pressure row: exposure
// coefficient, topographic factor and velocity pressure at that height.
type PressureRow struct {
	Height float64 `yaml:"altura"`
	Kz     float64 `yaml:"kz"`
	Kzt    float64 `yaml:"kzt"`
	Qz     float64 `yaml:"qz"`
}

// WallRow is one wall pressure row. Windward walls carry one row per
// height; leeward and side walls carry a single row evaluated at the
// mean roof height.
type WallRow struct {
	Height   float64 `yaml:"altura"`
	Cp       float64 `yaml:"cp"`
	Pressure float64 `yaml:"presion"`
}

// RoofRow is one roof pressure row, labelled by zone or distance range.
type RoofRow struct {
	Zone     string  `yaml:"zona"`
	Cp       float64 `yaml:"cp"`
	Pressure float64 `yaml:"presion"`
}

// EaveRow is one eave pressure row per configured height band.
type EaveRow struct {
	Height   float64 `yaml:"altura"`
	Pressure float64 `yaml:"presion"`
}

// BuildingGeometry is the building input geometry. Eave is the eave
// length (zero means the building has no eave and the eave table is
// omitted); Parapet likewise.
type BuildingGeometry struct {
	Width       float64   `yaml:"ancho"`
	Length      float64   `yaml:"longitud"`
	EaveHeight  float64   `yaml:"altura_alero"`
	RidgeHeight float64   `yaml:"altura_cumbrera,omitempty"`
	MeanHeight  float64   `yaml:"altura_media"`
	Angle       float64   `yaml:"angulo"`
	Eave        float64   `yaml:"alero"`
	Parapet     float64   `yaml:"parapeto"`
	Roof        RoofKind  `yaml:"cubierta"`
	Enclosure   Enclosure `yaml:"cerramiento"`
	GCpi        float64   `yaml:"gcpi"`
}

// Building is the result set for an enclosed building report.
type Building struct {
	Geometry          BuildingGeometry           `yaml:"geometria"`
	Heights           []float64                  `yaml:"alturas"`
	VelocityPressures []PressureRow              `yaml:"presiones_velocidad"`
	Walls             map[WallPosition][]WallRow `yaml:"paredes"`
	Roof              []RoofRow                  `yaml:"cubierta"`
	Eave              []EaveRow                  `yaml:"alero,omitempty"`
	Parapet           []RoofRow                  `yaml:"parapeto,omitempty"`
}

// Sign is the result set for a freestanding sign report. Pressures carry
// one value per band height; PartialForces and PartialAreas carry one
// value per band between consecutive heights.
type Sign struct {
	Heights       []float64 `yaml:"alturas"`
	PartialAreas  []float64 `yaml:"areas_parciales"`
	Cf            float64   `yaml:"cf"`
	Pressures     []float64 `yaml:"presiones"`
	PartialForces []float64 `yaml:"fuerzas_parciales"`
	TotalForce    float64   `yaml:"fuerza_total"`
}

// OpenRoofCase is the net pressure set for one global pressure extreme
// of an isolated roof.
type OpenRoofCase struct {
	Extreme  PressureExtreme `yaml:"extremo"`
	Cpn      float64         `yaml:"cpn"`
	Pressure float64         `yaml:"presion"`
}

// OpenRoof is the result set for an isolated (open) roof report.
type OpenRoof struct {
	Kind   RoofKind       `yaml:"tipo"`
	Angle  float64        `yaml:"angulo"`
	Height float64        `yaml:"altura"`
	Qh     float64        `yaml:"qh"`
	Cases  []OpenRoofCase `yaml:"casos"`
}

// Structure is the model root one report request consumes. Exactly one
// of Building, Sign or OpenRoof is populated, matching Kind.
type Structure struct {
	Kind       StructureKind `yaml:"tipo"`
	Project    Project       `yaml:"proyecto"`
	Site       Site          `yaml:"sitio"`
	Gust       GustFactor    `yaml:"rafaga"`
	Topography Topography    `yaml:"topografia"`
	Building   *Building     `yaml:"edificio,omitempty"`
	Sign       *Sign         `yaml:"cartel,omitempty"`
	OpenRoof   *OpenRoof     `yaml:"cubierta_aislada,omitempty"`
}
