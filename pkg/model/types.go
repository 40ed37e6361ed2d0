package model

import internalmodel "github.com/zondalab/go-windreport/internal/model"

// ExposureCategory re-exports the internal exposure category enumeration.
type ExposureCategory = internalmodel.ExposureCategory

const (
	ExposureA = internalmodel.ExposureA
	ExposureB = internalmodel.ExposureB
	ExposureC = internalmodel.ExposureC
	ExposureD = internalmodel.ExposureD
)

type StructureCategory = internalmodel.StructureCategory

const (
	CategoryI   = internalmodel.CategoryI
	CategoryII  = internalmodel.CategoryII
	CategoryIII = internalmodel.CategoryIII
	CategoryIV  = internalmodel.CategoryIV
)

type Flexibility = internalmodel.Flexibility

const (
	Rigid    = internalmodel.Rigid
	Flexible = internalmodel.Flexible
)

type StructureKind = internalmodel.StructureKind

const (
	KindBuilding = internalmodel.KindBuilding
	KindSign     = internalmodel.KindSign
	KindOpenRoof = internalmodel.KindOpenRoof
)

type WallPosition = internalmodel.WallPosition

const (
	WallWindward = internalmodel.WallWindward
	WallLeeward  = internalmodel.WallLeeward
	WallSide     = internalmodel.WallSide
)

type RoofSlopePosition = internalmodel.RoofSlopePosition

const (
	SlopeWindward = internalmodel.SlopeWindward
	SlopeLeeward  = internalmodel.SlopeLeeward
)

type TerrainFeature = internalmodel.TerrainFeature

const (
	FeatureRidge      = internalmodel.FeatureRidge
	FeatureEscarpment = internalmodel.FeatureEscarpment
	FeatureHill       = internalmodel.FeatureHill
)

type TopographyDirection = internalmodel.TopographyDirection

const (
	TopoWindward = internalmodel.TopoWindward
	TopoLeeward  = internalmodel.TopoLeeward
)

type RoofKind = internalmodel.RoofKind

const (
	RoofFlat      = internalmodel.RoofFlat
	RoofMonoslope = internalmodel.RoofMonoslope
	RoofDuopitch  = internalmodel.RoofDuopitch
)

type Enclosure = internalmodel.Enclosure

const (
	Enclosed          = internalmodel.Enclosed
	PartiallyEnclosed = internalmodel.PartiallyEnclosed
	Open              = internalmodel.Open
)

type PressureExtreme = internalmodel.PressureExtreme

const (
	ExtremeMax = internalmodel.ExtremeMax
	ExtremeMin = internalmodel.ExtremeMin
)

type Project = internalmodel.Project
type Site = internalmodel.Site
type GustParams = internalmodel.GustParams
type GustFactor = internalmodel.GustFactor
type TopoParams = internalmodel.TopoParams
type Topography = internalmodel.Topography
type PressureRow = internalmodel.PressureRow
type WallRow = internalmodel.WallRow
type RoofRow = internalmodel.RoofRow
type EaveRow = internalmodel.EaveRow
type BuildingGeometry = internalmodel.BuildingGeometry
type Building = internalmodel.Building
type Sign = internalmodel.Sign
type OpenRoofCase = internalmodel.OpenRoofCase
type OpenRoof = internalmodel.OpenRoof
type Structure = internalmodel.Structure
type ExposureConstants = internalmodel.ExposureConstants

// ConstantsFor re-exports the canonical exposure constant lookup.
func ConstantsFor(category ExposureCategory) (ExposureConstants, bool) {
	return internalmodel.ConstantsFor(category)
}
