package domain

import "fmt"

// TableID names one of the seven model parameter tables.
type TableID string

// Table identifiers used in parameter selection and error reporting.
const (
	// TableStemwood holds the merchantable stem wood power-law fits (table 3).
	TableStemwood TableID = "stemwood"
	// TableNonmerch holds the nonmerchantable-size factor coefficients (table 4).
	TableNonmerch TableID = "nonmerch"
	// TableSapling holds the sapling-size factor coefficients (table 5).
	TableSapling TableID = "sapling"
	// TablePropVolume holds the volume-based component proportion coefficients (table 6).
	TablePropVolume TableID = "prop_volume"
	// TablePropBiomass holds the biomass-based component proportion coefficients (table 6).
	TablePropBiomass TableID = "prop_biomass"
	// TableBoundsVolume holds the volume-based proportion bounds (table 7).
	TableBoundsVolume TableID = "bounds_volume"
	// TableBoundsBiomass holds the biomass-based proportion bounds (table 7).
	TableBoundsBiomass TableID = "bounds_biomass"
)

// Key is the exact tuple parameter rows are selected by.
type Key struct {
	Jurisdiction string
	Genus        string
	Species      string
	// Variety is empty for variety-null rows.
	Variety string
	Ecozone int
}

// String renders the tuple for diagnostics and error messages.
func (k Key) String() string {
	taxon := TaxonKey{Genus: k.Genus, Species: k.Species, Variety: k.Variety}
	return fmt.Sprintf("%s/%s/eco %d", k.Jurisdiction, taxon, k.Ecozone)
}

// StemwoodParams is a table 3 row: b_m = A * volume^B.
type StemwoodParams struct {
	Key
	A float64
	B float64
}

// NonmerchParams is a table 4 row. The nonmerchantable-size factor is
// K + A*b_m^B, never exceeding CapFactor.
type NonmerchParams struct {
	Key
	K         float64
	A         float64
	B         float64
	CapFactor float64
}

// SaplingParams is a table 5 row. The sapling-size factor is
// K + A*b_nm^B, never exceeding CapFactor.
type SaplingParams struct {
	Key
	K         float64
	A         float64
	B         float64
	CapFactor float64
}

// ProportionParams is a table 6 row: the three exponentiated linear forms
// that partition total biomass into stem wood, bark, branches, and foliage.
type ProportionParams struct {
	Key
	A1, A2, A3 float64
	B1, B2, B3 float64
	C1, C2, C3 float64
}

// BoundsParams is a table 7 row: the volume range a proportion fit is valid
// over, with the component shares pinned at either end.
type BoundsParams struct {
	Key
	VolMin float64
	VolMax float64

	StemwoodLow  float64
	BarkLow      float64
	BranchesLow  float64
	FoliageLow   float64
	StemwoodHigh float64
	BarkHigh     float64
	BranchesHigh float64
	FoliageHigh  float64
}

// ParameterBundle is the per-query result of resolution: one row from each
// required table, and the optional sapling row.
//
// The biomass-based rows (PropBiomass, BoundsVolume, BoundsBiomass) are
// resolved and carried for the not-yet-implemented scenarios; the core
// pipeline reads only Stemwood, Nonmerch, Sapling, and PropVolume.
type ParameterBundle struct {
	Stemwood StemwoodParams
	Nonmerch NonmerchParams
	// Sapling is meaningful only when SaplingPresent is true. Absence is a
	// valid outcome, not an error: the taxon simply has no sapling model.
	Sapling        SaplingParams
	SaplingPresent bool

	PropVolume    ProportionParams
	PropBiomass   ProportionParams
	BoundsVolume  BoundsParams
	BoundsBiomass BoundsParams
}

// Scenario identifies a computation path through the parameter tables.
type Scenario string

const (
	// ScenarioCore drives every stage from merchantable volume, partitioning
	// with the volume-based table 6 coefficients. It is the only implemented
	// scenario.
	ScenarioCore Scenario = "core"
	// ScenarioBiomassProportions would partition with the biomass-based
	// table 6 and 7 rows. The rows are resolved into every bundle but no
	// calculator path consumes them yet.
	ScenarioBiomassProportions Scenario = "biomass-proportions"
)

// Implemented reports whether the calculator can execute the scenario.
func (s Scenario) Implemented() bool {
	return s == ScenarioCore
}
