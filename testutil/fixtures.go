package testutil

import (
	"math"
	"testing"

	"standbiomass/internal/tables"
	"standbiomass/pkg/domain"
)

// Lookup tuples covered by the fixture coefficient set.
var (
	KeyPine   = domain.Key{Jurisdiction: "BC", Genus: "PINU", Species: "CON", Ecozone: 4}
	KeyAspen  = domain.Key{Jurisdiction: "AB", Genus: "POPU", Species: "TRE", Ecozone: 9}
	KeyAspenX = domain.Key{Jurisdiction: "AB", Genus: "POPU", Species: "TRE", Variety: "X", Ecozone: 9}
	KeyBirch  = domain.Key{Jurisdiction: "SK", Genus: "BETU", Species: "PAP", Ecozone: 6}
)

// FixtureRows returns a small, internally consistent coefficient set used
// across the test suites:
//
//   - PINU.CON / BC / ecozone 4: rows in all seven tables, including a
//     sapling model. The golden-scenario expectations are derived from
//     these rows.
//   - POPU.TRE and POPU.TRE.X / AB / ecozone 9: distinct required-table
//     rows per variety, sharing a single sapling row (the sapling table
//     ignores variety).
//   - BETU.PAP / SK / ecozone 6: required tables only, no sapling model.
//
// The coefficients are shaped like the published model's (power-law fits,
// negative correction exponents, caps slightly above one) but are test
// values, not the published tables.
func FixtureRows() tables.Rows {
	return tables.Rows{
		Stemwood: []domain.StemwoodParams{
			{Key: KeyPine, A: 0.7441, B: 0.9465},
			{Key: KeyAspen, A: 0.9152, B: 0.9124},
			{Key: KeyAspenX, A: 0.8330, B: 0.9217},
			{Key: KeyBirch, A: 0.8116, B: 0.9078},
		},
		Nonmerch: []domain.NonmerchParams{
			{Key: KeyPine, K: 0.9693, A: 1.2567, B: -0.3294, CapFactor: 1.1404},
			{Key: KeyAspen, K: 1.0542, A: 0.3197, B: -0.6879, CapFactor: 1.3762},
			{Key: KeyAspenX, K: 1.0377, A: 0.4325, B: -0.5410, CapFactor: 1.2218},
			{Key: KeyBirch, K: 1.0193, A: 0.8561, B: -0.4871, CapFactor: 1.2524},
		},
		Sapling: []domain.SaplingParams{
			{Key: KeyPine, K: 1.0014, A: 0.1536, B: -0.6713, CapFactor: 1.0957},
			{Key: KeyAspen, K: 1.0281, A: 0.2371, B: -0.8409, CapFactor: 1.1350},
		},
		PropVolume: []domain.ProportionParams{
			{Key: KeyPine, A1: -1.1955, A2: -0.0070, A3: 0.2261, B1: -1.1704, B2: -0.0019, B3: -0.1096, C1: -1.9726, C2: -0.0042, C3: 0.0509},
			{Key: KeyAspen, A1: -0.8041, A2: -0.0051, A3: 0.1624, B1: -1.4820, B2: -0.0036, B3: -0.0741, C1: -2.2361, C2: -0.0053, C3: 0.0882},
			{Key: KeyAspenX, A1: -0.8644, A2: -0.0047, A3: 0.1701, B1: -1.5038, B2: -0.0031, B3: -0.0699, C1: -2.1904, C2: -0.0049, C3: 0.0817},
			{Key: KeyBirch, A1: -1.0427, A2: -0.0062, A3: 0.2114, B1: -1.2691, B2: -0.0023, B3: -0.0985, C1: -2.0581, C2: -0.0039, C3: 0.0567},
		},
		PropBiomass: []domain.ProportionParams{
			{Key: KeyPine, A1: -0.9634, A2: -0.0055, A3: 0.1842, B1: -1.3218, B2: -0.0027, B3: -0.0891, C1: -2.0917, C2: -0.0031, C3: 0.0614},
			{Key: KeyAspen, A1: -0.7712, A2: -0.0044, A3: 0.1518, B1: -1.5233, B2: -0.0029, B3: -0.0685, C1: -2.3042, C2: -0.0046, C3: 0.0793},
			{Key: KeyAspenX, A1: -0.8169, A2: -0.0041, A3: 0.1593, B1: -1.5461, B2: -0.0026, B3: -0.0652, C1: -2.2587, C2: -0.0043, C3: 0.0748},
			{Key: KeyBirch, A1: -0.9918, A2: -0.0053, A3: 0.1967, B1: -1.3104, B2: -0.0021, B3: -0.0912, C1: -2.1246, C2: -0.0034, C3: 0.0521},
		},
		BoundsVolume: []domain.BoundsParams{
			boundsRow(KeyPine, 0, 650.6),
			boundsRow(KeyAspen, 0, 594.3),
			boundsRow(KeyAspenX, 0, 594.3),
			boundsRow(KeyBirch, 0, 471.8),
		},
		BoundsBiomass: []domain.BoundsParams{
			boundsRow(KeyPine, 0, 489.2),
			boundsRow(KeyAspen, 0, 462.7),
			boundsRow(KeyAspenX, 0, 462.7),
			boundsRow(KeyBirch, 0, 388.5),
		},
	}
}

func boundsRow(key domain.Key, volMin, volMax float64) domain.BoundsParams {
	return domain.BoundsParams{
		Key:    key,
		VolMin: volMin,
		VolMax: volMax,

		StemwoodLow:  0.53,
		BarkLow:      0.12,
		BranchesLow:  0.21,
		FoliageLow:   0.14,
		StemwoodHigh: 0.84,
		BarkHigh:     0.08,
		BranchesHigh: 0.05,
		FoliageHigh:  0.03,
	}
}

// FixtureDataset indexes FixtureRows, failing the test on error.
func FixtureDataset(t testing.TB) *tables.Dataset {
	t.Helper()
	dataset, err := tables.New(FixtureRows())
	if err != nil {
		t.Fatalf("build fixture dataset: %v", err)
	}
	return dataset
}

// InDelta fails the test when got is not within tol of want.
func InDelta(t testing.TB, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Fatalf("%s: got %v want %v (tol %v)", name, got, want, tol)
	}
}
