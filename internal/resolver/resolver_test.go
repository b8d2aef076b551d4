package resolver

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"standbiomass/internal/tables"
	"standbiomass/pkg/domain"
	"standbiomass/testutil"
)

func mustDataset(t *testing.T, rows tables.Rows) *tables.Dataset {
	t.Helper()
	dataset, err := tables.New(rows)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return dataset
}

func taxon(t *testing.T, key string) domain.TaxonKey {
	t.Helper()
	parsed, err := domain.ParseTaxonKey(key)
	if err != nil {
		t.Fatalf("parse %q: %v", key, err)
	}
	return parsed
}

func TestResolveAssemblesFullBundle(t *testing.T) {
	r := New(testutil.FixtureDataset(t), nil)
	bundle, err := r.Resolve(taxon(t, "PINU.CON"), "BC", 4)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if bundle.Stemwood.A != 0.7441 || bundle.Stemwood.B != 0.9465 {
		t.Fatalf("stemwood row: got %+v", bundle.Stemwood)
	}
	if bundle.Nonmerch.CapFactor != 1.1404 {
		t.Fatalf("nonmerch row: got %+v", bundle.Nonmerch)
	}
	if !bundle.SaplingPresent {
		t.Fatal("sapling model expected for PINU.CON")
	}
	if bundle.Sapling.K != 1.0014 {
		t.Fatalf("sapling row: got %+v", bundle.Sapling)
	}
	if bundle.PropVolume.A1 != -1.1955 {
		t.Fatalf("volume proportions row: got %+v", bundle.PropVolume)
	}
	if bundle.PropBiomass.A1 != -0.9634 {
		t.Fatalf("biomass proportions row: got %+v", bundle.PropBiomass)
	}
	if bundle.BoundsVolume.VolMax != 650.6 {
		t.Fatalf("volume bounds row: got %+v", bundle.BoundsVolume)
	}
	if bundle.BoundsBiomass.VolMax != 489.2 {
		t.Fatalf("biomass bounds row: got %+v", bundle.BoundsBiomass)
	}
}

func TestResolveUnknownTupleFailsOnFirstTable(t *testing.T) {
	r := New(testutil.FixtureDataset(t), nil)
	_, err := r.Resolve(taxon(t, "PINU.CON"), "YT", 4)
	var selErr domain.ParameterSelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Resolve: got %v, want ParameterSelectionError", err)
	}
	if selErr.Table != domain.TableStemwood || selErr.Matches != 0 {
		t.Fatalf("selection error: got %+v", selErr)
	}
	if selErr.Key.Jurisdiction != "YT" {
		t.Fatalf("selection error key: got %+v", selErr.Key)
	}
}

func TestResolveAmbiguousRequiredTableFails(t *testing.T) {
	rows := testutil.FixtureRows()
	rows.Stemwood = append(rows.Stemwood, domain.StemwoodParams{Key: testutil.KeyPine, A: 0.9, B: 0.9})
	r := New(mustDataset(t, rows), nil)
	_, err := r.Resolve(taxon(t, "PINU.CON"), "BC", 4)
	var selErr domain.ParameterSelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Resolve: got %v, want ParameterSelectionError", err)
	}
	if selErr.Table != domain.TableStemwood || selErr.Matches != 2 {
		t.Fatalf("selection error: got %+v", selErr)
	}
}

func TestResolveMissingLaterTableNamesIt(t *testing.T) {
	rows := testutil.FixtureRows()
	rows.BoundsBiomass = nil
	r := New(mustDataset(t, rows), nil)
	_, err := r.Resolve(taxon(t, "PINU.CON"), "BC", 4)
	var selErr domain.ParameterSelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Resolve: got %v, want ParameterSelectionError", err)
	}
	if selErr.Table != domain.TableBoundsBiomass {
		t.Fatalf("selection error table: got %q want %q", selErr.Table, domain.TableBoundsBiomass)
	}
}

func TestResolveVarietyRowsNeverCross(t *testing.T) {
	r := New(testutil.FixtureDataset(t), nil)

	withVariety, err := r.Resolve(taxon(t, "POPU.TRE.X"), "AB", 9)
	if err != nil {
		t.Fatalf("Resolve POPU.TRE.X: %v", err)
	}
	if withVariety.Stemwood.A != 0.8330 {
		t.Fatalf("POPU.TRE.X stemwood: got %+v, want the variety row", withVariety.Stemwood)
	}

	nullVariety, err := r.Resolve(taxon(t, "POPU.TRE"), "AB", 9)
	if err != nil {
		t.Fatalf("Resolve POPU.TRE: %v", err)
	}
	if nullVariety.Stemwood.A != 0.9152 {
		t.Fatalf("POPU.TRE stemwood: got %+v, want the variety-null row", nullVariety.Stemwood)
	}
}

func TestResolveVarietyQueryNeverMatchesNullRow(t *testing.T) {
	rows := testutil.FixtureRows()
	r := New(mustDataset(t, rows), nil)
	// The fixture has no BETU.PAP.X rows; the variety-null BETU.PAP rows must
	// not satisfy the variety-specified query.
	_, err := r.Resolve(taxon(t, "BETU.PAP.X"), "SK", 6)
	var selErr domain.ParameterSelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Resolve: got %v, want ParameterSelectionError", err)
	}
	if selErr.Matches != 0 {
		t.Fatalf("selection error: got %+v, want zero matches", selErr)
	}
}

func TestResolveSaplingSharedAcrossVarieties(t *testing.T) {
	// The sapling table is filtered without the variety constraint, so the
	// single POPU.TRE sapling row serves the variety query too.
	r := New(testutil.FixtureDataset(t), nil)
	bundle, err := r.Resolve(taxon(t, "POPU.TRE.X"), "AB", 9)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bundle.SaplingPresent {
		t.Fatal("sapling model expected via the variety-free filter")
	}
	if bundle.Sapling.K != 1.0281 {
		t.Fatalf("sapling row: got %+v", bundle.Sapling)
	}
}

func TestResolveAbsentSaplingIsDiagnosedNotFailed(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	r := New(testutil.FixtureDataset(t), log)

	bundle, err := r.Resolve(taxon(t, "BETU.PAP"), "SK", 6)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if bundle.SaplingPresent {
		t.Fatal("BETU.PAP has no sapling row; bundle must mark it absent")
	}
	logged := buf.String()
	for _, want := range []string{"no sapling model", "BETU.PAP", "SK"} {
		if !strings.Contains(logged, want) {
			t.Fatalf("diagnostic %q missing %q", logged, want)
		}
	}
}

func TestResolveAmbiguousSaplingTreatedAsAbsent(t *testing.T) {
	rows := testutil.FixtureRows()
	// A second sapling row differing only in variety makes the variety-free
	// filter ambiguous; ambiguity is the valid "no sapling model" outcome.
	rows.Sapling = append(rows.Sapling, domain.SaplingParams{Key: testutil.KeyAspenX, K: 1.05})
	r := New(mustDataset(t, rows), nil)

	bundle, err := r.Resolve(taxon(t, "POPU.TRE"), "AB", 9)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if bundle.SaplingPresent {
		t.Fatal("ambiguous sapling rows must resolve to absent, not an arbitrary pick")
	}
}
