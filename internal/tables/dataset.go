// Package tables holds the immutable in-memory form of the seven model
// parameter tables, indexed at build time for exact-tuple lookup.
//
// The package never touches disk: callers hand it fully materialized rows
// and receive a read-only Dataset. Lookups are map hits, so resolution cost
// does not grow with table size.
package tables

import (
	"fmt"

	"standbiomass/pkg/domain"
)

// Rows carries the raw table rows a Dataset is built from.
type Rows struct {
	Stemwood      []domain.StemwoodParams
	Nonmerch      []domain.NonmerchParams
	Sapling       []domain.SaplingParams
	PropVolume    []domain.ProportionParams
	PropBiomass   []domain.ProportionParams
	BoundsVolume  []domain.BoundsParams
	BoundsBiomass []domain.BoundsParams
}

// SaplingKey is the variety-free tuple the sapling table is indexed by. The
// model deliberately ignores variety when selecting sapling factors, unlike
// every other table.
type SaplingKey struct {
	Jurisdiction string
	Genus        string
	Species      string
	Ecozone      int
}

// Dataset is the read-only, exact-match-indexed parameter store. After New
// returns, no writer exists; concurrent lookups need no locking.
//
// Duplicate tuples are retained rather than collapsed so the resolver can
// tell "missing" from "ambiguous".
type Dataset struct {
	stemwood      map[domain.Key][]domain.StemwoodParams
	nonmerch      map[domain.Key][]domain.NonmerchParams
	sapling       map[SaplingKey][]domain.SaplingParams
	propVolume    map[domain.Key][]domain.ProportionParams
	propBiomass   map[domain.Key][]domain.ProportionParams
	boundsVolume  map[domain.Key][]domain.BoundsParams
	boundsBiomass map[domain.Key][]domain.BoundsParams
}

// New indexes the supplied rows into a Dataset. Rows missing a jurisdiction,
// genus, or species, or carrying a non-positive ecozone, are rejected: they
// could never be selected and indicate a corrupt source table.
func New(rows Rows) (*Dataset, error) {
	d := &Dataset{
		stemwood:      make(map[domain.Key][]domain.StemwoodParams, len(rows.Stemwood)),
		nonmerch:      make(map[domain.Key][]domain.NonmerchParams, len(rows.Nonmerch)),
		sapling:       make(map[SaplingKey][]domain.SaplingParams, len(rows.Sapling)),
		propVolume:    make(map[domain.Key][]domain.ProportionParams, len(rows.PropVolume)),
		propBiomass:   make(map[domain.Key][]domain.ProportionParams, len(rows.PropBiomass)),
		boundsVolume:  make(map[domain.Key][]domain.BoundsParams, len(rows.BoundsVolume)),
		boundsBiomass: make(map[domain.Key][]domain.BoundsParams, len(rows.BoundsBiomass)),
	}
	for _, row := range rows.Stemwood {
		if err := checkRowKey(domain.TableStemwood, row.Key); err != nil {
			return nil, err
		}
		d.stemwood[row.Key] = append(d.stemwood[row.Key], row)
	}
	for _, row := range rows.Nonmerch {
		if err := checkRowKey(domain.TableNonmerch, row.Key); err != nil {
			return nil, err
		}
		d.nonmerch[row.Key] = append(d.nonmerch[row.Key], row)
	}
	for _, row := range rows.Sapling {
		if err := checkRowKey(domain.TableSapling, row.Key); err != nil {
			return nil, err
		}
		key := saplingKeyOf(row.Key)
		d.sapling[key] = append(d.sapling[key], row)
	}
	for _, row := range rows.PropVolume {
		if err := checkRowKey(domain.TablePropVolume, row.Key); err != nil {
			return nil, err
		}
		d.propVolume[row.Key] = append(d.propVolume[row.Key], row)
	}
	for _, row := range rows.PropBiomass {
		if err := checkRowKey(domain.TablePropBiomass, row.Key); err != nil {
			return nil, err
		}
		d.propBiomass[row.Key] = append(d.propBiomass[row.Key], row)
	}
	for _, row := range rows.BoundsVolume {
		if err := checkRowKey(domain.TableBoundsVolume, row.Key); err != nil {
			return nil, err
		}
		d.boundsVolume[row.Key] = append(d.boundsVolume[row.Key], row)
	}
	for _, row := range rows.BoundsBiomass {
		if err := checkRowKey(domain.TableBoundsBiomass, row.Key); err != nil {
			return nil, err
		}
		d.boundsBiomass[row.Key] = append(d.boundsBiomass[row.Key], row)
	}
	return d, nil
}

func checkRowKey(table domain.TableID, key domain.Key) error {
	if key.Jurisdiction == "" || key.Genus == "" || key.Species == "" {
		return fmt.Errorf("table %s row %s: jurisdiction, genus, and species are required", table, key)
	}
	if key.Ecozone <= 0 {
		return fmt.Errorf("table %s row %s: ecozone must be positive", table, key)
	}
	return nil
}

func saplingKeyOf(key domain.Key) SaplingKey {
	return SaplingKey{
		Jurisdiction: key.Jurisdiction,
		Genus:        key.Genus,
		Species:      key.Species,
		Ecozone:      key.Ecozone,
	}
}

// Stemwood returns every table 3 row matching the tuple.
func (d *Dataset) Stemwood(key domain.Key) []domain.StemwoodParams {
	return d.stemwood[key]
}

// Nonmerch returns every table 4 row matching the tuple.
func (d *Dataset) Nonmerch(key domain.Key) []domain.NonmerchParams {
	return d.nonmerch[key]
}

// Sapling returns every table 5 row matching the variety-free tuple.
func (d *Dataset) Sapling(key SaplingKey) []domain.SaplingParams {
	return d.sapling[key]
}

// PropVolume returns every volume-based table 6 row matching the tuple.
func (d *Dataset) PropVolume(key domain.Key) []domain.ProportionParams {
	return d.propVolume[key]
}

// PropBiomass returns every biomass-based table 6 row matching the tuple.
func (d *Dataset) PropBiomass(key domain.Key) []domain.ProportionParams {
	return d.propBiomass[key]
}

// BoundsVolume returns every volume-based table 7 row matching the tuple.
func (d *Dataset) BoundsVolume(key domain.Key) []domain.BoundsParams {
	return d.boundsVolume[key]
}

// BoundsBiomass returns every biomass-based table 7 row matching the tuple.
func (d *Dataset) BoundsBiomass(key domain.Key) []domain.BoundsParams {
	return d.boundsBiomass[key]
}
