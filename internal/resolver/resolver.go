// Package resolver selects model parameter rows for a taxon, jurisdiction,
// and ecozone, enforcing the exactly-one-row contract of the required
// tables.
package resolver

import (
	"log/slog"

	"standbiomass/internal/metrics"
	"standbiomass/internal/tables"
	"standbiomass/pkg/domain"
)

// Resolver answers parameter lookups against one immutable dataset. It holds
// no mutable state and is safe for concurrent use.
type Resolver struct {
	dataset *tables.Dataset
	log     *slog.Logger
}

// New constructs a resolver over the dataset. A nil logger falls back to
// slog.Default.
func New(dataset *tables.Dataset, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dataset: dataset, log: log}
}

// Resolve assembles the parameter bundle for the tuple.
//
// Each required table (3, 4, and both variants of 6 and 7) must match
// exactly one row on jurisdiction, genus, species, ecozone, and variety;
// a variety-specified taxon never matches a variety-null row and vice
// versa. Zero or multiple matches abort with a ParameterSelectionError
// naming the table and tuple.
//
// The sapling table is the intentional exception twice over: it is filtered
// without the variety constraint, and anything other than exactly one match
// is the valid "no sapling model" outcome rather than an error. That
// outcome is surfaced through a log line and a counter so it stays
// auditable.
func (r *Resolver) Resolve(taxon domain.TaxonKey, jurisdiction string, ecozone int) (domain.ParameterBundle, error) {
	key := domain.Key{
		Jurisdiction: jurisdiction,
		Genus:        taxon.Genus,
		Species:      taxon.Species,
		Variety:      taxon.Variety,
		Ecozone:      ecozone,
	}

	var bundle domain.ParameterBundle

	stemwood := r.dataset.Stemwood(key)
	if len(stemwood) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TableStemwood, key, len(stemwood))
	}
	bundle.Stemwood = stemwood[0]

	nonmerch := r.dataset.Nonmerch(key)
	if len(nonmerch) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TableNonmerch, key, len(nonmerch))
	}
	bundle.Nonmerch = nonmerch[0]

	propVolume := r.dataset.PropVolume(key)
	if len(propVolume) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TablePropVolume, key, len(propVolume))
	}
	bundle.PropVolume = propVolume[0]

	propBiomass := r.dataset.PropBiomass(key)
	if len(propBiomass) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TablePropBiomass, key, len(propBiomass))
	}
	bundle.PropBiomass = propBiomass[0]

	boundsVolume := r.dataset.BoundsVolume(key)
	if len(boundsVolume) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TableBoundsVolume, key, len(boundsVolume))
	}
	bundle.BoundsVolume = boundsVolume[0]

	boundsBiomass := r.dataset.BoundsBiomass(key)
	if len(boundsBiomass) != 1 {
		return domain.ParameterBundle{}, r.selectionError(domain.TableBoundsBiomass, key, len(boundsBiomass))
	}
	bundle.BoundsBiomass = boundsBiomass[0]

	sapling := r.dataset.Sapling(tables.SaplingKey{
		Jurisdiction: jurisdiction,
		Genus:        taxon.Genus,
		Species:      taxon.Species,
		Ecozone:      ecozone,
	})
	if len(sapling) == 1 {
		bundle.Sapling = sapling[0]
		bundle.SaplingPresent = true
	} else {
		metrics.SaplingAbsentTotal.Inc()
		r.log.Info("no sapling model; sapling contribution will be zero",
			"taxon", taxon.String(),
			"jurisdiction", jurisdiction,
			"ecozone", ecozone,
			"rows", len(sapling),
		)
	}

	return bundle, nil
}

func (r *Resolver) selectionError(table domain.TableID, key domain.Key, matches int) error {
	metrics.ResolutionErrorsTotal.WithLabelValues(string(table)).Inc()
	return domain.ParameterSelectionError{Table: table, Key: key, Matches: matches}
}
