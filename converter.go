// Package standbiomass converts per-hectare gross merchantable timber
// volume into above-ground tree biomass components (stem wood, bark,
// branches, foliage) for a tree taxon, Canadian jurisdiction, and ecozone.
//
// The conversion is a parameter-table lookup followed by closed-form
// arithmetic: a Resolver selects one coefficient row per model table for
// the (taxon, jurisdiction, ecozone) tuple, and a Calculator runs the
// four-stage pipeline over them. Parameter tables are supplied fully
// materialized at construction time and are immutable afterwards, so a
// Converter is safe for concurrent use without coordination.
package standbiomass

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"standbiomass/internal/calculator"
	"standbiomass/internal/metrics"
	"standbiomass/internal/resolver"
	"standbiomass/internal/tables"
	"standbiomass/pkg/domain"
)

type (
	// Dataset exposes the indexed parameter store for external construction.
	Dataset = tables.Dataset
	// Rows exposes the raw table-row input a Dataset is built from.
	Rows = tables.Rows
)

// NewDataset indexes the supplied table rows into an immutable Dataset.
func NewDataset(rows Rows) (*Dataset, error) {
	return tables.New(rows)
}

// Converter binds a parameter dataset to the resolver and calculator. It is
// immutable after construction.
type Converter struct {
	resolver *resolver.Resolver
	scenario domain.Scenario
	log      *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger routes diagnostics to the given logger instead of
// slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// WithScenario selects the computation scenario. Only ScenarioCore is
// implemented; New rejects everything else up front rather than failing per
// call.
func WithScenario(scenario domain.Scenario) Option {
	return func(c *Converter) { c.scenario = scenario }
}

// New constructs a Converter over the dataset.
func New(dataset *Dataset, opts ...Option) (*Converter, error) {
	c := &Converter{scenario: domain.ScenarioCore, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if !c.scenario.Implemented() {
		return nil, fmt.Errorf("scenario %q is not implemented, only %q is", c.scenario, domain.ScenarioCore)
	}
	c.resolver = resolver.New(dataset, c.log)
	return c, nil
}

// ConvertVolumeToBiomass resolves model parameters for the taxon key
// ("GENUS.SPECIES[.VARIETY]"), jurisdiction (two-letter code), and ecozone,
// then runs the biomass pipeline on the volume (m³/ha).
//
// Jurisdiction and ecozone are validated only by lookup: a tuple absent
// from the dataset fails with a ParameterSelectionError naming the table.
// Malformed taxon keys fail with TaxonFormatError, negative or non-finite
// volumes with InvalidInputError. Errors abort immediately; no partial
// result is returned.
func (c *Converter) ConvertVolumeToBiomass(volume float64, taxonKey, jurisdiction string, ecozone int) (domain.BiomassResult, error) {
	start := time.Now()
	metrics.ConversionsTotal.Inc()

	result, err := c.convert(volume, taxonKey, jurisdiction, ecozone)
	if err != nil {
		metrics.ConversionErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		return domain.BiomassResult{}, err
	}
	metrics.ConversionDurationUs.Observe(float64(time.Since(start).Microseconds()))
	return result, nil
}

func (c *Converter) convert(volume float64, taxonKey, jurisdiction string, ecozone int) (domain.BiomassResult, error) {
	taxon, err := domain.ParseTaxonKey(taxonKey)
	if err != nil {
		return domain.BiomassResult{}, err
	}
	// Volume is checked before resolution so bad input never reaches the
	// tables; Compute re-checks its own precondition.
	if err := domain.ValidateVolume(volume); err != nil {
		return domain.BiomassResult{}, err
	}
	bundle, err := c.resolver.Resolve(taxon, jurisdiction, ecozone)
	if err != nil {
		return domain.BiomassResult{}, err
	}
	return calculator.Compute(bundle, volume)
}

func errorKind(err error) string {
	var formatErr domain.TaxonFormatError
	var inputErr domain.InvalidInputError
	var selectionErr domain.ParameterSelectionError
	switch {
	case errors.As(err, &formatErr):
		return "taxon_format"
	case errors.As(err, &inputErr):
		return "invalid_input"
	case errors.As(err, &selectionErr):
		return "parameter_selection"
	default:
		return "other"
	}
}
