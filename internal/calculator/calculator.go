// Package calculator runs the four-stage biomass pipeline over a resolved
// parameter bundle.
//
// Only the volume-driven core scenario is implemented: every stage is fed
// by merchantable volume, and component partitioning uses the volume-based
// proportion coefficients. The biomass-based proportion and bounds rows
// carried in the bundle are accepted and ignored until the remaining
// scenarios land.
package calculator

import (
	"math"

	"standbiomass/pkg/domain"
)

// Compute converts a gross merchantable volume (m³/ha) into above-ground
// biomass components (t/ha) using the bundle's coefficients. Volume must be
// finite and non-negative; zero is valid and degenerates to all-zero
// outputs. No partial result is ever returned alongside an error.
func Compute(bundle domain.ParameterBundle, volume float64) (domain.BiomassResult, error) {
	if err := domain.ValidateVolume(volume); err != nil {
		return domain.BiomassResult{}, err
	}

	// Stage 1: merchantable stem wood from the power-law fit.
	merch := bundle.Stemwood.A * math.Pow(volume, bundle.Stemwood.B)

	// Stage 2: nonmerchantable-size correction. The raw factor diverges as
	// b_m approaches zero (the exponents are typically negative), so the cap
	// is applied before the factor is used.
	nonmerchFactor := cappedFactor(bundle.Nonmerch.K, bundle.Nonmerch.A, bundle.Nonmerch.B, bundle.Nonmerch.CapFactor, merch)
	merchNonmerch := nonmerchFactor * merch
	nonmerch := merchNonmerch - merch

	// Stage 3: sapling-size correction, only for taxa with a sapling model.
	// When absent the running total stays at b_nm.
	sapling := 0.0
	running := merchNonmerch
	if bundle.SaplingPresent {
		saplingFactor := cappedFactor(bundle.Sapling.K, bundle.Sapling.A, bundle.Sapling.B, bundle.Sapling.CapFactor, merchNonmerch)
		running = saplingFactor * merchNonmerch
		sapling = running - merchNonmerch
	}

	// Stage 4: partition the stem wood total into components.
	stemwood, bark, branches, foliage := Proportions(bundle.PropVolume, volume)
	total := running / stemwood

	return domain.BiomassResult{
		Merch:         merch,
		Nonmerch:      nonmerch,
		MerchNonmerch: merchNonmerch,
		Sapling:       sapling,
		Total:         total,
		Bark:          total * bark,
		Branches:      total * branches,
		Foliage:       total * foliage,
	}, nil
}

// cappedFactor evaluates k + a*base^b and caps it at cap. The cap is the
// model's guard against the factor blowing up on small stands; the raw
// value must never leak through.
func cappedFactor(k, a, b, cap, base float64) float64 {
	return math.Min(k+a*math.Pow(base, b), cap)
}

// Proportions evaluates the component-share equations at the given volume.
// The four shares always sum to 1.
func Proportions(p domain.ProportionParams, volume float64) (stemwood, bark, branches, foliage float64) {
	lvol := math.Log(volume + 5)
	pa := math.Exp(p.A1 + p.A2*volume + p.A3*lvol)
	pb := math.Exp(p.B1 + p.B2*volume + p.B3*lvol)
	pc := math.Exp(p.C1 + p.C2*volume + p.C3*lvol)
	pabc := 1 + pa + pb + pc
	return 1 / pabc, pa / pabc, pb / pabc, pc / pabc
}
