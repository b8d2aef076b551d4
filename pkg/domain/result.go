package domain

import "math"

// BiomassResult holds the above-ground biomass components of a single
// conversion. All fields are tonnes of dry biomass per hectare. Results are
// pure values recomputed on every call; nothing is cached or shared.
type BiomassResult struct {
	// Merch is the biomass of merchantable-size stem wood (b_m).
	Merch float64 `json:"b_m"`
	// Nonmerch is the additional stem wood contributed by
	// nonmerchantable-size trees (b_n).
	Nonmerch float64 `json:"b_n"`
	// MerchNonmerch is the merchantable plus nonmerchantable stem wood
	// running total (b_nm).
	MerchNonmerch float64 `json:"b_nm"`
	// Sapling is the additional stem wood contributed by sapling-size trees
	// (b_s); zero when the taxon has no sapling model.
	Sapling float64 `json:"b_s"`
	// Total is the whole above-ground biomass across all components (b_total).
	Total float64 `json:"b_total"`

	Bark     float64 `json:"b_bark"`
	Branches float64 `json:"b_branches"`
	Foliage  float64 `json:"b_foliage"`
}

// ValidateVolume checks that a merchantable volume lies in the model's
// domain: finite and non-negative. Zero is permitted and yields degenerate
// zero outputs.
func ValidateVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return InvalidInputError{Field: "volume", Value: volume, Reason: "must be finite"}
	}
	if volume < 0 {
		return InvalidInputError{Field: "volume", Value: volume, Reason: "must be non-negative"}
	}
	return nil
}
