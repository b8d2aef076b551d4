// Package domain defines the taxon keys, parameter-table row types, and
// typed errors shared by the volume-to-biomass resolver and calculator.
package domain

import "strings"

// TaxonKey identifies a tree taxon as genus, species, and optional variety.
type TaxonKey struct {
	Genus   string
	Species string
	// Variety is empty when the key names no variety. An empty Variety
	// matches only variety-null parameter rows.
	Variety string
}

// ParseTaxonKey decomposes a dotted identifier of the form
// GENUS.SPECIES[.VARIETY] into a TaxonKey. Keys with fewer than two
// segments, more than three, or any empty segment fail with
// TaxonFormatError.
func ParseTaxonKey(key string) (TaxonKey, error) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return TaxonKey{}, TaxonFormatError{Key: key}
	}
	for _, part := range parts {
		if part == "" {
			return TaxonKey{}, TaxonFormatError{Key: key}
		}
	}
	taxon := TaxonKey{Genus: parts[0], Species: parts[1]}
	if len(parts) == 3 {
		taxon.Variety = parts[2]
	}
	return taxon, nil
}

// HasVariety reports whether the key names a variety.
func (t TaxonKey) HasVariety() bool {
	return t.Variety != ""
}

// String renders the key back to its dotted form.
func (t TaxonKey) String() string {
	if t.Variety == "" {
		return t.Genus + "." + t.Species
	}
	return t.Genus + "." + t.Species + "." + t.Variety
}
