package domain

import "fmt"

// TaxonFormatError reports a taxon key that does not decompose into
// GENUS.SPECIES[.VARIETY].
type TaxonFormatError struct {
	Key string
}

func (e TaxonFormatError) Error() string {
	return fmt.Sprintf("taxon key %q must have the form GENUS.SPECIES[.VARIETY]", e.Key)
}

// InvalidInputError reports a numeric input outside the model's domain.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

// ParameterSelectionError reports that a required parameter table did not
// yield exactly one row for a lookup tuple. The dataset is static, so the
// same tuple can never succeed on retry; callers must treat it as fatal.
type ParameterSelectionError struct {
	Table   TableID
	Key     Key
	Matches int
}

func (e ParameterSelectionError) Error() string {
	return fmt.Sprintf("parameter table %s: %d rows match %s, want exactly 1", e.Table, e.Matches, e.Key)
}
