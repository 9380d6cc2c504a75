package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// PHCategory – immutable value object
// ---------------------------------------------------------------------------

// PHCategory is the canonical three-band pH classification used by every
// rule in the system: Acidic (<6.5), Neutral (6.5–7.5), Alkaline (>7.5).
//
// A finer seven-band label exists purely for display (see PHStatus.FineLabel);
// it never feeds a rule.
type PHCategory struct {
	value string
}

var (
	PHCategoryAcidic   = PHCategory{value: "ACIDIC"}
	PHCategoryNeutral  = PHCategory{value: "NEUTRAL"}
	PHCategoryAlkaline = PHCategory{value: "ALKALINE"}
)

// NewPHCategory creates a PHCategory from a raw string.
func NewPHCategory(s string) (PHCategory, error) {
	switch s {
	case "ACIDIC":
		return PHCategoryAcidic, nil
	case "NEUTRAL":
		return PHCategoryNeutral, nil
	case "ALKALINE":
		return PHCategoryAlkaline, nil
	default:
		return PHCategory{}, fmt.Errorf("%w: invalid pH category %q", ErrValidation, s)
	}
}

// String returns the string representation of the category.
func (c PHCategory) String() string { return c.value }

// IsZero returns true when the category has not been initialised.
func (c PHCategory) IsZero() bool { return c.value == "" }

// Equal returns true when both categories carry the same value.
func (c PHCategory) Equal(other PHCategory) bool { return c.value == other.value }

// ---------------------------------------------------------------------------
// PHStatus – classification result
// ---------------------------------------------------------------------------

// PHStatus is the classified pH measurement.
type PHStatus struct {
	Category PHCategory
	Value    float64
}

// ClassifyPH maps a pH scalar to its category. Values outside [0,14] are
// rejected; the boundary values 0 and 14 are accepted.
func ClassifyPH(value float64) (PHStatus, error) {
	if value < 0 || value > 14 {
		return PHStatus{}, fmt.Errorf("%w: pH must be within [0,14], got %g", ErrValidation, value)
	}

	category := PHCategoryNeutral
	switch {
	case value < 6.5:
		category = PHCategoryAcidic
	case value > 7.5:
		category = PHCategoryAlkaline
	}

	return PHStatus{Category: category, Value: value}, nil
}

// FineLabel returns the seven-band display label for the measured value.
// Display only: all rules operate on the three-band Category.
func (s PHStatus) FineLabel() string {
	switch {
	case s.Value < 4.5:
		return "Strongly Acidic"
	case s.Value < 5.5:
		return "Moderately Acidic"
	case s.Value < 6.5:
		return "Slightly Acidic"
	case s.Value <= 7.5:
		return "Neutral"
	case s.Value <= 8.5:
		return "Slightly Alkaline"
	case s.Value <= 9.5:
		return "Moderately Alkaline"
	default:
		return "Strongly Alkaline"
	}
}
