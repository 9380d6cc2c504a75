package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// NutrientKind – immutable value object
// ---------------------------------------------------------------------------

// NutrientKind identifies one of the three primary soil macronutrients.
type NutrientKind struct {
	value string
}

const (
	nutrientNitrogen   = "N"
	nutrientPhosphorus = "P"
	nutrientPotassium  = "K"
)

var (
	NutrientNitrogen   = NutrientKind{value: nutrientNitrogen}
	NutrientPhosphorus = NutrientKind{value: nutrientPhosphorus}
	NutrientPotassium  = NutrientKind{value: nutrientPotassium}
)

var validNutrientKinds = map[string]NutrientKind{
	nutrientNitrogen:   NutrientNitrogen,
	nutrientPhosphorus: NutrientPhosphorus,
	nutrientPotassium:  NutrientPotassium,
}

// NewNutrientKind creates a NutrientKind from a raw string ("N", "P" or "K").
func NewNutrientKind(s string) (NutrientKind, error) {
	v, ok := validNutrientKinds[s]
	if !ok {
		return NutrientKind{}, fmt.Errorf("%w: invalid nutrient kind %q", ErrValidation, s)
	}
	return v, nil
}

// String returns the string representation of the kind.
func (k NutrientKind) String() string { return k.value }

// IsZero returns true when the kind has not been initialised.
func (k NutrientKind) IsZero() bool { return k.value == "" }

// Equal returns true when both kinds carry the same value.
func (k NutrientKind) Equal(other NutrientKind) bool { return k.value == other.value }

// ---------------------------------------------------------------------------
// NutrientLevel – ordered band
// ---------------------------------------------------------------------------

// NutrientLevel is the classified band of a nutrient measurement.
// Levels are ordered: Low < Medium < Optimal.
type NutrientLevel struct {
	value string
	rank  int
}

var (
	NutrientLevelLow     = NutrientLevel{value: "LOW", rank: 0}
	NutrientLevelMedium  = NutrientLevel{value: "MEDIUM", rank: 1}
	NutrientLevelOptimal = NutrientLevel{value: "OPTIMAL", rank: 2}
)

// NewNutrientLevel creates a NutrientLevel from a raw string.
func NewNutrientLevel(s string) (NutrientLevel, error) {
	switch s {
	case "LOW":
		return NutrientLevelLow, nil
	case "MEDIUM":
		return NutrientLevelMedium, nil
	case "OPTIMAL":
		return NutrientLevelOptimal, nil
	default:
		return NutrientLevel{}, fmt.Errorf("%w: invalid nutrient level %q", ErrValidation, s)
	}
}

// String returns the string representation of the level.
func (l NutrientLevel) String() string { return l.value }

// IsZero returns true when the level has not been initialised.
func (l NutrientLevel) IsZero() bool { return l.value == "" }

// Equal returns true when both levels carry the same value.
func (l NutrientLevel) Equal(other NutrientLevel) bool { return l.value == other.value }

// AtLeast reports whether l meets or exceeds the given minimum band.
func (l NutrientLevel) AtLeast(minimum NutrientLevel) bool { return l.rank >= minimum.rank }

// ---------------------------------------------------------------------------
// NutrientStatus – classification result
// ---------------------------------------------------------------------------

// NutrientStatus is the classified band of a single measurement together with
// the measured value and the ideal range for that nutrient.
type NutrientStatus struct {
	Kind     NutrientKind
	Level    NutrientLevel
	Value    float64
	IdealMin float64
	IdealMax float64
}

// Per-nutrient band thresholds in kg/ha. Values below the lower bound are
// LOW, values above the upper bound are OPTIMAL, everything in between
// (inclusive) is MEDIUM.
var nutrientThresholds = map[NutrientKind]struct{ low, high float64 }{
	NutrientNitrogen:   {low: 280, high: 560},
	NutrientPhosphorus: {low: 10, high: 25},
	NutrientPotassium:  {low: 110, high: 280},
}

// ClassifyNutrient maps a soil measurement (kg/ha) to its band.
// Negative values and unknown kinds are rejected.
func ClassifyNutrient(kind NutrientKind, value float64) (NutrientStatus, error) {
	t, ok := nutrientThresholds[kind]
	if !ok {
		return NutrientStatus{}, fmt.Errorf("%w: unknown nutrient kind", ErrValidation)
	}
	if value < 0 {
		return NutrientStatus{}, fmt.Errorf("%w: %s value must be non-negative, got %g", ErrValidation, kind, value)
	}

	level := NutrientLevelMedium
	switch {
	case value < t.low:
		level = NutrientLevelLow
	case value > t.high:
		level = NutrientLevelOptimal
	}

	return NutrientStatus{
		Kind:     kind,
		Level:    level,
		Value:    value,
		IdealMin: t.low,
		IdealMax: t.high,
	}, nil
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

// ErrValidation marks malformed or out-of-range caller input. The REST layer
// maps it to HTTP 400, the gRPC layer to codes.InvalidArgument.
var ErrValidation = errors.New("validation failed")
