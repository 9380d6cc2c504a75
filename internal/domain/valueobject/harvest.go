package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// HarvestGrade – ordered value object
// ---------------------------------------------------------------------------

// HarvestGrade is the quality grade assigned to a harvest batch.
// Grades are ordered: C < B < A.
type HarvestGrade struct {
	value string
	rank  int
}

var (
	HarvestGradeA = HarvestGrade{value: "A", rank: 2}
	HarvestGradeB = HarvestGrade{value: "B", rank: 1}
	HarvestGradeC = HarvestGrade{value: "C", rank: 0}
)

// NewHarvestGrade creates a HarvestGrade from a raw string.
func NewHarvestGrade(s string) (HarvestGrade, error) {
	switch s {
	case "A":
		return HarvestGradeA, nil
	case "B":
		return HarvestGradeB, nil
	case "C":
		return HarvestGradeC, nil
	default:
		return HarvestGrade{}, fmt.Errorf("%w: invalid harvest grade %q", ErrValidation, s)
	}
}

// String returns the string representation of the grade.
func (g HarvestGrade) String() string { return g.value }

// IsZero returns true when the grade has not been initialised.
func (g HarvestGrade) IsZero() bool { return g.value == "" }

// Equal returns true when both grades carry the same value.
func (g HarvestGrade) Equal(other HarvestGrade) bool { return g.value == other.value }

// AtLeast reports whether g meets or exceeds the given minimum grade.
func (g HarvestGrade) AtLeast(minimum HarvestGrade) bool { return g.rank >= minimum.rank }

// ---------------------------------------------------------------------------
// Priority – ordered value object for recommendations
// ---------------------------------------------------------------------------

// Priority orders remediation recommendations: High before Medium before Low.
type Priority struct {
	value string
	rank  int
}

var (
	PriorityHigh   = Priority{value: "high", rank: 0}
	PriorityMedium = Priority{value: "medium", rank: 1}
	PriorityLow    = Priority{value: "low", rank: 2}
)

// String returns the string representation of the priority.
func (p Priority) String() string { return p.value }

// Rank returns the sort rank; lower sorts first.
func (p Priority) Rank() int { return p.rank }
