package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// EligibilityEngine – rule-based microloan decisioning
// ---------------------------------------------------------------------------

// EligibilityInput carries the fields the scoring model reads. Optional
// fields are nil when the farmer's profile does not supply them; the engine
// applies its documented defaults.
type EligibilityInput struct {
	CropStage       string
	SoilPH          *float64
	SoilNitrogen    *float64
	LandAreaAcres   *float64
	RequestedAmount decimal.Decimal
	PastLoanCount   int
	DefaultCount    int
}

// Factor is one component of the scoring model, reported back to the caller
// so the farmer can see why a decision was made.
type Factor struct {
	Name  string
	Value float64
}

// EligibilityResult holds the outcome of the scoring model.
type EligibilityResult struct {
	Score             int
	MaxEligibleAmount decimal.Decimal
	InterestRatePct   float64
	DurationMonths    int
	Factors           []Factor
	Eligible          bool
	Reason            string
}

// EligibilityEngine encapsulates the four-factor microloan scoring rules.
type EligibilityEngine struct{}

// NewEligibilityEngine returns a new engine instance.
func NewEligibilityEngine() *EligibilityEngine {
	return &EligibilityEngine{}
}

// cropStageFactors maps a growth stage to its contribution. Flowering-stage
// crops carry the least production risk in this model; seedlings the most.
var cropStageFactors = map[string]float64{
	"seedling":   0.5,
	"vegetative": 0.7,
	"flowering":  1.0,
	"maturity":   0.9,
	"harvest":    0.8,
}

// Score runs the scoring model:
//
//	score       = round(25 * (stage + soil + category + credit))
//	maxEligible = round(50000 * stage * soil * category * credit)
//
// Each factor lies in roughly [0, 1.2] so each contributes up to ~30 points.
func (e *EligibilityEngine) Score(in EligibilityInput) EligibilityResult {
	stage := e.cropStageFactor(in.CropStage)
	soil := e.soilHealthFactor(in.SoilPH, in.SoilNitrogen)
	category := e.farmerCategoryFactor(in.LandAreaAcres)
	credit := e.creditHistoryFactor(in.PastLoanCount, in.DefaultCount)

	// Factor sums like 4.1 have no exact binary representation, so the
	// arithmetic runs in decimal to keep half-point scores rounding up.
	score := int(decimal.NewFromFloat(stage).
		Add(decimal.NewFromFloat(soil)).
		Add(decimal.NewFromFloat(category)).
		Add(decimal.NewFromFloat(credit)).
		Mul(decimal.NewFromInt(25)).
		Round(0).IntPart())
	maxAmount := decimal.NewFromInt(50000).
		Mul(decimal.NewFromFloat(stage)).
		Mul(decimal.NewFromFloat(soil)).
		Mul(decimal.NewFromFloat(category)).
		Mul(decimal.NewFromFloat(credit)).
		Round(0)

	rate := interestRateFor(score)
	months := durationFor(score)

	halfRequested := in.RequestedAmount.Div(decimal.NewFromInt(2))
	eligible := score >= 30 && maxAmount.GreaterThanOrEqual(halfRequested)

	reason := "eligible for microloan"
	switch {
	case score < 30:
		reason = "score below minimum threshold"
	case !eligible:
		reason = "requested amount too high for eligible ceiling"
	}

	return EligibilityResult{
		Score:             score,
		MaxEligibleAmount: maxAmount,
		InterestRatePct:   rate,
		DurationMonths:    months,
		Factors: []Factor{
			{Name: "crop_stage", Value: stage},
			{Name: "soil_health", Value: soil},
			{Name: "farmer_category", Value: category},
			{Name: "credit_history", Value: credit},
		},
		Eligible: eligible,
		Reason:   reason,
	}
}

// cropStageFactor looks up the growth-stage factor, defaulting to the
// vegetative value when the stage is unspecified or unknown.
func (e *EligibilityEngine) cropStageFactor(stage string) float64 {
	if f, ok := cropStageFactors[strings.ToLower(strings.TrimSpace(stage))]; ok {
		return f
	}
	return cropStageFactors["vegetative"]
}

// soilHealthFactor starts at the 0.7 baseline. A supplied pH overrides the
// baseline with its fitness value; a supplied nitrogen reading is then
// averaged with the running value. The averaging is sequential, not a single
// weighted formula; the order matters for reproducing scores.
func (e *EligibilityEngine) soilHealthFactor(ph, nitrogen *float64) float64 {
	score := 0.7
	if ph != nil {
		score = phFitness(*ph)
	}
	if nitrogen != nil {
		score = (score + nitrogenFitness(*nitrogen)) / 2
	}
	return score
}

// phFitness bands pH suitability for Kerala field crops.
func phFitness(ph float64) float64 {
	switch {
	case ph >= 6.0 && ph <= 7.5:
		return 1.0
	case (ph >= 5.5 && ph < 6.0) || (ph > 7.5 && ph <= 8.0):
		return 0.7
	default:
		return 0.4
	}
}

// nitrogenFitness bands the nitrogen reading by the standard kg/ha thresholds.
func nitrogenFitness(n float64) float64 {
	switch {
	case n > 560:
		return 1.0
	case n >= 280:
		return 0.7
	default:
		return 0.4
	}
}

// farmerCategoryFactor bands land holding: marginal (≤2 acres), small
// (≤5 acres), larger (>5 acres). Unknown holdings count as small.
func (e *EligibilityEngine) farmerCategoryFactor(landAreaAcres *float64) float64 {
	if landAreaAcres == nil {
		return 1.0
	}
	switch {
	case *landAreaAcres <= 2:
		return 0.8
	case *landAreaAcres <= 5:
		return 1.0
	default:
		return 1.2
	}
}

// creditHistoryFactor penalises past defaults and mildly rewards a repaid
// loan history.
func (e *EligibilityEngine) creditHistoryFactor(loanCount, defaultCount int) float64 {
	if defaultCount > 0 {
		return math.Max(0.3, 1-0.2*float64(defaultCount))
	}
	if loanCount > 0 {
		return math.Min(1.2, 1+0.05*float64(loanCount))
	}
	return 1.0
}

// interestRateFor steps the annual rate down as the score improves.
func interestRateFor(score int) float64 {
	switch {
	case score >= 80:
		return 6.5
	case score >= 60:
		return 7.5
	case score >= 40:
		return 8.5
	default:
		return 9.5
	}
}

// durationFor steps the term up as the score improves.
func durationFor(score int) int {
	switch {
	case score >= 70:
		return 12
	case score >= 50:
		return 9
	default:
		return 6
	}
}

// DescribeFactors renders the factor breakdown for logs and messages.
func DescribeFactors(factors []Factor) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		parts = append(parts, fmt.Sprintf("%s=%.2f", f.Name, f.Value))
	}
	return strings.Join(parts, " ")
}
