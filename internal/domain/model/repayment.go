package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RepaymentEntry is an immutable value object representing one installment in
// a repayment schedule.
type RepaymentEntry struct {
	DueDate          time.Time
	EMI              decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// CalculateEMI computes the fixed monthly installment in whole rupees.
//
// The calculation uses the standard amortization formula with
// monthlyRate = annualRatePct / 12 / 100:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// When the rate is zero the principal is split evenly across the term.
func CalculateEMI(principal decimal.Decimal, annualRatePct float64, months int) decimal.Decimal {
	if months <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	if annualRatePct == 0 {
		return principal.Div(decimal.NewFromInt(int64(months))).Round(0)
	}

	monthlyRate := annualRatePct / 12.0 / 100.0
	factor := math.Pow(1+monthlyRate, float64(months))
	emi := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(emi).Round(0)
}

// GenerateRepaymentSchedule computes the month-by-month installment plan.
//
// Each entry's interest is the remaining balance times the monthly rate,
// rounded to whole rupees; the principal portion is the EMI minus that
// interest; the balance is decremented and floored at zero. Rounding is
// applied per entry rather than carried as a fractional remainder, so the
// final balance may be off by a few rupees. Due dates fall on the same day
// of each successive month after startDate.
func GenerateRepaymentSchedule(
	principal decimal.Decimal,
	annualRatePct float64,
	months int,
	startDate time.Time,
) []RepaymentEntry {
	if months <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	emi := CalculateEMI(principal, annualRatePct, months)
	monthlyRate := decimal.NewFromFloat(annualRatePct / 12.0 / 100.0)

	schedule := make([]RepaymentEntry, 0, months)
	balance := principal

	for period := 1; period <= months; period++ {
		interest := balance.Mul(monthlyRate).Round(0)
		principalPart := emi.Sub(interest)

		balance = balance.Sub(principalPart)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}

		schedule = append(schedule, RepaymentEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0),
			EMI:              emi,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return schedule
}
