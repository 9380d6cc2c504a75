package event

import (
	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Soil events
// ---------------------------------------------------------------------------

// SoilReportCreated is raised when a soil analysis completes.
type SoilReportCreated struct {
	events.BaseEvent
	FarmerID       string `json:"farmer_id"`
	PHCategory     string `json:"ph_category"`
	NitrogenLevel  string `json:"nitrogen_level"`
	PhosphorusLvl  string `json:"phosphorus_level"`
	PotassiumLevel string `json:"potassium_level"`
}

func NewSoilReportCreated(reportID, farmerID, phCategory, nLevel, pLevel, kLevel string) SoilReportCreated {
	return SoilReportCreated{
		BaseEvent:      events.NewBaseEvent("krishi.soil_report.created", reportID, "SoilReport"),
		FarmerID:       farmerID,
		PHCategory:     phCategory,
		NitrogenLevel:  nLevel,
		PhosphorusLvl:  pLevel,
		PotassiumLevel: kLevel,
	}
}

// ---------------------------------------------------------------------------
// Loan application events
// ---------------------------------------------------------------------------

// LoanApplicationSubmitted is raised when a new application enters the system.
type LoanApplicationSubmitted struct {
	events.BaseEvent
	FarmerID        string          `json:"farmer_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Purpose         string          `json:"purpose"`
}

func NewLoanApplicationSubmitted(applicationID, farmerID string, amount decimal.Decimal, purpose string) LoanApplicationSubmitted {
	return LoanApplicationSubmitted{
		BaseEvent:       events.NewBaseEvent("krishi.loan_application.submitted", applicationID, "LoanApplication"),
		FarmerID:        farmerID,
		RequestedAmount: amount,
		Purpose:         purpose,
	}
}

// LoanApplicationApproved is raised when an application passes eligibility.
type LoanApplicationApproved struct {
	events.BaseEvent
	FarmerID          string          `json:"farmer_id"`
	Score             int             `json:"score"`
	MaxEligibleAmount decimal.Decimal `json:"max_eligible_amount"`
	InterestRatePct   float64         `json:"interest_rate_pct"`
	DurationMonths    int             `json:"duration_months"`
}

func NewLoanApplicationApproved(applicationID, farmerID string, score int, maxAmount decimal.Decimal, ratePct float64, months int) LoanApplicationApproved {
	return LoanApplicationApproved{
		BaseEvent:         events.NewBaseEvent("krishi.loan_application.approved", applicationID, "LoanApplication"),
		FarmerID:          farmerID,
		Score:             score,
		MaxEligibleAmount: maxAmount,
		InterestRatePct:   ratePct,
		DurationMonths:    months,
	}
}

// LoanApplicationRejected is raised when an application fails eligibility.
type LoanApplicationRejected struct {
	events.BaseEvent
	FarmerID string `json:"farmer_id"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
}

func NewLoanApplicationRejected(applicationID, farmerID string, score int, reason string) LoanApplicationRejected {
	return LoanApplicationRejected{
		BaseEvent: events.NewBaseEvent("krishi.loan_application.rejected", applicationID, "LoanApplication"),
		FarmerID:  farmerID,
		Score:     score,
		Reason:    reason,
	}
}

// ---------------------------------------------------------------------------
// Loan events
// ---------------------------------------------------------------------------

// LoanDisbursed is raised when an approved microloan is activated with its
// repayment schedule.
type LoanDisbursed struct {
	events.BaseEvent
	FarmerID        string          `json:"farmer_id"`
	ApplicationID   string          `json:"application_id"`
	Principal       decimal.Decimal `json:"principal"`
	InterestRatePct float64         `json:"interest_rate_pct"`
	TermMonths      int             `json:"term_months"`
}

func NewLoanDisbursed(loanID, farmerID, applicationID string, principal decimal.Decimal, ratePct float64, termMonths int) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:       events.NewBaseEvent("krishi.loan.disbursed", loanID, "Loan"),
		FarmerID:        farmerID,
		ApplicationID:   applicationID,
		Principal:       principal,
		InterestRatePct: ratePct,
		TermMonths:      termMonths,
	}
}

// RepaymentReceived is raised when a repayment is applied to a loan.
type RepaymentReceived struct {
	events.BaseEvent
	FarmerID           string          `json:"farmer_id"`
	Amount             decimal.Decimal `json:"amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewRepaymentReceived(loanID, farmerID string, amount, outstanding decimal.Decimal) RepaymentReceived {
	return RepaymentReceived{
		BaseEvent:          events.NewBaseEvent("krishi.loan.repayment_received", loanID, "Loan"),
		FarmerID:           farmerID,
		Amount:             amount,
		OutstandingBalance: outstanding,
	}
}

// ---------------------------------------------------------------------------
// Smart sale events
// ---------------------------------------------------------------------------

// HarvestMatched is raised when a graded harvest batch is routed to a buyer.
type HarvestMatched struct {
	events.BaseEvent
	FarmerID   string          `json:"farmer_id"`
	VendorID   string          `json:"vendor_id"`
	Crop       string          `json:"crop"`
	Grade      string          `json:"grade"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	OfferPrice decimal.Decimal `json:"offer_price"`
}

func NewHarvestMatched(batchID, farmerID, vendorID, crop, grade string, quantityKg, offerPrice decimal.Decimal) HarvestMatched {
	return HarvestMatched{
		BaseEvent:  events.NewBaseEvent("krishi.harvest.matched", batchID, "HarvestBatch"),
		FarmerID:   farmerID,
		VendorID:   vendorID,
		Crop:       crop,
		Grade:      grade,
		QuantityKg: quantityKg,
		OfferPrice: offerPrice,
	}
}
