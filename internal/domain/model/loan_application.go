package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanApplication aggregate root
// ---------------------------------------------------------------------------

// EligibilityDecision is the outcome recorded against an application after
// the eligibility engine has run.
type EligibilityDecision struct {
	Score             int
	MaxEligibleAmount decimal.Decimal
	InterestRatePct   float64
	DurationMonths    int
	Eligible          bool
	Reason            string
}

// LoanApplication is an immutable aggregate. Every mutation returns a new copy.
type LoanApplication struct {
	id              string
	farmerID        string
	requestedAmount decimal.Decimal
	purpose         string
	cropType        string
	cropStage       string
	landAreaAcres   *float64
	soilPH          *float64
	soilNitrogen    *float64
	pastLoanCount   int
	defaultCount    int
	status          valueobject.LoanApplicationStatus
	decision        EligibilityDecision
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoanApplication creates a brand-new application in SUBMITTED status.
// Optional fields (land area, soil readings) are nil when the farmer's
// profile does not carry them; the eligibility engine applies its defaults.
func NewLoanApplication(
	farmerID string,
	requestedAmount decimal.Decimal,
	purpose, cropType, cropStage string,
	landAreaAcres, soilPH, soilNitrogen *float64,
	pastLoanCount, defaultCount int,
	now time.Time,
) (LoanApplication, error) {
	if farmerID == "" {
		return LoanApplication{}, errors.New("farmer ID is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, errors.New("requested amount must be positive")
	}
	if pastLoanCount < 0 || defaultCount < 0 {
		return LoanApplication{}, errors.New("loan history counts must be non-negative")
	}

	id := uuid.New().String()
	app := LoanApplication{
		id:              id,
		farmerID:        farmerID,
		requestedAmount: requestedAmount,
		purpose:         purpose,
		cropType:        cropType,
		cropStage:       cropStage,
		landAreaAcres:   landAreaAcres,
		soilPH:          soilPH,
		soilNitrogen:    soilNitrogen,
		pastLoanCount:   pastLoanCount,
		defaultCount:    defaultCount,
		status:          valueobject.LoanApplicationStatusSubmitted,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	app.domainEvents = append(app.domainEvents, event.NewLoanApplicationSubmitted(
		id, farmerID, requestedAmount, purpose,
	))
	return app, nil
}

// ReconstructLoanApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructLoanApplication(
	id, farmerID string,
	requestedAmount decimal.Decimal,
	purpose, cropType, cropStage string,
	landAreaAcres, soilPH, soilNitrogen *float64,
	pastLoanCount, defaultCount int,
	status valueobject.LoanApplicationStatus,
	decision EligibilityDecision,
	version int,
	createdAt, updatedAt time.Time,
) LoanApplication {
	return LoanApplication{
		id:              id,
		farmerID:        farmerID,
		requestedAmount: requestedAmount,
		purpose:         purpose,
		cropType:        cropType,
		cropStage:       cropStage,
		landAreaAcres:   landAreaAcres,
		soilPH:          soilPH,
		soilNitrogen:    soilNitrogen,
		pastLoanCount:   pastLoanCount,
		defaultCount:    defaultCount,
		status:          status,
		decision:        decision,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Approve transitions SUBMITTED -> APPROVED with the recorded decision.
func (a LoanApplication) Approve(decision EligibilityDecision, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusSubmitted) {
		return a, errors.New("only submitted applications can be approved")
	}

	next := a
	next.status = valueobject.LoanApplicationStatusApproved
	next.decision = decision
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApplicationApproved(
		a.id, a.farmerID, decision.Score, decision.MaxEligibleAmount,
		decision.InterestRatePct, decision.DurationMonths,
	))
	return next, nil
}

// Reject transitions SUBMITTED -> REJECTED with the recorded decision.
func (a LoanApplication) Reject(decision EligibilityDecision, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusSubmitted) {
		return a, errors.New("only submitted applications can be rejected")
	}

	next := a
	next.status = valueobject.LoanApplicationStatusRejected
	next.decision = decision
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApplicationRejected(
		a.id, a.farmerID, decision.Score, decision.Reason,
	))
	return next, nil
}

// MarkDisbursed transitions APPROVED -> DISBURSED once the loan is created.
func (a LoanApplication) MarkDisbursed(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusApproved) {
		return a, errors.New("only approved applications can be disbursed")
	}

	next := a
	next.status = valueobject.LoanApplicationStatusDisbursed
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                                { return a.id }
func (a LoanApplication) FarmerID() string                          { return a.farmerID }
func (a LoanApplication) RequestedAmount() decimal.Decimal          { return a.requestedAmount }
func (a LoanApplication) Purpose() string                           { return a.purpose }
func (a LoanApplication) CropType() string                          { return a.cropType }
func (a LoanApplication) CropStage() string                         { return a.cropStage }
func (a LoanApplication) LandAreaAcres() *float64                   { return a.landAreaAcres }
func (a LoanApplication) SoilPH() *float64                          { return a.soilPH }
func (a LoanApplication) SoilNitrogen() *float64                    { return a.soilNitrogen }
func (a LoanApplication) PastLoanCount() int                        { return a.pastLoanCount }
func (a LoanApplication) DefaultCount() int                         { return a.defaultCount }
func (a LoanApplication) Status() valueobject.LoanApplicationStatus { return a.status }
func (a LoanApplication) Decision() EligibilityDecision             { return a.decision }
func (a LoanApplication) Version() int                              { return a.version }
func (a LoanApplication) CreatedAt() time.Time                      { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                      { return a.updatedAt }

// DomainEvents returns the events recorded by this aggregate instance.
func (a LoanApplication) DomainEvents() []event.DomainEvent { return a.domainEvents }

func copyEvents(in []event.DomainEvent) []event.DomainEvent {
	out := make([]event.DomainEvent, len(in))
	copy(out, in)
	return out
}
