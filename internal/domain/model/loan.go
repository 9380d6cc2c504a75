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
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is a disbursed microloan with its repayment schedule. Immutable;
// mutations return a new copy.
type Loan struct {
	id                 string
	farmerID           string
	applicationID      string
	principal          decimal.Decimal
	interestRatePct    float64
	termMonths         int
	status             valueobject.LoanStatus
	schedule           []RepaymentEntry
	outstandingBalance decimal.Decimal
	nextPaymentDue     time.Time
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// NewLoan creates a loan from an approved application and generates its
// repayment schedule. The loan starts in ACTIVE status.
func NewLoan(
	farmerID, applicationID string,
	principal decimal.Decimal,
	interestRatePct float64,
	termMonths int,
	now time.Time,
) (Loan, error) {
	if farmerID == "" {
		return Loan{}, errors.New("farmer ID is required")
	}
	if applicationID == "" {
		return Loan{}, errors.New("application ID is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, errors.New("principal must be positive")
	}
	if termMonths <= 0 {
		return Loan{}, errors.New("term months must be positive")
	}
	if interestRatePct < 0 {
		return Loan{}, errors.New("interest rate must be non-negative")
	}

	id := uuid.New().String()
	sched := GenerateRepaymentSchedule(principal, interestRatePct, termMonths, now)

	var nextDue time.Time
	if len(sched) > 0 {
		nextDue = sched[0].DueDate
	}

	loan := Loan{
		id:                 id,
		farmerID:           farmerID,
		applicationID:      applicationID,
		principal:          principal,
		interestRatePct:    interestRatePct,
		termMonths:         termMonths,
		status:             valueobject.LoanStatusActive,
		schedule:           sched,
		outstandingBalance: principal,
		nextPaymentDue:     nextDue,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanDisbursed(
		id, farmerID, applicationID, principal, interestRatePct, termMonths,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, farmerID, applicationID string,
	principal decimal.Decimal,
	interestRatePct float64,
	termMonths int,
	status valueobject.LoanStatus,
	schedule []RepaymentEntry,
	outstandingBalance decimal.Decimal,
	nextPaymentDue time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                 id,
		farmerID:           farmerID,
		applicationID:      applicationID,
		principal:          principal,
		interestRatePct:    interestRatePct,
		termMonths:         termMonths,
		status:             status,
		schedule:           schedule,
		outstandingBalance: outstandingBalance,
		nextPaymentDue:     nextPaymentDue,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// RecordRepayment reduces the outstanding balance and advances the next due
// date. Fully repaying the balance transitions the loan to PAID_OFF.
func (l Loan) RecordRepayment(amount decimal.Decimal, now time.Time) (Loan, error) {
	if l.status.Equal(valueobject.LoanStatusPaidOff) {
		return l, errors.New("loan is already paid off")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return l, errors.New("repayment amount must be positive")
	}
	if amount.GreaterThan(l.outstandingBalance) {
		return l, errors.New("repayment exceeds outstanding balance")
	}

	next := l
	next.outstandingBalance = l.outstandingBalance.Sub(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRepaymentReceived(
		l.id, l.farmerID, amount, next.outstandingBalance,
	))

	if next.outstandingBalance.IsZero() {
		next.status = valueobject.LoanStatusPaidOff
		next.nextPaymentDue = time.Time{}
		return next, nil
	}

	// Advance the due pointer past any installment already covered.
	for _, entry := range next.schedule {
		if entry.DueDate.After(now) {
			next.nextPaymentDue = entry.DueDate
			break
		}
	}
	if next.status.Equal(valueobject.LoanStatusOverdue) {
		next.status = valueobject.LoanStatusActive
	}

	return next, nil
}

// MarkOverdue transitions ACTIVE -> OVERDUE when a due date has passed
// without full repayment.
func (l Loan) MarkOverdue(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, errors.New("only active loans can become overdue")
	}
	if l.nextPaymentDue.IsZero() || now.Before(l.nextPaymentDue) {
		return l, errors.New("loan has no overdue installment")
	}

	next := l
	next.status = valueobject.LoanStatusOverdue
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                           { return l.id }
func (l Loan) FarmerID() string                     { return l.farmerID }
func (l Loan) ApplicationID() string                { return l.applicationID }
func (l Loan) Principal() decimal.Decimal           { return l.principal }
func (l Loan) InterestRatePct() float64             { return l.interestRatePct }
func (l Loan) TermMonths() int                      { return l.termMonths }
func (l Loan) Status() valueobject.LoanStatus       { return l.status }
func (l Loan) Schedule() []RepaymentEntry           { return l.schedule }
func (l Loan) OutstandingBalance() decimal.Decimal  { return l.outstandingBalance }
func (l Loan) NextPaymentDue() time.Time            { return l.nextPaymentDue }
func (l Loan) Version() int                         { return l.version }
func (l Loan) CreatedAt() time.Time                 { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                 { return l.updatedAt }

// DomainEvents returns the events recorded by this aggregate instance.
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents }
