package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanApplicationStatus represents the lifecycle stage of a microloan
// application.
type LoanApplicationStatus struct {
	value string
}

const (
	loanAppStatusSubmitted = "SUBMITTED"
	loanAppStatusApproved  = "APPROVED"
	loanAppStatusRejected  = "REJECTED"
	loanAppStatusDisbursed = "DISBURSED"
)

var (
	LoanApplicationStatusSubmitted = LoanApplicationStatus{value: loanAppStatusSubmitted}
	LoanApplicationStatusApproved  = LoanApplicationStatus{value: loanAppStatusApproved}
	LoanApplicationStatusRejected  = LoanApplicationStatus{value: loanAppStatusRejected}
	LoanApplicationStatusDisbursed = LoanApplicationStatus{value: loanAppStatusDisbursed}
)

var validLoanApplicationStatuses = map[string]LoanApplicationStatus{
	loanAppStatusSubmitted: LoanApplicationStatusSubmitted,
	loanAppStatusApproved:  LoanApplicationStatusApproved,
	loanAppStatusRejected:  LoanApplicationStatusRejected,
	loanAppStatusDisbursed: LoanApplicationStatusDisbursed,
}

// NewLoanApplicationStatus creates a LoanApplicationStatus from a raw string.
func NewLoanApplicationStatus(s string) (LoanApplicationStatus, error) {
	v, ok := validLoanApplicationStatuses[s]
	if !ok {
		return LoanApplicationStatus{}, fmt.Errorf("invalid loan application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanApplicationStatus) Equal(other LoanApplicationStatus) bool {
	return s.value == other.value
}

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a disbursed microloan.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive  = "ACTIVE"
	loanStatusPaidOff = "PAID_OFF"
	loanStatusOverdue = "OVERDUE"
)

var (
	LoanStatusActive  = LoanStatus{value: loanStatusActive}
	LoanStatusPaidOff = LoanStatus{value: loanStatusPaidOff}
	LoanStatusOverdue = LoanStatus{value: loanStatusOverdue}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:  LoanStatusActive,
	loanStatusPaidOff: LoanStatusPaidOff,
	loanStatusOverdue: LoanStatusOverdue,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }
