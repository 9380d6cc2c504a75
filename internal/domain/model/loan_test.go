package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func newTestLoan(t *testing.T) Loan {
	t.Helper()
	loan, err := NewLoan(
		testutil.TestFarmerID1.String(), "app-1",
		decimal.NewFromInt(24000), 0, 12, testutil.TestClock,
	)
	require.NoError(t, err)
	return loan
}

func TestNewLoan(t *testing.T) {
	loan := newTestLoan(t)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, valueobject.LoanStatusActive, loan.Status())
	assert.True(t, loan.OutstandingBalance().Equal(decimal.NewFromInt(24000)))
	assert.Len(t, loan.Schedule(), 12)
	assert.Equal(t, loan.Schedule()[0].DueDate, loan.NextPaymentDue())

	require.Len(t, loan.DomainEvents(), 1)
	disbursed, ok := loan.DomainEvents()[0].(event.LoanDisbursed)
	require.True(t, ok)
	assert.Equal(t, loan.ID(), disbursed.AggregateID())
}

func TestNewLoan_Validation(t *testing.T) {
	_, err := NewLoan("", "app-1", decimal.NewFromInt(24000), 8, 12, testutil.TestClock)
	assert.Error(t, err)

	_, err = NewLoan(testutil.TestFarmerID1.String(), "app-1", decimal.Zero, 8, 12, testutil.TestClock)
	assert.Error(t, err)

	_, err = NewLoan(testutil.TestFarmerID1.String(), "app-1", decimal.NewFromInt(24000), -1, 12, testutil.TestClock)
	assert.Error(t, err)

	_, err = NewLoan(testutil.TestFarmerID1.String(), "app-1", decimal.NewFromInt(24000), 8, 0, testutil.TestClock)
	assert.Error(t, err)
}

func TestLoan_RecordRepayment(t *testing.T) {
	t.Run("reduces the balance and emits an event", func(t *testing.T) {
		loan := newTestLoan(t)

		paid, err := loan.RecordRepayment(decimal.NewFromInt(2000), testutil.TestClock.AddDate(0, 1, 1))
		require.NoError(t, err)

		assert.True(t, paid.OutstandingBalance().Equal(decimal.NewFromInt(22000)))
		assert.Equal(t, valueobject.LoanStatusActive, paid.Status())
		// The original copy is untouched.
		assert.True(t, loan.OutstandingBalance().Equal(decimal.NewFromInt(24000)))

		require.Len(t, paid.DomainEvents(), 2)
		_, ok := paid.DomainEvents()[1].(event.RepaymentReceived)
		assert.True(t, ok)
	})

	t.Run("full repayment transitions to paid off", func(t *testing.T) {
		loan := newTestLoan(t)

		paid, err := loan.RecordRepayment(decimal.NewFromInt(24000), testutil.TestClock)
		require.NoError(t, err)
		assert.Equal(t, valueobject.LoanStatusPaidOff, paid.Status())
		assert.True(t, paid.NextPaymentDue().IsZero())

		_, err = paid.RecordRepayment(decimal.NewFromInt(1), testutil.TestClock)
		assert.Error(t, err)
	})

	t.Run("repayment recovers an overdue loan", func(t *testing.T) {
		loan := newTestLoan(t)
		overdue, err := loan.MarkOverdue(loan.NextPaymentDue().AddDate(0, 0, 3))
		require.NoError(t, err)
		require.Equal(t, valueobject.LoanStatusOverdue, overdue.Status())

		recovered, err := overdue.RecordRepayment(decimal.NewFromInt(2000), loan.NextPaymentDue().AddDate(0, 0, 4))
		require.NoError(t, err)
		assert.Equal(t, valueobject.LoanStatusActive, recovered.Status())
	})

	t.Run("rejects bad amounts", func(t *testing.T) {
		loan := newTestLoan(t)

		_, err := loan.RecordRepayment(decimal.Zero, testutil.TestClock)
		assert.Error(t, err)

		_, err = loan.RecordRepayment(decimal.NewFromInt(25000), testutil.TestClock)
		assert.ErrorContains(t, err, "exceeds outstanding balance")
	})
}

func TestLoan_MarkOverdue(t *testing.T) {
	loan := newTestLoan(t)

	t.Run("requires a past due date", func(t *testing.T) {
		_, err := loan.MarkOverdue(testutil.TestClock)
		assert.Error(t, err)
	})

	t.Run("transitions after the due date", func(t *testing.T) {
		overdue, err := loan.MarkOverdue(loan.NextPaymentDue().AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, valueobject.LoanStatusOverdue, overdue.Status())

		_, err = overdue.MarkOverdue(loan.NextPaymentDue().AddDate(0, 0, 2))
		assert.Error(t, err, "already overdue")
	})
}
