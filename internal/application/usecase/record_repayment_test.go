package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func activeLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		testutil.TestFarmerID1.String(), "app-1",
		decimal.NewFromInt(24000), 0, 12, testutil.TestClock,
	)
	require.NoError(t, err)
	return loan
}

func TestRecordRepaymentUseCase_Execute(t *testing.T) {
	loan := activeLoan(t)
	loans := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) {
			return loan, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewRecordRepaymentUseCase(loans, publisher, i18n.MustLoad())

	resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	assert.True(t, resp.OutstandingBalance.Equal(decimal.NewFromInt(22000)))
	assert.Equal(t, "ACTIVE", resp.LoanStatus)
	assert.NotEmpty(t, resp.Message.EN)

	require.Len(t, loans.savedLoans, 1)
	// One disbursed event from construction plus the repayment.
	require.Len(t, publisher.publishedEvents, 2)
	assert.Equal(t, "krishi.loan.repayment_received", publisher.publishedEvents[1].EventType())
}

func TestRecordRepaymentUseCase_Execute_FullPayoff(t *testing.T) {
	loan := activeLoan(t)
	loans := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) {
			return loan, nil
		},
	}
	uc := usecase.NewRecordRepaymentUseCase(loans, &mockEventPublisher{}, i18n.MustLoad())

	resp, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(24000),
	})
	require.NoError(t, err)
	assert.Equal(t, "PAID_OFF", resp.LoanStatus)
	assert.True(t, resp.OutstandingBalance.IsZero())
}

func TestRecordRepaymentUseCase_Execute_Overpayment(t *testing.T) {
	loan := activeLoan(t)
	loans := &mockLoanRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.Loan, error) {
			return loan, nil
		},
	}
	uc := usecase.NewRecordRepaymentUseCase(loans, &mockEventPublisher{}, i18n.MustLoad())

	_, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
		LoanID: loan.ID(),
		Amount: decimal.NewFromInt(30000),
	})
	require.Error(t, err)
	assert.Empty(t, loans.savedLoans)
}

func TestRecordRepaymentUseCase_Execute_LoanNotFound(t *testing.T) {
	uc := usecase.NewRecordRepaymentUseCase(&mockLoanRepository{}, &mockEventPublisher{}, i18n.MustLoad())

	_, err := uc.Execute(context.Background(), dto.RecordRepaymentRequest{
		LoanID: "missing",
		Amount: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, port.ErrNotFound)
}
