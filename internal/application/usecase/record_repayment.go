package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// RecordRepaymentUseCase applies a repayment to a loan.
type RecordRepaymentUseCase struct {
	loans     port.LoanRepository
	publisher port.EventPublisher
	catalog   *i18n.Catalog
}

// NewRecordRepaymentUseCase wires dependencies.
func NewRecordRepaymentUseCase(
	loans port.LoanRepository,
	publisher port.EventPublisher,
	catalog *i18n.Catalog,
) *RecordRepaymentUseCase {
	return &RecordRepaymentUseCase{loans: loans, publisher: publisher, catalog: catalog}
}

// Execute applies the repayment and persists the updated loan.
func (uc *RecordRepaymentUseCase) Execute(ctx context.Context, req dto.RecordRepaymentRequest) (dto.RepaymentResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loans.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.RecordRepayment(req.Amount, now)
	if err != nil {
		return dto.RepaymentResponse{}, validationErr("record repayment", err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		slog.Warn("publish repayment events failed", "loan_id", loan.ID(), "error", err)
	}

	return dto.RepaymentResponse{
		LoanID:             loan.ID(),
		AmountPaid:         req.Amount,
		OutstandingBalance: loan.OutstandingBalance(),
		LoanStatus:         loan.Status().String(),
		Message:            uc.catalog.Pair("loan.repayment.received"),
	}, nil
}
