package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// DisburseLoanUseCase activates an approved application as a live loan with
// its repayment schedule.
type DisburseLoanUseCase struct {
	apps      port.LoanApplicationRepository
	loans     port.LoanRepository
	publisher port.EventPublisher
}

// NewDisburseLoanUseCase wires dependencies.
func NewDisburseLoanUseCase(
	apps port.LoanApplicationRepository,
	loans port.LoanRepository,
	publisher port.EventPublisher,
) *DisburseLoanUseCase {
	return &DisburseLoanUseCase{apps: apps, loans: loans, publisher: publisher}
}

// Execute disburses the approved application. The principal is the requested
// amount capped at the decision's eligible ceiling; rate and term come from
// the decision.
func (uc *DisburseLoanUseCase) Execute(ctx context.Context, applicationID string) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	app, err := uc.apps.FindByID(ctx, applicationID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find application: %w", err)
	}
	if !app.Status().Equal(valueobject.LoanApplicationStatusApproved) {
		return dto.LoanResponse{}, fmt.Errorf("%w: application %s is %s, not approved",
			valueobject.ErrValidation, applicationID, app.Status())
	}

	principal := decimal.Min(app.RequestedAmount(), app.Decision().MaxEligibleAmount)

	loan, err := model.NewLoan(
		app.FarmerID(), app.ID(),
		principal, app.Decision().InterestRatePct, app.Decision().DurationMonths,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, validationErr("create loan", err)
	}

	app, err = app.MarkDisbursed(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("mark disbursed: %w", err)
	}

	if err := uc.loans.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	if err := uc.apps.Save(ctx, app); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		slog.Warn("publish loan events failed", "loan_id", loan.ID(), "error", err)
	}

	return toLoanResponse(loan, true), nil
}
