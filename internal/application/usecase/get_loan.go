package usecase

import (
	"context"
	"fmt"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// GetLoanUseCase retrieves loans and their repayment schedules.
type GetLoanUseCase struct {
	loans port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loans port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loans: loans}
}

// Execute fetches one loan with its full schedule.
func (uc *GetLoanUseCase) Execute(ctx context.Context, loanID string) (dto.LoanResponse, error) {
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan, true), nil
}

// Schedule returns just the repayment plan for a loan.
func (uc *GetLoanUseCase) Schedule(ctx context.Context, loanID string) ([]dto.RepaymentEntryResponse, error) {
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return toScheduleResponses(loan.Schedule()), nil
}

// ByFarmer lists a farmer's loans without schedules.
func (uc *GetLoanUseCase) ByFarmer(ctx context.Context, farmerID string) ([]dto.LoanResponse, error) {
	loans, err := uc.loans.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l, false))
	}
	return out, nil
}
