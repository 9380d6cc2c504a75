package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// FlagOverdueLoansUseCase is the periodic sweep that marks loans with a
// missed installment as overdue. Run by the alert daemon, not by a request
// path.
type FlagOverdueLoansUseCase struct {
	loans port.LoanRepository
}

// NewFlagOverdueLoansUseCase wires dependencies.
func NewFlagOverdueLoansUseCase(loans port.LoanRepository) *FlagOverdueLoansUseCase {
	return &FlagOverdueLoansUseCase{loans: loans}
}

// Execute flags every active loan whose next due date lies before now.
// Individual failures are logged and skipped so one bad row cannot stall
// the sweep. Returns the number of loans flagged.
func (uc *FlagOverdueLoansUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.loans.FindActiveWithDueBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find due loans: %w", err)
	}

	flagged := 0
	for _, loan := range due {
		overdue, err := loan.MarkOverdue(now)
		if err != nil {
			slog.Warn("skip overdue transition", "loan_id", loan.ID(), "error", err)
			continue
		}
		if err := uc.loans.Save(ctx, overdue); err != nil {
			slog.Error("save overdue loan failed", "loan_id", loan.ID(), "error", err)
			continue
		}
		flagged++
	}
	return flagged, nil
}
