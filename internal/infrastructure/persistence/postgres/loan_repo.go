package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

const loanColumns = `
	id, farmer_id, application_id,
	principal, interest_rate_pct, term_months,
	status, outstanding_balance, next_payment_due,
	version, created_at, updated_at
`

// Save persists a loan and, on first insert, its repayment schedule.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	loanQuery := `
		INSERT INTO loans (
			id, farmer_id, application_id,
			principal, interest_rate_pct, term_months,
			status, outstanding_balance, next_payment_due,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			status              = EXCLUDED.status,
			outstanding_balance = EXCLUDED.outstanding_balance,
			next_payment_due    = EXCLUDED.next_payment_due,
			version             = loans.version + 1,
			updated_at          = EXCLUDED.updated_at
		WHERE loans.version = $10
	`
	var nextDue *time.Time
	if !loan.NextPaymentDue().IsZero() {
		d := loan.NextPaymentDue()
		nextDue = &d
	}

	tag, err := tx.Exec(ctx, loanQuery,
		loan.ID(), loan.FarmerID(), loan.ApplicationID(),
		loan.Principal(), loan.InterestRatePct(), loan.TermMonths(),
		loan.Status().String(), loan.OutstandingBalance(), nextDue,
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan")
	}

	// The schedule is immutable after disbursement.
	if loan.Version() == 1 {
		entryQuery := `
			INSERT INTO repayment_entries (loan_id, period, due_date, emi, principal, interest, remaining_balance)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (loan_id, period) DO NOTHING
		`
		for _, entry := range loan.Schedule() {
			if _, err := tx.Exec(ctx, entryQuery,
				loan.ID(), entry.Period, entry.DueDate,
				entry.EMI, entry.Principal, entry.Interest, entry.RemainingBalance,
			); err != nil {
				return fmt.Errorf("save repayment entry %d: %w", entry.Period, err)
			}
		}
	}

	return tx.Commit(ctx)
}

// FindByID retrieves a loan and its repayment schedule by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Loan{}, err
	}
	return r.withSchedule(ctx, loan)
}

// FindByFarmerID lists a farmer's loans with schedules, newest first.
func (r *LoanRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE farmer_id = $1 ORDER BY created_at DESC`
	return r.queryLoans(ctx, query, farmerID)
}

// FindActiveWithDueBefore lists active loans whose next installment is due
// before the cutoff. Used by the overdue sweep.
func (r *LoanRepo) FindActiveWithDueBefore(ctx context.Context, cutoff time.Time) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = 'ACTIVE' AND next_payment_due < $1 ORDER BY next_payment_due`
	return r.queryLoans(ctx, query, cutoff)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *LoanRepo) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loan, err = r.withSchedule(ctx, loan)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func (r *LoanRepo) withSchedule(ctx context.Context, loan model.Loan) (model.Loan, error) {
	schedule, err := r.loadSchedule(ctx, loan.ID())
	if err != nil {
		return model.Loan{}, err
	}
	return model.ReconstructLoan(
		loan.ID(), loan.FarmerID(), loan.ApplicationID(),
		loan.Principal(), loan.InterestRatePct(), loan.TermMonths(),
		loan.Status(), schedule, loan.OutstandingBalance(), loan.NextPaymentDue(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	), nil
}

func scanLoan(s scannable) (model.Loan, error) {
	var (
		id, farmerID, applicationID string
		principal                   decimal.Decimal
		ratePct                     float64
		termMonths                  int
		statusStr                   string
		outstandingBalance          decimal.Decimal
		nextPaymentDue              *time.Time
		version                     int
		createdAt, updatedAt        time.Time
	)

	err := s.Scan(
		&id, &farmerID, &applicationID,
		&principal, &ratePct, &termMonths,
		&statusStr, &outstandingBalance, &nextPaymentDue,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", mapNoRows(err))
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	var due time.Time
	if nextPaymentDue != nil {
		due = *nextPaymentDue
	}

	return model.ReconstructLoan(
		id, farmerID, applicationID,
		principal, ratePct, termMonths,
		status, nil, outstandingBalance, due,
		version, createdAt, updatedAt,
	), nil
}

func (r *LoanRepo) loadSchedule(ctx context.Context, loanID string) ([]model.RepaymentEntry, error) {
	query := `
		SELECT period, due_date, emi, principal, interest, remaining_balance
		FROM repayment_entries
		WHERE loan_id = $1
		ORDER BY period
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query repayment entries: %w", err)
	}
	defer rows.Close()

	var schedule []model.RepaymentEntry
	for rows.Next() {
		var e model.RepaymentEntry
		if err := rows.Scan(&e.Period, &e.DueDate, &e.EMI, &e.Principal, &e.Interest, &e.RemainingBalance); err != nil {
			return nil, fmt.Errorf("scan repayment entry: %w", err)
		}
		schedule = append(schedule, e)
	}
	return schedule, rows.Err()
}
