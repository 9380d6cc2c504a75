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

// LoanApplicationRepo implements port.LoanApplicationRepository.
type LoanApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewLoanApplicationRepo creates a new PostgreSQL-backed application repository.
func NewLoanApplicationRepo(pool *pgxpool.Pool) *LoanApplicationRepo {
	return &LoanApplicationRepo{pool: pool}
}

const applicationColumns = `
	id, farmer_id, requested_amount, purpose, crop_type, crop_stage,
	land_area_acres, soil_ph, soil_nitrogen, past_loan_count, default_count,
	status, score, max_eligible_amount, interest_rate_pct, duration_months,
	eligible, reason, version, created_at, updated_at
`

// Save upserts an application with optimistic locking on version.
func (r *LoanApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	query := `
		INSERT INTO loan_applications (
			id, farmer_id, requested_amount, purpose, crop_type, crop_stage,
			land_area_acres, soil_ph, soil_nitrogen, past_loan_count, default_count,
			status, score, max_eligible_amount, interest_rate_pct, duration_months,
			eligible, reason, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT (id) DO UPDATE SET
			status              = EXCLUDED.status,
			score               = EXCLUDED.score,
			max_eligible_amount = EXCLUDED.max_eligible_amount,
			interest_rate_pct   = EXCLUDED.interest_rate_pct,
			duration_months     = EXCLUDED.duration_months,
			eligible            = EXCLUDED.eligible,
			reason              = EXCLUDED.reason,
			version             = loan_applications.version + 1,
			updated_at          = EXCLUDED.updated_at
		WHERE loan_applications.version = $19
	`
	d := app.Decision()
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.FarmerID(), app.RequestedAmount(), app.Purpose(), app.CropType(), app.CropStage(),
		app.LandAreaAcres(), app.SoilPH(), app.SoilNitrogen(), app.PastLoanCount(), app.DefaultCount(),
		app.Status().String(), d.Score, d.MaxEligibleAmount, d.InterestRatePct, d.DurationMonths,
		d.Eligible, d.Reason, app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on application")
	}
	return nil
}

// FindByID retrieves an application by ID.
func (r *LoanApplicationRepo) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE id = $1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

// FindByFarmerID lists a farmer's applications, newest first.
func (r *LoanApplicationRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.LoanApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM loan_applications WHERE farmer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var apps []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func scanApplication(s scannable) (model.LoanApplication, error) {
	var (
		id, farmerID                   string
		requestedAmount                decimal.Decimal
		purpose, cropType, cropStage   string
		landArea, soilPH, soilNitrogen *float64
		pastLoanCount, defaultCount    int
		statusStr                      string
		score                          int
		maxEligible                    decimal.Decimal
		ratePct                        float64
		months                         int
		eligible                       bool
		reason                         string
		version                        int
		createdAt, updatedAt           time.Time
	)

	err := s.Scan(
		&id, &farmerID, &requestedAmount, &purpose, &cropType, &cropStage,
		&landArea, &soilPH, &soilNitrogen, &pastLoanCount, &defaultCount,
		&statusStr, &score, &maxEligible, &ratePct, &months,
		&eligible, &reason, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("scan application: %w", mapNoRows(err))
	}

	status, err := valueobject.NewLoanApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse application status: %w", err)
	}

	return model.ReconstructLoanApplication(
		id, farmerID, requestedAmount, purpose, cropType, cropStage,
		landArea, soilPH, soilNitrogen, pastLoanCount, defaultCount,
		status,
		model.EligibilityDecision{
			Score:             score,
			MaxEligibleAmount: maxEligible,
			InterestRatePct:   ratePct,
			DurationMonths:    months,
			Eligible:          eligible,
			Reason:            reason,
		},
		version, createdAt, updatedAt,
	), nil
}
