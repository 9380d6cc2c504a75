package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// SoilReportRepo implements port.SoilReportRepository.
type SoilReportRepo struct {
	pool *pgxpool.Pool
}

// NewSoilReportRepo creates a new PostgreSQL-backed soil report repository.
func NewSoilReportRepo(pool *pgxpool.Pool) *SoilReportRepo {
	return &SoilReportRepo{pool: pool}
}

const soilReportColumns = `
	id, farmer_id, farm_id,
	nitrogen_value, nitrogen_level,
	phosphorus_value, phosphorus_level,
	potassium_value, potassium_level,
	ph_value, ph_category,
	version, created_at
`

// Save persists a soil report. Reports are append-only: an existing row is
// never rewritten, only the optimistic-lock guard keeps replays out.
func (r *SoilReportRepo) Save(ctx context.Context, report model.SoilReport) error {
	query := `
		INSERT INTO soil_reports (
			id, farmer_id, farm_id,
			nitrogen_value, nitrogen_level,
			phosphorus_value, phosphorus_level,
			potassium_value, potassium_level,
			ph_value, ph_category,
			version, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query,
		report.ID(), report.FarmerID(), report.FarmID(),
		report.Nitrogen().Value, report.Nitrogen().Level.String(),
		report.Phosphorus().Value, report.Phosphorus().Level.String(),
		report.Potassium().Value, report.Potassium().Level.String(),
		report.PH().Value, report.PH().Category.String(),
		report.Version(), report.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save soil report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("soil report already exists")
	}
	return nil
}

// FindByID retrieves a soil report by ID.
func (r *SoilReportRepo) FindByID(ctx context.Context, id string) (model.SoilReport, error) {
	query := `SELECT ` + soilReportColumns + ` FROM soil_reports WHERE id = $1`
	return scanSoilReport(r.pool.QueryRow(ctx, query, id))
}

// FindByFarmerID lists a farmer's reports, newest first.
func (r *SoilReportRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.SoilReport, error) {
	query := `SELECT ` + soilReportColumns + ` FROM soil_reports WHERE farmer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("query soil reports: %w", err)
	}
	defer rows.Close()

	var reports []model.SoilReport
	for rows.Next() {
		report, err := scanSoilReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// FindLatestByFarmerID returns the farmer's most recent report.
func (r *SoilReportRepo) FindLatestByFarmerID(ctx context.Context, farmerID string) (model.SoilReport, error) {
	query := `SELECT ` + soilReportColumns + ` FROM soil_reports WHERE farmer_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanSoilReport(r.pool.QueryRow(ctx, query, farmerID))
}

func scanSoilReport(s scannable) (model.SoilReport, error) {
	var (
		id, farmerID, farmID               string
		nValue, pValue, kValue, phValue    float64
		nLevel, pLevel, kLevel, phCategory string
		version                            int
		createdAt                          time.Time
	)

	err := s.Scan(
		&id, &farmerID, &farmID,
		&nValue, &nLevel,
		&pValue, &pLevel,
		&kValue, &kLevel,
		&phValue, &phCategory,
		&version, &createdAt,
	)
	if err != nil {
		return model.SoilReport{}, fmt.Errorf("scan soil report: %w", mapNoRows(err))
	}

	// Re-classify from the stored raw values; the persisted level columns
	// exist for SQL-side filtering, the aggregate is the source of truth.
	nitrogen, err := valueobject.ClassifyNutrient(valueobject.NutrientNitrogen, nValue)
	if err != nil {
		return model.SoilReport{}, fmt.Errorf("classify stored nitrogen: %w", err)
	}
	phosphorus, err := valueobject.ClassifyNutrient(valueobject.NutrientPhosphorus, pValue)
	if err != nil {
		return model.SoilReport{}, fmt.Errorf("classify stored phosphorus: %w", err)
	}
	potassium, err := valueobject.ClassifyNutrient(valueobject.NutrientPotassium, kValue)
	if err != nil {
		return model.SoilReport{}, fmt.Errorf("classify stored potassium: %w", err)
	}
	ph, err := valueobject.ClassifyPH(phValue)
	if err != nil {
		return model.SoilReport{}, fmt.Errorf("classify stored pH: %w", err)
	}

	return model.ReconstructSoilReport(
		id, farmerID, farmID,
		nitrogen, phosphorus, potassium, ph,
		version, createdAt,
	), nil
}
