package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// HarvestBatchRepo implements port.HarvestBatchRepository.
type HarvestBatchRepo struct {
	pool *pgxpool.Pool
}

// NewHarvestBatchRepo creates a new PostgreSQL-backed harvest batch repository.
func NewHarvestBatchRepo(pool *pgxpool.Pool) *HarvestBatchRepo {
	return &HarvestBatchRepo{pool: pool}
}

const harvestBatchColumns = `
	id, farmer_id, crop, quantity_kg, moisture_pct, defect_pct,
	grade, matched_vendor, offer_price_per_kg, created_at, updated_at
`

// Save upserts a batch. A batch is written once ungraded-to-graded and at most
// once more when a vendor match lands, so a plain upsert suffices.
func (r *HarvestBatchRepo) Save(ctx context.Context, batch model.HarvestBatch) error {
	query := `
		INSERT INTO harvest_batches (
			id, farmer_id, crop, quantity_kg, moisture_pct, defect_pct,
			grade, matched_vendor, offer_price_per_kg, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			matched_vendor     = EXCLUDED.matched_vendor,
			offer_price_per_kg = EXCLUDED.offer_price_per_kg,
			updated_at         = EXCLUDED.updated_at
	`
	var matchedVendor *string
	if v := batch.MatchedVendor(); v != "" {
		matchedVendor = &v
	}

	_, err := r.pool.Exec(ctx, query,
		batch.ID(), batch.FarmerID(), batch.Crop(),
		batch.QuantityKg(), batch.MoisturePct(), batch.DefectPct(),
		batch.Grade().String(), matchedVendor, batch.OfferPricePerKg(),
		batch.CreatedAt(), batch.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save harvest batch: %w", err)
	}
	return nil
}

// FindByID retrieves a batch by ID.
func (r *HarvestBatchRepo) FindByID(ctx context.Context, id string) (model.HarvestBatch, error) {
	query := `SELECT ` + harvestBatchColumns + ` FROM harvest_batches WHERE id = $1`
	return scanHarvestBatch(r.pool.QueryRow(ctx, query, id))
}

// FindByFarmerID lists a farmer's batches, newest first.
func (r *HarvestBatchRepo) FindByFarmerID(ctx context.Context, farmerID string) ([]model.HarvestBatch, error) {
	query := `SELECT ` + harvestBatchColumns + ` FROM harvest_batches WHERE farmer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, farmerID)
	if err != nil {
		return nil, fmt.Errorf("query harvest batches: %w", err)
	}
	defer rows.Close()

	var batches []model.HarvestBatch
	for rows.Next() {
		batch, err := scanHarvestBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

func scanHarvestBatch(s scannable) (model.HarvestBatch, error) {
	var (
		id, farmerID, crop     string
		quantityKg             decimal.Decimal
		moisturePct, defectPct float64
		gradeStr               string
		matchedVendor          *string
		offerPricePerKg        decimal.Decimal
		createdAt, updatedAt   time.Time
	)

	err := s.Scan(
		&id, &farmerID, &crop, &quantityKg, &moisturePct, &defectPct,
		&gradeStr, &matchedVendor, &offerPricePerKg, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.HarvestBatch{}, fmt.Errorf("scan harvest batch: %w", mapNoRows(err))
	}

	grade, err := valueobject.NewHarvestGrade(gradeStr)
	if err != nil {
		return model.HarvestBatch{}, fmt.Errorf("parse harvest grade: %w", err)
	}

	var vendor string
	if matchedVendor != nil {
		vendor = *matchedVendor
	}

	return model.ReconstructHarvestBatch(
		id, farmerID, crop, quantityKg, moisturePct, defectPct,
		grade, vendor, offerPricePerKg, createdAt, updatedAt,
	), nil
}
