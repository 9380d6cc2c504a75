package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// VendorRepo implements port.VendorRepository. The directory is maintained by
// back-office tooling, so this repository is read-only.
type VendorRepo struct {
	pool *pgxpool.Pool
}

// NewVendorRepo creates a new PostgreSQL-backed vendor directory.
func NewVendorRepo(pool *pgxpool.Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

const vendorColumns = `
	id, name, district, crops, min_grade, capacity_kg, price_per_kg, phone, created_at
`

// FindByID retrieves a vendor by ID.
func (r *VendorRepo) FindByID(ctx context.Context, id string) (model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	return scanVendor(r.pool.QueryRow(ctx, query, id))
}

// FindByCrop lists vendors that buy the given crop, best price first.
func (r *VendorRepo) FindByCrop(ctx context.Context, crop string) ([]model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE $1 = ANY(crops) ORDER BY price_per_kg DESC`
	return r.queryVendors(ctx, query, crop)
}

// FindByDistrict lists vendors registered in a district.
func (r *VendorRepo) FindByDistrict(ctx context.Context, district string) ([]model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE district = $1 ORDER BY name`
	return r.queryVendors(ctx, query, district)
}

// List returns the full directory.
func (r *VendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`
	return r.queryVendors(ctx, query)
}

func (r *VendorRepo) queryVendors(ctx context.Context, query string, args ...any) ([]model.Vendor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []model.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, rows.Err()
}

func scanVendor(s scannable) (model.Vendor, error) {
	var (
		v           model.Vendor
		minGradeStr string
	)

	err := s.Scan(
		&v.ID, &v.Name, &v.District, &v.Crops, &minGradeStr,
		&v.CapacityKg, &v.PricePerKg, &v.Phone, &v.CreatedAt,
	)
	if err != nil {
		return model.Vendor{}, fmt.Errorf("scan vendor: %w", mapNoRows(err))
	}

	minGrade, err := valueobject.NewHarvestGrade(minGradeStr)
	if err != nil {
		return model.Vendor{}, fmt.Errorf("parse vendor min grade: %w", err)
	}
	v.MinGrade = minGrade
	return v, nil
}
