package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// HarvestBatch is a graded lot of produce offered for sale. Immutable;
// mutations return a new copy.
type HarvestBatch struct {
	id              string
	farmerID        string
	crop            string
	quantityKg      decimal.Decimal
	moisturePct     float64
	defectPct       float64
	grade           valueobject.HarvestGrade
	matchedVendor   string
	offerPricePerKg decimal.Decimal
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// NewHarvestBatch creates an ungraded batch after validating measurements.
func NewHarvestBatch(
	farmerID, crop string,
	quantityKg decimal.Decimal,
	moisturePct, defectPct float64,
	grade valueobject.HarvestGrade,
	now time.Time,
) (HarvestBatch, error) {
	if farmerID == "" {
		return HarvestBatch{}, errors.New("farmer ID is required")
	}
	if crop == "" {
		return HarvestBatch{}, errors.New("crop is required")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return HarvestBatch{}, errors.New("quantity must be positive")
	}
	if moisturePct < 0 || moisturePct > 100 || defectPct < 0 || defectPct > 100 {
		return HarvestBatch{}, errors.New("percentages must be within [0,100]")
	}
	if grade.IsZero() {
		return HarvestBatch{}, errors.New("grade is required")
	}

	return HarvestBatch{
		id:          uuid.New().String(),
		farmerID:    farmerID,
		crop:        crop,
		quantityKg:  quantityKg,
		moisturePct: moisturePct,
		defectPct:   defectPct,
		grade:       grade,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructHarvestBatch rebuilds a batch from persistence without raising events.
func ReconstructHarvestBatch(
	id, farmerID, crop string,
	quantityKg decimal.Decimal,
	moisturePct, defectPct float64,
	grade valueobject.HarvestGrade,
	matchedVendor string,
	offerPricePerKg decimal.Decimal,
	createdAt, updatedAt time.Time,
) HarvestBatch {
	return HarvestBatch{
		id:              id,
		farmerID:        farmerID,
		crop:            crop,
		quantityKg:      quantityKg,
		moisturePct:     moisturePct,
		defectPct:       defectPct,
		grade:           grade,
		matchedVendor:   matchedVendor,
		offerPricePerKg: offerPricePerKg,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Match routes the batch to the winning vendor at the offered price.
func (b HarvestBatch) Match(vendorID string, pricePerKg decimal.Decimal, now time.Time) (HarvestBatch, error) {
	if vendorID == "" {
		return b, errors.New("vendor ID is required")
	}
	if b.matchedVendor != "" {
		return b, errors.New("batch is already matched")
	}

	next := b
	next.matchedVendor = vendorID
	next.offerPricePerKg = pricePerKg
	next.updatedAt = now
	next.domainEvents = copyEvents(b.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewHarvestMatched(
		b.id, b.farmerID, vendorID, b.crop, b.grade.String(), b.quantityKg, pricePerKg,
	))
	return next, nil
}

func (b HarvestBatch) ID() string                        { return b.id }
func (b HarvestBatch) FarmerID() string                  { return b.farmerID }
func (b HarvestBatch) Crop() string                      { return b.crop }
func (b HarvestBatch) QuantityKg() decimal.Decimal       { return b.quantityKg }
func (b HarvestBatch) MoisturePct() float64              { return b.moisturePct }
func (b HarvestBatch) DefectPct() float64                { return b.defectPct }
func (b HarvestBatch) Grade() valueobject.HarvestGrade   { return b.grade }
func (b HarvestBatch) MatchedVendor() string             { return b.matchedVendor }
func (b HarvestBatch) OfferPricePerKg() decimal.Decimal  { return b.offerPricePerKg }
func (b HarvestBatch) CreatedAt() time.Time              { return b.createdAt }
func (b HarvestBatch) UpdatedAt() time.Time              { return b.updatedAt }

// DomainEvents returns the events recorded by this aggregate instance.
func (b HarvestBatch) DomainEvents() []event.DomainEvent { return b.domainEvents }
