package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SoilReport aggregate root
// ---------------------------------------------------------------------------

// SoilReport is an immutable aggregate holding one classified soil test.
// The derived outputs (recommendations, suitable crops) are recomputed from
// the stored statuses on demand; only the measurements and their bands are
// persisted.
type SoilReport struct {
	id           string
	farmerID     string
	farmID       string
	nitrogen     valueobject.NutrientStatus
	phosphorus   valueobject.NutrientStatus
	potassium    valueobject.NutrientStatus
	ph           valueobject.PHStatus
	version      int
	createdAt    time.Time
	domainEvents []event.DomainEvent
}

// NewSoilReport classifies the raw measurements and creates the report.
// Measurement validation (negative NPK, pH outside [0,14]) surfaces as
// valueobject.ErrValidation.
func NewSoilReport(
	farmerID, farmID string,
	nitrogenKgHa, phosphorusKgHa, potassiumKgHa, ph float64,
	now time.Time,
) (SoilReport, error) {
	if farmerID == "" {
		return SoilReport{}, errors.New("farmer ID is required")
	}

	n, err := valueobject.ClassifyNutrient(valueobject.NutrientNitrogen, nitrogenKgHa)
	if err != nil {
		return SoilReport{}, err
	}
	p, err := valueobject.ClassifyNutrient(valueobject.NutrientPhosphorus, phosphorusKgHa)
	if err != nil {
		return SoilReport{}, err
	}
	k, err := valueobject.ClassifyNutrient(valueobject.NutrientPotassium, potassiumKgHa)
	if err != nil {
		return SoilReport{}, err
	}
	phStatus, err := valueobject.ClassifyPH(ph)
	if err != nil {
		return SoilReport{}, err
	}

	id := uuid.New().String()
	report := SoilReport{
		id:         id,
		farmerID:   farmerID,
		farmID:     farmID,
		nitrogen:   n,
		phosphorus: p,
		potassium:  k,
		ph:         phStatus,
		version:    1,
		createdAt:  now,
	}

	report.domainEvents = append(report.domainEvents, event.NewSoilReportCreated(
		id, farmerID,
		phStatus.Category.String(),
		n.Level.String(), p.Level.String(), k.Level.String(),
	))

	return report, nil
}

// ReconstructSoilReport rebuilds the aggregate from persistence without
// side-effects.
func ReconstructSoilReport(
	id, farmerID, farmID string,
	nitrogen, phosphorus, potassium valueobject.NutrientStatus,
	ph valueobject.PHStatus,
	version int,
	createdAt time.Time,
) SoilReport {
	return SoilReport{
		id:         id,
		farmerID:   farmerID,
		farmID:     farmID,
		nitrogen:   nitrogen,
		phosphorus: phosphorus,
		potassium:  potassium,
		ph:         ph,
		version:    version,
		createdAt:  createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r SoilReport) ID() string                               { return r.id }
func (r SoilReport) FarmerID() string                         { return r.farmerID }
func (r SoilReport) FarmID() string                           { return r.farmID }
func (r SoilReport) Nitrogen() valueobject.NutrientStatus     { return r.nitrogen }
func (r SoilReport) Phosphorus() valueobject.NutrientStatus   { return r.phosphorus }
func (r SoilReport) Potassium() valueobject.NutrientStatus    { return r.potassium }
func (r SoilReport) PH() valueobject.PHStatus                 { return r.ph }
func (r SoilReport) Version() int                             { return r.version }
func (r SoilReport) CreatedAt() time.Time                     { return r.createdAt }

// DomainEvents returns the events recorded by this aggregate instance.
func (r SoilReport) DomainEvents() []event.DomainEvent { return r.domainEvents }
