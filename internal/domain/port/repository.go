package port

import (
	"context"
	"errors"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
)

// ErrNotFound is returned by repositories when the requested aggregate does
// not exist. The REST layer maps it to HTTP 404, the gRPC layer to
// codes.NotFound.
var ErrNotFound = errors.New("not found")

// ErrUpstream marks a failure in an external provider (weather, AI). The
// REST layer maps it to HTTP 502 when the operation cannot degrade.
var ErrUpstream = errors.New("upstream service failure")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SoilReportRepository persists and retrieves soil reports.
type SoilReportRepository interface {
	Save(ctx context.Context, report model.SoilReport) error
	FindByID(ctx context.Context, id string) (model.SoilReport, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.SoilReport, error)
	FindLatestByFarmerID(ctx context.Context, farmerID string) (model.SoilReport, error)
}

// LoanApplicationRepository persists and retrieves loan applications.
type LoanApplicationRepository interface {
	Save(ctx context.Context, app model.LoanApplication) error
	FindByID(ctx context.Context, id string) (model.LoanApplication, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.LoanApplication, error)
}

// LoanRepository persists and retrieves disbursed loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.Loan, error)
	FindActiveWithDueBefore(ctx context.Context, cutoff time.Time) ([]model.Loan, error)
}

// HarvestBatchRepository persists and retrieves harvest batches.
type HarvestBatchRepository interface {
	Save(ctx context.Context, batch model.HarvestBatch) error
	FindByID(ctx context.Context, id string) (model.HarvestBatch, error)
	FindByFarmerID(ctx context.Context, farmerID string) ([]model.HarvestBatch, error)
}

// VendorRepository reads the marketplace vendor directory.
type VendorRepository interface {
	FindByID(ctx context.Context, id string) (model.Vendor, error)
	FindByCrop(ctx context.Context, crop string) ([]model.Vendor, error)
	FindByDistrict(ctx context.Context, district string) ([]model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// WeatherSnapshot is the subset of forecast data the advisory rules read.
type WeatherSnapshot struct {
	District     string
	TempC        float64
	HumidityPct  float64
	RainfallMM   float64
	WindSpeedKmh float64
	FetchedAt    time.Time
}

// WeatherClient fetches current conditions for a district.
type WeatherClient interface {
	CurrentConditions(ctx context.Context, district string) (WeatherSnapshot, error)
}

// CropDiagnosis is a model-generated assessment of a crop problem.
type CropDiagnosis struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
	Treatment  string  `json:"treatment"`
	Preventive string  `json:"preventive"`
}

// CropDoctor diagnoses a crop problem from a farmer's free-text description
// and optional photo.
type CropDoctor interface {
	Diagnose(ctx context.Context, crop, description string, imageJPEG []byte) (CropDiagnosis, error)
}
