package usecase_test

import (
	"context"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// --- Mock implementations ---

type mockSoilReportRepository struct {
	saveFunc     func(ctx context.Context, report model.SoilReport) error
	findByIDFunc func(ctx context.Context, id string) (model.SoilReport, error)
	savedReports []model.SoilReport
}

func (m *mockSoilReportRepository) Save(ctx context.Context, report model.SoilReport) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, report)
	}
	m.savedReports = append(m.savedReports, report)
	return nil
}

func (m *mockSoilReportRepository) FindByID(ctx context.Context, id string) (model.SoilReport, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.SoilReport{}, port.ErrNotFound
}

func (m *mockSoilReportRepository) FindByFarmerID(_ context.Context, _ string) ([]model.SoilReport, error) {
	return m.savedReports, nil
}

func (m *mockSoilReportRepository) FindLatestByFarmerID(_ context.Context, _ string) (model.SoilReport, error) {
	if len(m.savedReports) == 0 {
		return model.SoilReport{}, port.ErrNotFound
	}
	return m.savedReports[len(m.savedReports)-1], nil
}

type mockLoanApplicationRepository struct {
	saveFunc     func(ctx context.Context, app model.LoanApplication) error
	findByIDFunc func(ctx context.Context, id string) (model.LoanApplication, error)
	savedApps    []model.LoanApplication
}

func (m *mockLoanApplicationRepository) Save(ctx context.Context, app model.LoanApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockLoanApplicationRepository) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.LoanApplication{}, port.ErrNotFound
}

func (m *mockLoanApplicationRepository) FindByFarmerID(_ context.Context, _ string) ([]model.LoanApplication, error) {
	return m.savedApps, nil
}

type mockLoanRepository struct {
	saveFunc     func(ctx context.Context, loan model.Loan) error
	findByIDFunc func(ctx context.Context, id string) (model.Loan, error)
	dueFunc      func(ctx context.Context, cutoff time.Time) ([]model.Loan, error)
	savedLoans   []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, port.ErrNotFound
}

func (m *mockLoanRepository) FindByFarmerID(_ context.Context, _ string) ([]model.Loan, error) {
	return m.savedLoans, nil
}

func (m *mockLoanRepository) FindActiveWithDueBefore(ctx context.Context, cutoff time.Time) ([]model.Loan, error) {
	if m.dueFunc != nil {
		return m.dueFunc(ctx, cutoff)
	}
	return nil, nil
}

type mockHarvestBatchRepository struct {
	saveFunc     func(ctx context.Context, batch model.HarvestBatch) error
	savedBatches []model.HarvestBatch
}

func (m *mockHarvestBatchRepository) Save(ctx context.Context, batch model.HarvestBatch) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, batch)
	}
	m.savedBatches = append(m.savedBatches, batch)
	return nil
}

func (m *mockHarvestBatchRepository) FindByID(_ context.Context, _ string) (model.HarvestBatch, error) {
	return model.HarvestBatch{}, port.ErrNotFound
}

func (m *mockHarvestBatchRepository) FindByFarmerID(_ context.Context, _ string) ([]model.HarvestBatch, error) {
	return m.savedBatches, nil
}

type mockVendorRepository struct {
	vendors []model.Vendor
}

func (m *mockVendorRepository) FindByID(_ context.Context, id string) (model.Vendor, error) {
	for _, v := range m.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vendor{}, port.ErrNotFound
}

func (m *mockVendorRepository) FindByCrop(_ context.Context, crop string) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range m.vendors {
		if v.Buys(crop) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVendorRepository) FindByDistrict(_ context.Context, district string) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range m.vendors {
		if v.District == district {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockVendorRepository) List(_ context.Context) ([]model.Vendor, error) {
	return m.vendors, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockWeatherClient struct {
	conditionsFunc func(ctx context.Context, district string) (port.WeatherSnapshot, error)
}

func (m *mockWeatherClient) CurrentConditions(ctx context.Context, district string) (port.WeatherSnapshot, error) {
	if m.conditionsFunc != nil {
		return m.conditionsFunc(ctx, district)
	}
	return port.WeatherSnapshot{District: district, TempC: 29, HumidityPct: 65}, nil
}

type mockCropDoctor struct {
	diagnoseFunc func(ctx context.Context, crop, description string, imageJPEG []byte) (port.CropDiagnosis, error)
}

func (m *mockCropDoctor) Diagnose(ctx context.Context, crop, description string, imageJPEG []byte) (port.CropDiagnosis, error) {
	if m.diagnoseFunc != nil {
		return m.diagnoseFunc(ctx, crop, description, imageJPEG)
	}
	return port.CropDiagnosis{Disease: "unknown", Confidence: 0.1}, nil
}
