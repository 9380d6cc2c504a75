package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

var farmer1 = testutil.TestFarmerID1.String()

// ---------------------------------------------------------------------------
// in-memory fakes
// ---------------------------------------------------------------------------

type memSoilRepo struct{ reports map[string]model.SoilReport }

func (m *memSoilRepo) Save(_ context.Context, r model.SoilReport) error {
	m.reports[r.ID()] = r
	return nil
}

func (m *memSoilRepo) FindByID(_ context.Context, id string) (model.SoilReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return model.SoilReport{}, port.ErrNotFound
	}
	return r, nil
}

func (m *memSoilRepo) FindByFarmerID(_ context.Context, farmerID string) ([]model.SoilReport, error) {
	var out []model.SoilReport
	for _, r := range m.reports {
		if r.FarmerID() == farmerID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out, nil
}

func (m *memSoilRepo) FindLatestByFarmerID(ctx context.Context, farmerID string) (model.SoilReport, error) {
	all, _ := m.FindByFarmerID(ctx, farmerID)
	if len(all) == 0 {
		return model.SoilReport{}, port.ErrNotFound
	}
	return all[0], nil
}

type memAppRepo struct{ apps map[string]model.LoanApplication }

func (m *memAppRepo) Save(_ context.Context, a model.LoanApplication) error {
	m.apps[a.ID()] = a
	return nil
}

func (m *memAppRepo) FindByID(_ context.Context, id string) (model.LoanApplication, error) {
	a, ok := m.apps[id]
	if !ok {
		return model.LoanApplication{}, port.ErrNotFound
	}
	return a, nil
}

func (m *memAppRepo) FindByFarmerID(_ context.Context, farmerID string) ([]model.LoanApplication, error) {
	var out []model.LoanApplication
	for _, a := range m.apps {
		if a.FarmerID() == farmerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memLoanRepo struct{ loans map[string]model.Loan }

func (m *memLoanRepo) Save(_ context.Context, l model.Loan) error {
	m.loans[l.ID()] = l
	return nil
}

func (m *memLoanRepo) FindByID(_ context.Context, id string) (model.Loan, error) {
	l, ok := m.loans[id]
	if !ok {
		return model.Loan{}, port.ErrNotFound
	}
	return l, nil
}

func (m *memLoanRepo) FindByFarmerID(_ context.Context, farmerID string) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range m.loans {
		if l.FarmerID() == farmerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLoanRepo) FindActiveWithDueBefore(_ context.Context, cutoff time.Time) ([]model.Loan, error) {
	var out []model.Loan
	for _, l := range m.loans {
		if l.Status().Equal(valueobject.LoanStatusActive) && l.NextPaymentDue().Before(cutoff) {
			out = append(out, l)
		}
	}
	return out, nil
}

type memBatchRepo struct{ batches map[string]model.HarvestBatch }

func (m *memBatchRepo) Save(_ context.Context, b model.HarvestBatch) error {
	m.batches[b.ID()] = b
	return nil
}

func (m *memBatchRepo) FindByID(_ context.Context, id string) (model.HarvestBatch, error) {
	b, ok := m.batches[id]
	if !ok {
		return model.HarvestBatch{}, port.ErrNotFound
	}
	return b, nil
}

func (m *memBatchRepo) FindByFarmerID(_ context.Context, farmerID string) ([]model.HarvestBatch, error) {
	var out []model.HarvestBatch
	for _, b := range m.batches {
		if b.FarmerID() == farmerID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memVendorRepo struct{ vendors []model.Vendor }

func (m *memVendorRepo) FindByID(_ context.Context, id string) (model.Vendor, error) {
	for _, v := range m.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Vendor{}, port.ErrNotFound
}

func (m *memVendorRepo) FindByCrop(_ context.Context, crop string) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range m.vendors {
		if v.Buys(crop) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVendorRepo) FindByDistrict(_ context.Context, district string) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range m.vendors {
		if v.District == district {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVendorRepo) List(_ context.Context) ([]model.Vendor, error) {
	return m.vendors, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }

type fixedWeather struct{ humidity float64 }

func (f fixedWeather) CurrentConditions(_ context.Context, district string) (port.WeatherSnapshot, error) {
	return port.WeatherSnapshot{
		District:    district,
		TempC:       30,
		HumidityPct: f.humidity,
		FetchedAt:   testutil.TestClock,
	}, nil
}

type cannedDoctor struct{}

func (cannedDoctor) Diagnose(context.Context, string, string, []byte) (port.CropDiagnosis, error) {
	return port.CropDiagnosis{Disease: "Leaf Blight", Confidence: 0.8}, nil
}

// ---------------------------------------------------------------------------
// harness
// ---------------------------------------------------------------------------

type testEnv struct {
	server *httptest.Server
	loans  *memLoanRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := i18n.MustLoad()

	soilRepo := &memSoilRepo{reports: map[string]model.SoilReport{}}
	appRepo := &memAppRepo{apps: map[string]model.LoanApplication{}}
	loanRepo := &memLoanRepo{loans: map[string]model.Loan{}}
	batchRepo := &memBatchRepo{batches: map[string]model.HarvestBatch{}}
	vendorRepo := &memVendorRepo{vendors: []model.Vendor{
		{
			ID:         testutil.TestVendorID.String(),
			Name:       "premium-mill",
			District:   "Thrissur",
			Crops:      []string{"Rice"},
			MinGrade:   valueobject.HarvestGradeB,
			CapacityKg: decimal.NewFromInt(2000),
			PricePerKg: decimal.NewFromInt(32),
		},
	}}
	publisher := noopPublisher{}

	recoGen := service.NewRecommendationGenerator(catalog)
	engine := service.NewEligibilityEngine()
	advisor := service.NewCropAdvisor(catalog)
	grader := service.NewHarvestGrader()

	router := &Router{
		Health: NewHealthHandler("krishiconnect", nil),
		Soil: NewSoilHandler(
			usecase.NewAnalyzeSoilUseCase(soilRepo, publisher, recoGen),
			usecase.NewGetSoilReportUseCase(soilRepo, recoGen),
			logger,
		),
		Loans: NewLoanHandler(
			usecase.NewApplyForLoanUseCase(appRepo, publisher, engine, catalog),
			usecase.NewDisburseLoanUseCase(appRepo, loanRepo, publisher),
			usecase.NewRecordRepaymentUseCase(loanRepo, publisher, catalog),
			usecase.NewGetLoanUseCase(loanRepo),
			logger,
		),
		Advisory: NewAdvisoryHandler(
			usecase.NewGetAdvisoryUseCase(fixedWeather{humidity: 85}, advisor, catalog),
			usecase.NewDiagnoseCropUseCase(cannedDoctor{}, catalog),
			logger,
		),
		Market: NewMarketHandler(
			usecase.NewMatchHarvestUseCase(batchRepo, vendorRepo, publisher, grader, catalog),
			usecase.NewListVendorsUseCase(vendorRepo),
			usecase.NewGetVendorUseCase(vendorRepo),
			logger,
		),
		Logger: logger,
	}

	server := httptest.NewServer(router.Handler())
	t.Cleanup(server.Close)
	return &testEnv{server: server, loans: loanRepo}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = env.do(t, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}

func TestAnalyzeSoil_CreatedWithRecommendations(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/v1/soil/analyze",
		`{"farmer_id":"`+farmer1+`","nitrogen_kg_ha":150,"phosphorus_kg_ha":5,"potassium_kg_ha":90,"ph":5.0}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, farmer1, body["farmer_id"])
	assert.Len(t, body["recommendations"], 5)
	assert.NotEmpty(t, body["suitable_crops"])

	reportID := body["id"].(string)
	resp, body = env.do(t, http.MethodGet, "/api/v1/soil/reports/"+reportID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, reportID, body["id"])
}

func TestAnalyzeSoil_InvalidMeasurements(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/v1/soil/analyze",
		`{"farmer_id":"`+farmer1+`","nitrogen_kg_ha":100,"phosphorus_kg_ha":10,"potassium_kg_ha":100,"ph":15}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "validation")
}

func TestSoilReport_NotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet, "/api/v1/soil/reports/no-such-id", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoanLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp, app := env.do(t, http.MethodPost, "/api/v1/loans/applications",
		`{"farmer_id":"`+farmer1+`","requested_amount":"20000","purpose":"seeds","crop_type":"Rice","crop_stage":"sowing"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "APPROVED", app["status"])
	assert.True(t, app["eligible"].(bool))

	appID := app["id"].(string)
	resp, loan := env.do(t, http.MethodPost, "/api/v1/loans/applications/"+appID+"/disburse", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ACTIVE", loan["status"])
	assert.NotEmpty(t, loan["schedule"])

	loanID := loan["id"].(string)
	resp, schedule := env.do(t, http.MethodGet, "/api/v1/loans/"+loanID+"/schedule", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, schedule["schedule"])

	resp, payment := env.do(t, http.MethodPost, "/api/v1/loans/"+loanID+"/repayments",
		`{"amount":"2000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ACTIVE", payment["loan_status"])

	resp, loans := env.do(t, http.MethodGet, "/api/v1/farmers/"+farmer1+"/loans", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, loans["loans"], 1)
}

func TestDisburse_UnknownApplication(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/api/v1/loans/applications/missing/disburse", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRepayment_Overpayment(t *testing.T) {
	env := newTestEnv(t)

	_, app := env.do(t, http.MethodPost, "/api/v1/loans/applications",
		`{"farmer_id":"`+farmer1+`","requested_amount":"20000","purpose":"seeds","crop_type":"Rice","crop_stage":"sowing"}`)
	_, loan := env.do(t, http.MethodPost, "/api/v1/loans/applications/"+app["id"].(string)+"/disburse", "")

	resp, body := env.do(t, http.MethodPost, "/api/v1/loans/"+loan["id"].(string)+"/repayments",
		`{"amount":"999999"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "exceeds outstanding balance")
}

func TestAdvisory_WithPestRisks(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet,
		"/api/v1/farmers/"+farmer1+"/advisory?district=Thrissur&crops=Rice&primary_crop=Rice&planting_date=2025-04-17", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["weather"])
	assert.NotEmpty(t, body["pest_risks"])
	assert.NotNil(t, body["stage_advice"])
}

func TestAdvisory_BadPlantingDate(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet,
		"/api/v1/farmers/"+farmer1+"/advisory?planting_date=17-04-2025", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDiagnoseCrop(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/v1/advisory/diagnose",
		`{"farmer_id":"`+farmer1+`","crop":"Rice","description":"yellow leaf tips"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Leaf Blight", body["disease"])
}

func TestMatchHarvest_RoutedToVendor(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/v1/harvests/match",
		`{"farmer_id":"`+farmer1+`","crop":"Rice","quantity_kg":"500","moisture_pct":11,"defect_pct":1.5}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "A", body["grade"])
	assert.True(t, body["matched"].(bool))
	assert.NotNil(t, body["vendor"])
}

func TestListVendors_FilterByCrop(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/v1/vendors?crop=Rice", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["vendors"], 1)

	resp, body = env.do(t, http.MethodGet, "/api/v1/vendors?crop=Coconut", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["vendors"])
}

func TestGetVendorByID(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/v1/vendors/"+testutil.TestVendorID.String(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "premium-mill", body["name"])

	resp, _ = env.do(t, http.MethodGet, "/api/v1/vendors/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
