package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// AnalyzeSoilRequest carries the raw measurements of one soil test.
type AnalyzeSoilRequest struct {
	FarmerID       string  `json:"farmer_id"`
	FarmID         string  `json:"farm_id"`
	NitrogenKgHa   float64 `json:"nitrogen_kg_ha"`
	PhosphorusKgHa float64 `json:"phosphorus_kg_ha"`
	PotassiumKgHa  float64 `json:"potassium_kg_ha"`
	PH             float64 `json:"ph"`
}

// ApplyForLoanRequest carries a microloan application.
type ApplyForLoanRequest struct {
	FarmerID        string          `json:"farmer_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Purpose         string          `json:"purpose"`
	CropType        string          `json:"crop_type"`
	CropStage       string          `json:"crop_stage"`
	LandAreaAcres   *float64        `json:"land_area_acres,omitempty"`
	SoilPH          *float64        `json:"soil_ph,omitempty"`
	SoilNitrogen    *float64        `json:"soil_nitrogen,omitempty"`
	PastLoanCount   int             `json:"past_loan_count"`
	DefaultCount    int             `json:"default_count"`
}

// RecordRepaymentRequest carries one repayment against a loan.
type RecordRepaymentRequest struct {
	LoanID string          `json:"loan_id"`
	Amount decimal.Decimal `json:"amount"`
}

// GetAdvisoryRequest identifies a farmer's field for stage and pest advice.
type GetAdvisoryRequest struct {
	FarmerID     string    `json:"farmer_id"`
	District     string    `json:"district"`
	Crops        []string  `json:"crops"`
	PrimaryCrop  string    `json:"primary_crop"`
	PlantingDate time.Time `json:"planting_date"`
}

// DiagnoseCropRequest carries a free-text problem description and an
// optional photo.
type DiagnoseCropRequest struct {
	FarmerID    string `json:"farmer_id"`
	Crop        string `json:"crop"`
	Description string `json:"description"`
	ImageJPEG   []byte `json:"image_jpeg,omitempty"`
}

// MatchHarvestRequest carries a freshly harvested lot for grading and sale.
type MatchHarvestRequest struct {
	FarmerID    string          `json:"farmer_id"`
	Crop        string          `json:"crop"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	MoisturePct float64         `json:"moisture_pct"`
	DefectPct   float64         `json:"defect_pct"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// NutrientStatusResponse is one classified nutrient band.
type NutrientStatusResponse struct {
	Nutrient string  `json:"nutrient"`
	Value    float64 `json:"value"`
	Level    string  `json:"level"`
	IdealMin float64 `json:"ideal_min"`
	IdealMax float64 `json:"ideal_max"`
}

// RecommendationResponse is one remediation action.
type RecommendationResponse struct {
	Type     string    `json:"type"`
	Priority string    `json:"priority"`
	Message  i18n.Text `json:"message"`
}

// SoilReportResponse is the external representation of an analyzed soil test.
type SoilReportResponse struct {
	ID              string                   `json:"id"`
	FarmerID        string                   `json:"farmer_id"`
	FarmID          string                   `json:"farm_id,omitempty"`
	Nitrogen        NutrientStatusResponse   `json:"nitrogen"`
	Phosphorus      NutrientStatusResponse   `json:"phosphorus"`
	Potassium       NutrientStatusResponse   `json:"potassium"`
	PH              float64                  `json:"ph"`
	PHCategory      string                   `json:"ph_category"`
	PHLabel         string                   `json:"ph_label"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	SuitableCrops   []string                 `json:"suitable_crops"`
	CreatedAt       time.Time                `json:"created_at"`
}

// FactorResponse is one scoring factor with its value.
type FactorResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// LoanApplicationResponse is the external representation of an application
// and its eligibility decision.
type LoanApplicationResponse struct {
	ID                string           `json:"id"`
	FarmerID          string           `json:"farmer_id"`
	RequestedAmount   decimal.Decimal  `json:"requested_amount"`
	Purpose           string           `json:"purpose"`
	Status            string           `json:"status"`
	Score             int              `json:"score"`
	MaxEligibleAmount decimal.Decimal  `json:"max_eligible_amount"`
	InterestRatePct   float64          `json:"interest_rate_pct"`
	DurationMonths    int              `json:"duration_months"`
	Eligible          bool             `json:"eligible"`
	Reason            string           `json:"reason"`
	Factors           []FactorResponse `json:"factors,omitempty"`
	Message           i18n.Text        `json:"message"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// RepaymentEntryResponse is a single installment in a repayment schedule.
type RepaymentEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	EMI              decimal.Decimal `json:"emi"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// LoanResponse is the external representation of a disbursed loan.
type LoanResponse struct {
	ID                 string                   `json:"id"`
	FarmerID           string                   `json:"farmer_id"`
	ApplicationID      string                   `json:"application_id"`
	Principal          decimal.Decimal          `json:"principal"`
	InterestRatePct    float64                  `json:"interest_rate_pct"`
	TermMonths         int                      `json:"term_months"`
	Status             string                   `json:"status"`
	OutstandingBalance decimal.Decimal          `json:"outstanding_balance"`
	NextPaymentDue     time.Time                `json:"next_payment_due"`
	Schedule           []RepaymentEntryResponse `json:"schedule,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// RepaymentResponse is the external representation of a repayment result.
type RepaymentResponse struct {
	LoanID             string          `json:"loan_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	LoanStatus         string          `json:"loan_status"`
	Message            i18n.Text       `json:"message"`
}

// StageAdviceResponse is the calendar advice for the farmer's primary crop.
type StageAdviceResponse struct {
	Crop       string   `json:"crop"`
	Stage      string   `json:"stage"`
	StartDay   int      `json:"start_day"`
	EndDay     int      `json:"end_day"`
	Operations []string `json:"operations"`
	Priority   string   `json:"priority"`
}

// PestRiskResponse is one flagged pest with its bilingual advisory.
type PestRiskResponse struct {
	Pest              string    `json:"pest"`
	Crop              string    `json:"crop"`
	HumidityThreshold float64   `json:"humidity_threshold"`
	Severity          string    `json:"severity"`
	Advisory          i18n.Text `json:"advisory"`
}

// WeatherResponse is the snapshot the advisory was computed from.
type WeatherResponse struct {
	District     string  `json:"district"`
	TempC        float64 `json:"temp_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	RainfallMM   float64 `json:"rainfall_mm"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
}

// AdvisoryResponse bundles stage advice, pest risks and the weather behind
// them.
type AdvisoryResponse struct {
	FarmerID    string               `json:"farmer_id"`
	Weather     *WeatherResponse     `json:"weather,omitempty"`
	StageAdvice *StageAdviceResponse `json:"stage_advice,omitempty"`
	PestRisks   []PestRiskResponse   `json:"pest_risks"`
	Message     i18n.Text            `json:"message"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// DiagnosisResponse is the external representation of a crop diagnosis.
// When the model is unreachable the response degrades: Degraded is set and
// Message carries generic field advice instead of a named disease.
type DiagnosisResponse struct {
	Crop       string     `json:"crop"`
	Disease    string     `json:"disease"`
	Confidence float64    `json:"confidence"`
	Treatment  string     `json:"treatment"`
	Preventive string     `json:"preventive"`
	Degraded   bool       `json:"degraded,omitempty"`
	Message    *i18n.Text `json:"message,omitempty"`
}

// VendorResponse is one marketplace directory entry.
type VendorResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	District   string          `json:"district"`
	Crops      []string        `json:"crops"`
	MinGrade   string          `json:"min_grade"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	Phone      string          `json:"phone"`
}

// HarvestMatchResponse is the outcome of grading and routing a batch.
type HarvestMatchResponse struct {
	BatchID    string          `json:"batch_id"`
	Crop       string          `json:"crop"`
	Grade      string          `json:"grade"`
	GradeLabel i18n.Text       `json:"grade_label"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	Vendor     *VendorResponse `json:"vendor,omitempty"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Matched    bool            `json:"matched"`
}
