package usecase

import (
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

func toNutrientResponse(s valueobject.NutrientStatus) dto.NutrientStatusResponse {
	return dto.NutrientStatusResponse{
		Nutrient: s.Kind.String(),
		Value:    s.Value,
		Level:    s.Level.String(),
		IdealMin: s.IdealMin,
		IdealMax: s.IdealMax,
	}
}

func toRecommendationResponses(recos []service.Recommendation) []dto.RecommendationResponse {
	out := make([]dto.RecommendationResponse, 0, len(recos))
	for _, r := range recos {
		out = append(out, dto.RecommendationResponse{
			Type:     r.Type,
			Priority: r.Priority.String(),
			Message:  r.Message,
		})
	}
	return out
}

func toSoilReportResponse(
	report model.SoilReport,
	recos []service.Recommendation,
	crops []service.CropRequirement,
) dto.SoilReportResponse {
	names := make([]string, 0, len(crops))
	for _, c := range crops {
		names = append(names, c.Name)
	}

	return dto.SoilReportResponse{
		ID:              report.ID(),
		FarmerID:        report.FarmerID(),
		FarmID:          report.FarmID(),
		Nitrogen:        toNutrientResponse(report.Nitrogen()),
		Phosphorus:      toNutrientResponse(report.Phosphorus()),
		Potassium:       toNutrientResponse(report.Potassium()),
		PH:              report.PH().Value,
		PHCategory:      report.PH().Category.String(),
		PHLabel:         report.PH().FineLabel(),
		Recommendations: toRecommendationResponses(recos),
		SuitableCrops:   names,
		CreatedAt:       report.CreatedAt(),
	}
}

func toFactorResponses(factors []service.Factor) []dto.FactorResponse {
	out := make([]dto.FactorResponse, 0, len(factors))
	for _, f := range factors {
		out = append(out, dto.FactorResponse{Name: f.Name, Value: f.Value})
	}
	return out
}

func toScheduleResponses(entries []model.RepaymentEntry) []dto.RepaymentEntryResponse {
	out := make([]dto.RepaymentEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RepaymentEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			EMI:              e.EMI,
			Principal:        e.Principal,
			Interest:         e.Interest,
			RemainingBalance: e.RemainingBalance,
		})
	}
	return out
}

func toLoanResponse(loan model.Loan, withSchedule bool) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:                 loan.ID(),
		FarmerID:           loan.FarmerID(),
		ApplicationID:      loan.ApplicationID(),
		Principal:          loan.Principal(),
		InterestRatePct:    loan.InterestRatePct(),
		TermMonths:         loan.TermMonths(),
		Status:             loan.Status().String(),
		OutstandingBalance: loan.OutstandingBalance(),
		NextPaymentDue:     loan.NextPaymentDue(),
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
	if withSchedule {
		resp.Schedule = toScheduleResponses(loan.Schedule())
	}
	return resp
}

func toVendorResponse(v model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:         v.ID,
		Name:       v.Name,
		District:   v.District,
		Crops:      v.Crops,
		MinGrade:   v.MinGrade.String(),
		CapacityKg: v.CapacityKg,
		PricePerKg: v.PricePerKg,
		Phone:      v.Phone,
	}
}
