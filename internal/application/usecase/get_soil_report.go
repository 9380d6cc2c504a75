package usecase

import (
	"context"
	"fmt"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
)

// GetSoilReportUseCase retrieves a stored report and recomputes its derived
// outputs. Recommendations are not persisted, so updated rule tables apply
// to historical reports too.
type GetSoilReportUseCase struct {
	reports port.SoilReportRepository
	recoGen *service.RecommendationGenerator
}

// NewGetSoilReportUseCase wires dependencies.
func NewGetSoilReportUseCase(reports port.SoilReportRepository, recoGen *service.RecommendationGenerator) *GetSoilReportUseCase {
	return &GetSoilReportUseCase{reports: reports, recoGen: recoGen}
}

// Execute fetches the report by ID.
func (uc *GetSoilReportUseCase) Execute(ctx context.Context, id string) (dto.SoilReportResponse, error) {
	report, err := uc.reports.FindByID(ctx, id)
	if err != nil {
		return dto.SoilReportResponse{}, fmt.Errorf("find soil report: %w", err)
	}

	recos := uc.recoGen.Generate(report.Nitrogen(), report.Phosphorus(), report.Potassium(), report.PH())
	crops := service.SuitableCrops(report.Nitrogen(), report.Phosphorus(), report.Potassium(), report.PH())

	return toSoilReportResponse(report, recos, crops), nil
}

// History returns a farmer's reports, newest first, without derived outputs.
func (uc *GetSoilReportUseCase) History(ctx context.Context, farmerID string) ([]dto.SoilReportResponse, error) {
	reports, err := uc.reports.FindByFarmerID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("list soil reports: %w", err)
	}

	out := make([]dto.SoilReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toSoilReportResponse(r, nil, nil))
	}
	return out, nil
}
