package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
)

// AnalyzeSoilUseCase classifies a soil test, persists the report and derives
// the remediation and crop suggestions.
type AnalyzeSoilUseCase struct {
	reports   port.SoilReportRepository
	publisher port.EventPublisher
	recoGen   *service.RecommendationGenerator
}

// NewAnalyzeSoilUseCase wires dependencies.
func NewAnalyzeSoilUseCase(
	reports port.SoilReportRepository,
	publisher port.EventPublisher,
	recoGen *service.RecommendationGenerator,
) *AnalyzeSoilUseCase {
	return &AnalyzeSoilUseCase{
		reports:   reports,
		publisher: publisher,
		recoGen:   recoGen,
	}
}

// Execute validates and classifies the measurements, stores the report and
// returns it with recommendations and suitable crops attached.
func (uc *AnalyzeSoilUseCase) Execute(ctx context.Context, req dto.AnalyzeSoilRequest) (dto.SoilReportResponse, error) {
	now := time.Now().UTC()

	report, err := model.NewSoilReport(
		req.FarmerID, req.FarmID,
		req.NitrogenKgHa, req.PhosphorusKgHa, req.PotassiumKgHa, req.PH,
		now,
	)
	if err != nil {
		return dto.SoilReportResponse{}, validationErr("analyze soil", err)
	}

	if err := uc.reports.Save(ctx, report); err != nil {
		return dto.SoilReportResponse{}, fmt.Errorf("save soil report: %w", err)
	}

	// Events are best-effort: the report is already durable.
	if err := uc.publisher.Publish(ctx, report.DomainEvents()...); err != nil {
		slog.Warn("publish soil events failed", "report_id", report.ID(), "error", err)
	}

	recos := uc.recoGen.Generate(report.Nitrogen(), report.Phosphorus(), report.Potassium(), report.PH())
	crops := service.SuitableCrops(report.Nitrogen(), report.Phosphorus(), report.Potassium(), report.PH())

	return toSoilReportResponse(report, recos, crops), nil
}
