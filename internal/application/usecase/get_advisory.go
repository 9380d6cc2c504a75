package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// GetAdvisoryUseCase assembles stage advice and pest warnings for a farmer.
type GetAdvisoryUseCase struct {
	weather port.WeatherClient
	advisor *service.CropAdvisor
	catalog *i18n.Catalog
}

// NewGetAdvisoryUseCase wires dependencies.
func NewGetAdvisoryUseCase(
	weather port.WeatherClient,
	advisor *service.CropAdvisor,
	catalog *i18n.Catalog,
) *GetAdvisoryUseCase {
	return &GetAdvisoryUseCase{weather: weather, advisor: advisor, catalog: catalog}
}

// Execute builds the advisory. A weather provider outage degrades the
// response to stage advice only rather than failing the request.
func (uc *GetAdvisoryUseCase) Execute(ctx context.Context, req dto.GetAdvisoryRequest) (dto.AdvisoryResponse, error) {
	if req.FarmerID == "" {
		return dto.AdvisoryResponse{}, fmt.Errorf("%w: farmer ID is required", valueobject.ErrValidation)
	}
	now := time.Now().UTC()

	resp := dto.AdvisoryResponse{
		FarmerID:    req.FarmerID,
		PestRisks:   []dto.PestRiskResponse{},
		Message:     uc.catalog.Pair("advisory.default"),
		GeneratedAt: now,
	}

	if req.PrimaryCrop != "" && !req.PlantingDate.IsZero() {
		if stage := uc.advisor.StageFor(req.PrimaryCrop, req.PlantingDate, now); stage != nil {
			resp.StageAdvice = &dto.StageAdviceResponse{
				Crop:       stage.Crop,
				Stage:      stage.Stage,
				StartDay:   stage.StartDay,
				EndDay:     stage.EndDay,
				Operations: stage.Operations,
				Priority:   stage.Priority.String(),
			}
		}
	}

	snapshot, err := uc.weather.CurrentConditions(ctx, req.District)
	if err != nil {
		slog.Warn("weather lookup failed, degrading advisory",
			"district", req.District, "error", err)
		return resp, nil
	}

	resp.Weather = &dto.WeatherResponse{
		District:     snapshot.District,
		TempC:        snapshot.TempC,
		HumidityPct:  snapshot.HumidityPct,
		RainfallMM:   snapshot.RainfallMM,
		WindSpeedKmh: snapshot.WindSpeedKmh,
	}

	risks := uc.advisor.PestRisks(req.Crops, snapshot.HumidityPct)
	for _, r := range risks {
		resp.PestRisks = append(resp.PestRisks, dto.PestRiskResponse{
			Pest:              r.Pest,
			Crop:              r.Crop,
			HumidityThreshold: r.HumidityThreshold,
			Severity:          r.Severity.String(),
			Advisory:          r.Advisory,
		})
	}
	if len(risks) > 0 {
		resp.Message = uc.catalog.Pair("advisory.pest.warning")
	}

	return resp, nil
}
