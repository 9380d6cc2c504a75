package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// DiagnoseCropUseCase routes a crop problem to the diagnosis model.
type DiagnoseCropUseCase struct {
	doctor  port.CropDoctor
	catalog *i18n.Catalog
}

// NewDiagnoseCropUseCase wires dependencies.
func NewDiagnoseCropUseCase(doctor port.CropDoctor, catalog *i18n.Catalog) *DiagnoseCropUseCase {
	return &DiagnoseCropUseCase{doctor: doctor, catalog: catalog}
}

// Execute validates the request and asks the model for a diagnosis. A model
// outage degrades the response to generic field advice rather than failing
// the request, the same contract the advisory endpoint keeps for weather.
func (uc *DiagnoseCropUseCase) Execute(ctx context.Context, req dto.DiagnoseCropRequest) (dto.DiagnosisResponse, error) {
	if req.Crop == "" {
		return dto.DiagnosisResponse{}, fmt.Errorf("%w: crop is required", valueobject.ErrValidation)
	}
	if req.Description == "" && len(req.ImageJPEG) == 0 {
		return dto.DiagnosisResponse{}, fmt.Errorf("%w: a description or photo is required", valueobject.ErrValidation)
	}

	diagnosis, err := uc.doctor.Diagnose(ctx, req.Crop, req.Description, req.ImageJPEG)
	if err != nil {
		slog.Warn("crop diagnosis failed, degrading to default advice",
			"crop", req.Crop, "error", err)
		msg := uc.catalog.Pair("diagnosis.default")
		return dto.DiagnosisResponse{
			Crop:     req.Crop,
			Degraded: true,
			Message:  &msg,
		}, nil
	}

	return dto.DiagnosisResponse{
		Crop:       req.Crop,
		Disease:    diagnosis.Disease,
		Confidence: diagnosis.Confidence,
		Treatment:  diagnosis.Treatment,
		Preventive: diagnosis.Preventive,
	}, nil
}
