package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// AdvisoryHandler exposes the compute-heavy advisory operations to sibling
// services over gRPC. AnalyzeSoil persists like its REST counterpart; the
// remaining methods are pure calculations.
type AdvisoryHandler struct {
	UnimplementedAdvisoryServiceServer

	analyze *usecase.AnalyzeSoilUseCase
	engine  *service.EligibilityEngine
	advisor *service.CropAdvisor
}

// NewAdvisoryHandler creates a new handler with all dependencies.
func NewAdvisoryHandler(
	analyze *usecase.AnalyzeSoilUseCase,
	engine *service.EligibilityEngine,
	advisor *service.CropAdvisor,
) *AdvisoryHandler {
	return &AdvisoryHandler{analyze: analyze, engine: engine, advisor: advisor}
}

// AnalyzeSoil classifies and stores a soil test.
func (h *AdvisoryHandler) AnalyzeSoil(ctx context.Context, req *AnalyzeSoilRequest) (*AnalyzeSoilResponse, error) {
	report, err := h.analyze.Execute(ctx, dto.AnalyzeSoilRequest{
		FarmerID:       req.FarmerID,
		FarmID:         req.FarmID,
		NitrogenKgHa:   req.NitrogenKgHa,
		PhosphorusKgHa: req.PhosphorusKgHa,
		PotassiumKgHa:  req.PotassiumKgHa,
		PH:             req.PH,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &AnalyzeSoilResponse{Report: report}, nil
}

// ScoreEligibility runs the scoring model without creating an application.
func (h *AdvisoryHandler) ScoreEligibility(_ context.Context, req *ScoreEligibilityRequest) (*ScoreEligibilityResponse, error) {
	amount, err := decimal.NewFromString(req.RequestedAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid requested amount %q", req.RequestedAmount)
	}

	result := h.engine.Score(service.EligibilityInput{
		CropStage:       req.CropStage,
		SoilPH:          req.SoilPH,
		SoilNitrogen:    req.SoilNitrogen,
		LandAreaAcres:   req.LandAreaAcres,
		RequestedAmount: amount,
		PastLoanCount:   req.PastLoanCount,
		DefaultCount:    req.DefaultCount,
	})

	factors := make([]dto.FactorResponse, 0, len(result.Factors))
	for _, f := range result.Factors {
		factors = append(factors, dto.FactorResponse{Name: f.Name, Value: f.Value})
	}

	return &ScoreEligibilityResponse{
		Score:             result.Score,
		MaxEligibleAmount: result.MaxEligibleAmount.String(),
		InterestRatePct:   result.InterestRatePct,
		DurationMonths:    result.DurationMonths,
		Eligible:          result.Eligible,
		Reason:            result.Reason,
		Factors:           factors,
	}, nil
}

// GetRepaymentSchedule previews the amortization plan for the given terms.
func (h *AdvisoryHandler) GetRepaymentSchedule(_ context.Context, req *GetRepaymentScheduleRequest) (*GetRepaymentScheduleResponse, error) {
	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal %q", req.Principal)
	}
	if principal.LessThanOrEqual(decimal.Zero) || req.TermMonths <= 0 {
		return nil, status.Error(codes.InvalidArgument, "principal and term must be positive")
	}

	start := time.Now().UTC()
	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
		}
	}

	schedule := model.GenerateRepaymentSchedule(principal, req.InterestRatePct, req.TermMonths, start)
	entries := make([]dto.RepaymentEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.RepaymentEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			EMI:              e.EMI,
			Principal:        e.Principal,
			Interest:         e.Interest,
			RemainingBalance: e.RemainingBalance,
		})
	}

	return &GetRepaymentScheduleResponse{
		EMI:      model.CalculateEMI(principal, req.InterestRatePct, req.TermMonths).String(),
		Schedule: entries,
	}, nil
}

// GetCropStage locates a field on its crop calendar.
func (h *AdvisoryHandler) GetCropStage(_ context.Context, req *GetCropStageRequest) (*GetCropStageResponse, error) {
	if req.Crop == "" {
		return nil, status.Error(codes.InvalidArgument, "crop is required")
	}
	planted, err := time.Parse("2006-01-02", req.PlantingDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "planting_date must be YYYY-MM-DD")
	}

	info := h.advisor.StageFor(req.Crop, planted, time.Now().UTC())
	if info == nil {
		return &GetCropStageResponse{}, nil
	}

	return &GetCropStageResponse{
		StageAdvice: &dto.StageAdviceResponse{
			Crop:       info.Crop,
			Stage:      info.Stage,
			StartDay:   info.StartDay,
			EndDay:     info.EndDay,
			Operations: info.Operations,
			Priority:   info.Priority.String(),
		},
	}, nil
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
