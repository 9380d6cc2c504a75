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
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// ApplyForLoanUseCase orchestrates new application submission and the
// eligibility decision.
type ApplyForLoanUseCase struct {
	apps      port.LoanApplicationRepository
	publisher port.EventPublisher
	engine    *service.EligibilityEngine
	catalog   *i18n.Catalog
}

// NewApplyForLoanUseCase wires dependencies.
func NewApplyForLoanUseCase(
	apps port.LoanApplicationRepository,
	publisher port.EventPublisher,
	engine *service.EligibilityEngine,
	catalog *i18n.Catalog,
) *ApplyForLoanUseCase {
	return &ApplyForLoanUseCase{
		apps:      apps,
		publisher: publisher,
		engine:    engine,
		catalog:   catalog,
	}
}

// Execute creates the application, scores it and records the decision. The
// decision is synchronous: the farmer sees the outcome in the response.
func (uc *ApplyForLoanUseCase) Execute(ctx context.Context, req dto.ApplyForLoanRequest) (dto.LoanApplicationResponse, error) {
	now := time.Now().UTC()

	app, err := model.NewLoanApplication(
		req.FarmerID, req.RequestedAmount,
		req.Purpose, req.CropType, req.CropStage,
		req.LandAreaAcres, req.SoilPH, req.SoilNitrogen,
		req.PastLoanCount, req.DefaultCount,
		now,
	)
	if err != nil {
		return dto.LoanApplicationResponse{}, validationErr("create application", err)
	}

	result := uc.engine.Score(service.EligibilityInput{
		CropStage:       req.CropStage,
		SoilPH:          req.SoilPH,
		SoilNitrogen:    req.SoilNitrogen,
		LandAreaAcres:   req.LandAreaAcres,
		RequestedAmount: req.RequestedAmount,
		PastLoanCount:   req.PastLoanCount,
		DefaultCount:    req.DefaultCount,
	})

	decision := model.EligibilityDecision{
		Score:             result.Score,
		MaxEligibleAmount: result.MaxEligibleAmount,
		InterestRatePct:   result.InterestRatePct,
		DurationMonths:    result.DurationMonths,
		Eligible:          result.Eligible,
		Reason:            result.Reason,
	}

	if result.Eligible {
		app, err = app.Approve(decision, now)
	} else {
		app, err = app.Reject(decision, now)
	}
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	if err := uc.apps.Save(ctx, app); err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		slog.Warn("publish application events failed", "application_id", app.ID(), "error", err)
	}

	return uc.toResponse(app, result.Factors), nil
}

func (uc *ApplyForLoanUseCase) toResponse(app model.LoanApplication, factors []service.Factor) dto.LoanApplicationResponse {
	d := app.Decision()

	messageKey := "loan.rejected"
	if d.Eligible {
		messageKey = "loan.approved"
	}

	return dto.LoanApplicationResponse{
		ID:                app.ID(),
		FarmerID:          app.FarmerID(),
		RequestedAmount:   app.RequestedAmount(),
		Purpose:           app.Purpose(),
		Status:            app.Status().String(),
		Score:             d.Score,
		MaxEligibleAmount: d.MaxEligibleAmount,
		InterestRatePct:   d.InterestRatePct,
		DurationMonths:    d.DurationMonths,
		Eligible:          d.Eligible,
		Reason:            d.Reason,
		Factors:           toFactorResponses(factors),
		Message:           uc.catalog.Pair(messageKey),
		CreatedAt:         app.CreatedAt(),
		UpdatedAt:         app.UpdatedAt(),
	}
}
