package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
)

// MatchHarvestUseCase grades a harvested lot and routes it to the best
// paying vendor.
type MatchHarvestUseCase struct {
	batches   port.HarvestBatchRepository
	vendors   port.VendorRepository
	publisher port.EventPublisher
	grader    *service.HarvestGrader
	catalog   *i18n.Catalog
}

// NewMatchHarvestUseCase wires dependencies.
func NewMatchHarvestUseCase(
	batches port.HarvestBatchRepository,
	vendors port.VendorRepository,
	publisher port.EventPublisher,
	grader *service.HarvestGrader,
	catalog *i18n.Catalog,
) *MatchHarvestUseCase {
	return &MatchHarvestUseCase{
		batches:   batches,
		vendors:   vendors,
		publisher: publisher,
		grader:    grader,
		catalog:   catalog,
	}
}

// Execute grades the lot, persists it, and matches it against the vendor
// directory. An unmatched batch is still stored; the farmer can retry later
// when vendor capacity frees up.
func (uc *MatchHarvestUseCase) Execute(ctx context.Context, req dto.MatchHarvestRequest) (dto.HarvestMatchResponse, error) {
	now := time.Now().UTC()

	grade := uc.grader.Grade(req.DefectPct, req.MoisturePct)

	batch, err := model.NewHarvestBatch(
		req.FarmerID, req.Crop, req.QuantityKg,
		req.MoisturePct, req.DefectPct, grade, now,
	)
	if err != nil {
		return dto.HarvestMatchResponse{}, validationErr("create batch", err)
	}

	candidates, err := uc.vendors.FindByCrop(ctx, req.Crop)
	if err != nil {
		return dto.HarvestMatchResponse{}, fmt.Errorf("load vendors: %w", err)
	}

	vendorPtrs := make([]*model.Vendor, 0, len(candidates))
	for i := range candidates {
		vendorPtrs = append(vendorPtrs, &candidates[i])
	}

	resp := dto.HarvestMatchResponse{
		BatchID:    batch.ID(),
		Crop:       batch.Crop(),
		Grade:      grade.String(),
		GradeLabel: uc.catalog.Pair("grade." + strings.ToLower(grade.String())),
		QuantityKg: batch.QuantityKg(),
		PricePerKg: decimal.Zero,
		TotalPrice: decimal.Zero,
	}

	best := uc.grader.BestMatch(&batch, vendorPtrs)
	if best != nil {
		batch, err = batch.Match(best.Vendor.ID, best.PricePerKg, now)
		if err != nil {
			return dto.HarvestMatchResponse{}, fmt.Errorf("match batch: %w", err)
		}
		vendor := toVendorResponse(*best.Vendor)
		resp.Vendor = &vendor
		resp.PricePerKg = best.PricePerKg
		resp.TotalPrice = best.TotalPrice
		resp.Matched = true
	}

	if err := uc.batches.Save(ctx, batch); err != nil {
		return dto.HarvestMatchResponse{}, fmt.Errorf("save batch: %w", err)
	}

	if err := uc.publisher.Publish(ctx, batch.DomainEvents()...); err != nil {
		slog.Warn("publish harvest events failed", "batch_id", batch.ID(), "error", err)
	}

	return resp, nil
}
