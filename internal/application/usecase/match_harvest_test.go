package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func riceVendor(id string, minGrade valueobject.HarvestGrade, capacity, price int64) model.Vendor {
	return model.Vendor{
		ID:         id,
		Name:       id,
		District:   "Palakkad",
		Crops:      []string{"Rice"},
		MinGrade:   minGrade,
		CapacityKg: decimal.NewFromInt(capacity),
		PricePerKg: decimal.NewFromInt(price),
	}
}

func newMatchUseCase(batches *mockHarvestBatchRepository, vendors *mockVendorRepository, publisher *mockEventPublisher) *usecase.MatchHarvestUseCase {
	return usecase.NewMatchHarvestUseCase(
		batches, vendors, publisher,
		service.NewHarvestGrader(), i18n.MustLoad(),
	)
}

func TestMatchHarvestUseCase_Execute(t *testing.T) {
	batches := &mockHarvestBatchRepository{}
	vendors := &mockVendorRepository{vendors: []model.Vendor{
		riceVendor("coop-depot", valueobject.HarvestGradeC, 1000, 28),
		riceVendor("premium-mill", valueobject.HarvestGradeA, 2000, 32),
	}}
	publisher := &mockEventPublisher{}
	uc := newMatchUseCase(batches, vendors, publisher)

	resp, err := uc.Execute(context.Background(), dto.MatchHarvestRequest{
		FarmerID:    testutil.TestFarmerID1.String(),
		Crop:        "Rice",
		QuantityKg:  decimal.NewFromInt(500),
		MoisturePct: 11,
		DefectPct:   1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "A", resp.Grade)
	assert.True(t, resp.Matched)
	require.NotNil(t, resp.Vendor)
	assert.Equal(t, "premium-mill", resp.Vendor.ID)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(16000)))
	assert.NotEmpty(t, resp.GradeLabel.ML)

	require.Len(t, batches.savedBatches, 1)
	assert.Equal(t, "premium-mill", batches.savedBatches[0].MatchedVendor())

	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, "krishi.harvest.matched", publisher.publishedEvents[0].EventType())
}

func TestMatchHarvestUseCase_Execute_NoVendorStillStores(t *testing.T) {
	batches := &mockHarvestBatchRepository{}
	vendors := &mockVendorRepository{vendors: []model.Vendor{
		riceVendor("premium-mill", valueobject.HarvestGradeA, 2000, 32),
	}}
	publisher := &mockEventPublisher{}
	uc := newMatchUseCase(batches, vendors, publisher)

	// 15% moisture grades C; no vendor takes grade C rice here.
	resp, err := uc.Execute(context.Background(), dto.MatchHarvestRequest{
		FarmerID:    testutil.TestFarmerID1.String(),
		Crop:        "Rice",
		QuantityKg:  decimal.NewFromInt(500),
		MoisturePct: 15,
		DefectPct:   1.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "C", resp.Grade)
	assert.False(t, resp.Matched)
	assert.Nil(t, resp.Vendor)
	assert.True(t, resp.TotalPrice.IsZero())

	require.Len(t, batches.savedBatches, 1, "unmatched batches are kept for retry")
	assert.Empty(t, batches.savedBatches[0].MatchedVendor())
	assert.Empty(t, publisher.publishedEvents)
}

func TestMatchHarvestUseCase_Execute_InvalidQuantity(t *testing.T) {
	batches := &mockHarvestBatchRepository{}
	uc := newMatchUseCase(batches, &mockVendorRepository{}, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.MatchHarvestRequest{
		FarmerID:    testutil.TestFarmerID1.String(),
		Crop:        "Rice",
		QuantityKg:  decimal.Zero,
		MoisturePct: 11,
		DefectPct:   1.5,
	})
	assert.Error(t, err)
	assert.Empty(t, batches.savedBatches)
}
