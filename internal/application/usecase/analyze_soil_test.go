package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/event"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/service"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func newAnalyzeSoilUseCase(reports *mockSoilReportRepository, publisher *mockEventPublisher) *usecase.AnalyzeSoilUseCase {
	return usecase.NewAnalyzeSoilUseCase(
		reports, publisher,
		service.NewRecommendationGenerator(i18n.MustLoad()),
	)
}

func TestAnalyzeSoilUseCase_Execute(t *testing.T) {
	reports := &mockSoilReportRepository{}
	publisher := &mockEventPublisher{}
	uc := newAnalyzeSoilUseCase(reports, publisher)

	resp, err := uc.Execute(context.Background(), dto.AnalyzeSoilRequest{
		FarmerID:       testutil.TestFarmerID1.String(),
		FarmID:         testutil.TestFarmID.String(),
		NitrogenKgHa:   150,
		PhosphorusKgHa: 5,
		PotassiumKgHa:  90,
		PH:             5.0,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "LOW", resp.Nitrogen.Level)
	assert.Equal(t, "ACIDIC", resp.PHCategory)
	assert.Equal(t, "Moderately Acidic", resp.PHLabel)

	// Three deficiencies, lime and the organic entry.
	require.Len(t, resp.Recommendations, 5)
	assert.Equal(t, "nitrogen_deficiency", resp.Recommendations[0].Type)
	assert.NotEmpty(t, resp.Recommendations[0].Message.ML)

	require.Len(t, reports.savedReports, 1)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, "krishi.soil_report.created", publisher.publishedEvents[0].EventType())
}

func TestAnalyzeSoilUseCase_Execute_InvalidMeasurement(t *testing.T) {
	reports := &mockSoilReportRepository{}
	uc := newAnalyzeSoilUseCase(reports, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), dto.AnalyzeSoilRequest{
		FarmerID:     testutil.TestFarmerID1.String(),
		NitrogenKgHa: 150, PhosphorusKgHa: 5, PotassiumKgHa: 90,
		PH: 14.5,
	})
	assert.ErrorIs(t, err, valueobject.ErrValidation)
	assert.Empty(t, reports.savedReports, "invalid input must not persist")
}

func TestAnalyzeSoilUseCase_Execute_SaveFailure(t *testing.T) {
	reports := &mockSoilReportRepository{
		saveFunc: func(_ context.Context, _ model.SoilReport) error {
			return errors.New("connection reset")
		},
	}
	publisher := &mockEventPublisher{}
	uc := newAnalyzeSoilUseCase(reports, publisher)

	_, err := uc.Execute(context.Background(), dto.AnalyzeSoilRequest{
		FarmerID:     testutil.TestFarmerID1.String(),
		NitrogenKgHa: 150, PhosphorusKgHa: 5, PotassiumKgHa: 90,
		PH: 6.0,
	})
	require.Error(t, err)
	assert.Empty(t, publisher.publishedEvents, "no events after a failed save")
}

func TestAnalyzeSoilUseCase_Execute_PublishFailureIsNotFatal(t *testing.T) {
	publisher := &mockEventPublisher{
		publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
			return errors.New("broker down")
		},
	}
	uc := newAnalyzeSoilUseCase(&mockSoilReportRepository{}, publisher)

	resp, err := uc.Execute(context.Background(), dto.AnalyzeSoilRequest{
		FarmerID:     testutil.TestFarmerID1.String(),
		NitrogenKgHa: 150, PhosphorusKgHa: 5, PotassiumKgHa: 90,
		PH: 6.0,
	})
	require.NoError(t, err, "a broker outage must not fail the analysis")
	assert.NotEmpty(t, resp.ID)
}
