package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/i18n"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/pkg/testutil"
)

func TestDiagnoseCropUseCase_Execute(t *testing.T) {
	doctor := &mockCropDoctor{
		diagnoseFunc: func(_ context.Context, crop, description string, _ []byte) (port.CropDiagnosis, error) {
			assert.Equal(t, "Rice", crop)
			assert.Contains(t, description, "yellow")
			return port.CropDiagnosis{
				Disease:    "Bacterial Leaf Blight",
				Confidence: 0.87,
				Treatment:  "Spray copper oxychloride 0.25%",
				Preventive: "Use resistant varieties, avoid excess nitrogen",
			}, nil
		},
	}
	uc := usecase.NewDiagnoseCropUseCase(doctor, i18n.MustLoad())

	resp, err := uc.Execute(context.Background(), dto.DiagnoseCropRequest{
		FarmerID:    testutil.TestFarmerID1.String(),
		Crop:        "Rice",
		Description: "leaves turning yellow from the tip",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bacterial Leaf Blight", resp.Disease)
	assert.Equal(t, 0.87, resp.Confidence)
	assert.NotEmpty(t, resp.Treatment)
}

func TestDiagnoseCropUseCase_Execute_Validation(t *testing.T) {
	uc := usecase.NewDiagnoseCropUseCase(&mockCropDoctor{}, i18n.MustLoad())

	_, err := uc.Execute(context.Background(), dto.DiagnoseCropRequest{Description: "spots"})
	assert.ErrorIs(t, err, valueobject.ErrValidation)

	_, err = uc.Execute(context.Background(), dto.DiagnoseCropRequest{Crop: "Rice"})
	assert.ErrorIs(t, err, valueobject.ErrValidation)
}

func TestDiagnoseCropUseCase_Execute_ModelFailure(t *testing.T) {
	doctor := &mockCropDoctor{
		diagnoseFunc: func(_ context.Context, _, _ string, _ []byte) (port.CropDiagnosis, error) {
			return port.CropDiagnosis{}, errors.New("model unavailable")
		},
	}
	uc := usecase.NewDiagnoseCropUseCase(doctor, i18n.MustLoad())

	// A model outage must degrade to generic advice, never surface an error.
	resp, err := uc.Execute(context.Background(), dto.DiagnoseCropRequest{
		Crop:        "Rice",
		Description: "spots on leaves",
	})
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.Equal(t, "Rice", resp.Crop)
	assert.Empty(t, resp.Disease)
	require.NotNil(t, resp.Message)
	assert.Contains(t, resp.Message.EN, "unavailable")
	assert.NotEmpty(t, resp.Message.ML)
}
