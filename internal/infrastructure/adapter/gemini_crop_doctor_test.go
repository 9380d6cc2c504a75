package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiagnosis_CleanJSON(t *testing.T) {
	raw := `{"disease":"Sigatoka Leaf Spot","confidence":0.85,"treatment":"Spray mancozeb","preventive":"Wider spacing"}`

	diag, err := parseDiagnosis(raw)

	require.NoError(t, err)
	assert.Equal(t, "Sigatoka Leaf Spot", diag.Disease)
	assert.InDelta(t, 0.85, diag.Confidence, 0.001)
	assert.Equal(t, "Spray mancozeb", diag.Treatment)
}

func TestParseDiagnosis_RepairsFencedJSON(t *testing.T) {
	raw := "```json\n{\"disease\": \"Quick Wilt\", \"confidence\": 0.7, \"treatment\": \"Bordeaux mixture\", \"preventive\": \"Improve drainage\",}\n```"

	diag, err := parseDiagnosis(raw)

	require.NoError(t, err)
	assert.Equal(t, "Quick Wilt", diag.Disease)
	assert.InDelta(t, 0.7, diag.Confidence, 0.001)
}

func TestParseDiagnosis_MissingDisease(t *testing.T) {
	_, err := parseDiagnosis(`{"confidence":0.9}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing disease")
}

func TestParseDiagnosis_ClampsConfidence(t *testing.T) {
	diag, err := parseDiagnosis(`{"disease":"Leaf Spot","confidence":7.5}`)

	require.NoError(t, err)
	assert.Zero(t, diag.Confidence)
}

func TestStubCropDoctor_KnownCrop(t *testing.T) {
	doctor := NewStubCropDoctor()

	diag, err := doctor.Diagnose(context.Background(), "Rice", "yellowing leaf tips", nil)

	require.NoError(t, err)
	assert.Equal(t, "Bacterial Leaf Blight", diag.Disease)
}

func TestStubCropDoctor_UnknownCrop(t *testing.T) {
	doctor := NewStubCropDoctor()

	diag, err := doctor.Diagnose(context.Background(), "durian", "spots", nil)

	require.NoError(t, err)
	assert.Equal(t, "Unidentified stress", diag.Disease)
}

func TestStubCropDoctor_RequiresCrop(t *testing.T) {
	doctor := NewStubCropDoctor()

	_, err := doctor.Diagnose(context.Background(), "", "spots", nil)

	require.Error(t, err)
}
