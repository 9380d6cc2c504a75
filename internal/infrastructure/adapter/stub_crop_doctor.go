package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// StubCropDoctor is a development/test adapter that returns a canned
// diagnosis per crop. It implements port.CropDoctor and is wired when no
// Gemini API key is configured.
type StubCropDoctor struct{}

// NewStubCropDoctor creates a new stub adapter.
func NewStubCropDoctor() *StubCropDoctor {
	return &StubCropDoctor{}
}

var stubDiagnoses = map[string]port.CropDiagnosis{
	"rice": {
		Disease:    "Bacterial Leaf Blight",
		Confidence: 0.6,
		Treatment:  "Spray copper oxychloride 0.3% and drain standing water.",
		Preventive: "Use certified seed and avoid excess nitrogen.",
	},
	"banana": {
		Disease:    "Sigatoka Leaf Spot",
		Confidence: 0.6,
		Treatment:  "Remove affected leaves and spray mancozeb 0.25%.",
		Preventive: "Maintain wider spacing for airflow.",
	},
	"black pepper": {
		Disease:    "Quick Wilt",
		Confidence: 0.6,
		Treatment:  "Drench the base with 1% Bordeaux mixture.",
		Preventive: "Improve drainage around the vine base.",
	},
}

// Diagnose returns a canned diagnosis keyed by crop, marked as provisional.
func (d *StubCropDoctor) Diagnose(_ context.Context, crop, description string, _ []byte) (port.CropDiagnosis, error) {
	if crop == "" {
		return port.CropDiagnosis{}, fmt.Errorf("crop is required")
	}

	if diag, ok := stubDiagnoses[strings.ToLower(crop)]; ok {
		return diag, nil
	}
	return port.CropDiagnosis{
		Disease:    "Unidentified stress",
		Confidence: 0.3,
		Treatment:  "Consult the nearest Krishi Bhavan with a leaf sample.",
		Preventive: "Monitor the field and photograph symptom progression.",
	}, nil
}
