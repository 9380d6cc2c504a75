package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"google.golang.org/genai"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/infrastructure/config"
)

const diagnosisPrompt = `You are an agronomist advising smallholder farmers in Kerala, India.
A farmer growing %s reports the following problem:

%s

Identify the most likely disease or pest, how confident you are, an affordable
treatment available in rural Kerala, and a preventive measure. Respond with a
single JSON object with exactly these keys:
{"disease": string, "confidence": number between 0 and 1, "treatment": string, "preventive": string}`

// GeminiCropDoctor implements port.CropDoctor using the Gemini API. The model
// is asked for a strict JSON object; responses that drift from valid JSON are
// run through a repair pass before decoding.
type GeminiCropDoctor struct {
	cfg config.GeminiConfig
}

// NewGeminiCropDoctor creates a crop doctor for the configured model.
func NewGeminiCropDoctor(cfg config.GeminiConfig) *GeminiCropDoctor {
	return &GeminiCropDoctor{cfg: cfg}
}

// Diagnose asks the model for a structured assessment of a crop problem.
func (d *GeminiCropDoctor) Diagnose(ctx context.Context, crop, description string, imageJPEG []byte) (port.CropDiagnosis, error) {
	if d.cfg.APIKey == "" {
		return port.CropDiagnosis{}, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  d.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return port.CropDiagnosis{}, fmt.Errorf("create genai client: %w", err)
	}

	parts := []*genai.Part{
		{Text: fmt.Sprintf(diagnosisPrompt, crop, description)},
	}
	if len(imageJPEG) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: imageJPEG},
		})
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
	}

	result, err := client.Models.GenerateContent(ctx, d.cfg.Model,
		[]*genai.Content{{Parts: parts}}, cfg)
	if err != nil {
		return port.CropDiagnosis{}, fmt.Errorf("%w: gemini generation: %w", port.ErrUpstream, err)
	}

	return parseDiagnosis(result.Text())
}

// parseDiagnosis decodes the model output, repairing malformed JSON such as
// fenced code blocks or trailing commas.
func parseDiagnosis(raw string) (port.CropDiagnosis, error) {
	var diag port.CropDiagnosis
	if err := json.Unmarshal([]byte(raw), &diag); err != nil {
		repaired, repErr := jsonrepair.RepairJSON(raw)
		if repErr != nil {
			return port.CropDiagnosis{}, fmt.Errorf("unparseable diagnosis: %w", repErr)
		}
		if err := json.Unmarshal([]byte(repaired), &diag); err != nil {
			return port.CropDiagnosis{}, fmt.Errorf("decode diagnosis: %w", err)
		}
	}

	if diag.Disease == "" {
		return port.CropDiagnosis{}, fmt.Errorf("diagnosis missing disease field")
	}
	if diag.Confidence < 0 || diag.Confidence > 1 {
		diag.Confidence = 0
	}
	return diag, nil
}
