package rest

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
)

// AdvisoryHandler serves the crop advisory and diagnosis endpoints.
type AdvisoryHandler struct {
	advisory *usecase.GetAdvisoryUseCase
	diagnose *usecase.DiagnoseCropUseCase
	logger   *slog.Logger
}

// NewAdvisoryHandler creates the advisory HTTP handler.
func NewAdvisoryHandler(
	advisory *usecase.GetAdvisoryUseCase,
	diagnose *usecase.DiagnoseCropUseCase,
	logger *slog.Logger,
) *AdvisoryHandler {
	return &AdvisoryHandler{advisory: advisory, diagnose: diagnose, logger: logger}
}

// RegisterRoutes attaches advisory routes to the given mux.
func (h *AdvisoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/farmers/{farmer_id}/advisory", h.getAdvisory)
	mux.HandleFunc("POST /api/v1/advisory/diagnose", h.diagnoseCrop)
}

// getAdvisory reads the field profile from query parameters:
// district, crops (comma separated), primary_crop and planting_date
// (YYYY-MM-DD).
func (h *AdvisoryHandler) getAdvisory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := dto.GetAdvisoryRequest{
		FarmerID:    r.PathValue("farmer_id"),
		District:    q.Get("district"),
		PrimaryCrop: q.Get("primary_crop"),
	}
	if crops := q.Get("crops"); crops != "" {
		for _, c := range strings.Split(crops, ",") {
			if c = strings.TrimSpace(c); c != "" {
				req.Crops = append(req.Crops, c)
			}
		}
	}
	if raw := q.Get("planting_date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD"})
			return
		}
		req.PlantingDate = d
	}

	resp, err := h.advisory.Execute(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AdvisoryHandler) diagnoseCrop(w http.ResponseWriter, r *http.Request) {
	var req dto.DiagnoseCropRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.diagnose.Execute(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
