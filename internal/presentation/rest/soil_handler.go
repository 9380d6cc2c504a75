package rest

import (
	"log/slog"
	"net/http"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
)

// SoilHandler serves the soil analysis endpoints.
type SoilHandler struct {
	analyze *usecase.AnalyzeSoilUseCase
	get     *usecase.GetSoilReportUseCase
	logger  *slog.Logger
}

// NewSoilHandler creates the soil HTTP handler.
func NewSoilHandler(
	analyze *usecase.AnalyzeSoilUseCase,
	get *usecase.GetSoilReportUseCase,
	logger *slog.Logger,
) *SoilHandler {
	return &SoilHandler{analyze: analyze, get: get, logger: logger}
}

// RegisterRoutes attaches soil routes to the given mux.
func (h *SoilHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/soil/analyze", h.analyzeSoil)
	mux.HandleFunc("GET /api/v1/soil/reports/{id}", h.getReport)
	mux.HandleFunc("GET /api/v1/farmers/{farmer_id}/soil/reports", h.history)
}

func (h *SoilHandler) analyzeSoil(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeSoilRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.analyze.Execute(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *SoilHandler) getReport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.get.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SoilHandler) history(w http.ResponseWriter, r *http.Request) {
	reports, err := h.get.History(r.Context(), r.PathValue("farmer_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}
