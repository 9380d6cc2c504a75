package rest

import (
	"log/slog"
	"net/http"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
)

// MarketHandler serves the harvest sale and vendor directory endpoints.
type MarketHandler struct {
	match     *usecase.MatchHarvestUseCase
	vendors   *usecase.ListVendorsUseCase
	getVendor *usecase.GetVendorUseCase
	logger    *slog.Logger
}

// NewMarketHandler creates the marketplace HTTP handler.
func NewMarketHandler(
	match *usecase.MatchHarvestUseCase,
	vendors *usecase.ListVendorsUseCase,
	getVendor *usecase.GetVendorUseCase,
	logger *slog.Logger,
) *MarketHandler {
	return &MarketHandler{match: match, vendors: vendors, getVendor: getVendor, logger: logger}
}

// RegisterRoutes attaches marketplace routes to the given mux.
func (h *MarketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/harvests/match", h.matchHarvest)
	mux.HandleFunc("GET /api/v1/vendors", h.listVendors)
	mux.HandleFunc("GET /api/v1/vendors/{id}", h.getVendorByID)
}

func (h *MarketHandler) matchHarvest(w http.ResponseWriter, r *http.Request) {
	var req dto.MatchHarvestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.match.Execute(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *MarketHandler) listVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vendors, err := h.vendors.Execute(r.Context(), q.Get("crop"), q.Get("district"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vendors": vendors})
}

func (h *MarketHandler) getVendorByID(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.getVendor.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}
