package rest

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/usecase"
)

// LoanHandler serves the microloan origination and servicing endpoints.
type LoanHandler struct {
	apply    *usecase.ApplyForLoanUseCase
	disburse *usecase.DisburseLoanUseCase
	repay    *usecase.RecordRepaymentUseCase
	get      *usecase.GetLoanUseCase
	logger   *slog.Logger
}

// NewLoanHandler creates the loan HTTP handler.
func NewLoanHandler(
	apply *usecase.ApplyForLoanUseCase,
	disburse *usecase.DisburseLoanUseCase,
	repay *usecase.RecordRepaymentUseCase,
	get *usecase.GetLoanUseCase,
	logger *slog.Logger,
) *LoanHandler {
	return &LoanHandler{
		apply:    apply,
		disburse: disburse,
		repay:    repay,
		get:      get,
		logger:   logger,
	}
}

// RegisterRoutes attaches loan routes to the given mux.
func (h *LoanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/loans/applications", h.applyForLoan)
	mux.HandleFunc("POST /api/v1/loans/applications/{id}/disburse", h.disburseLoan)
	mux.HandleFunc("POST /api/v1/loans/{id}/repayments", h.recordRepayment)
	mux.HandleFunc("GET /api/v1/loans/{id}", h.getLoan)
	mux.HandleFunc("GET /api/v1/loans/{id}/schedule", h.getSchedule)
	mux.HandleFunc("GET /api/v1/farmers/{farmer_id}/loans", h.listLoans)
}

func (h *LoanHandler) applyForLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyForLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.apply.Execute(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *LoanHandler) disburseLoan(w http.ResponseWriter, r *http.Request) {
	resp, err := h.disburse.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *LoanHandler) recordRepayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := h.repay.Execute(r.Context(), dto.RecordRepaymentRequest{
		LoanID: r.PathValue("id"),
		Amount: body.Amount,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LoanHandler) getLoan(w http.ResponseWriter, r *http.Request) {
	resp, err := h.get.Execute(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LoanHandler) getSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.get.Schedule(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedule": schedule})
}

func (h *LoanHandler) listLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.get.ByFarmer(r.Context(), r.PathValue("farmer_id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loans": loans})
}
