package handlers

import (
	"fmt"
	"net/http"
	"time"

	"aqua-backend/internal/services"
	"aqua-backend/internal/timeutil"
	"aqua-backend/pkg/utils"
)

type StatementHandler struct {
	Service *services.StatementService
}

func NewStatementHandler(s *services.StatementService) *StatementHandler {
	return &StatementHandler{Service: s}
}

func (h *StatementHandler) build(r *http.Request) (*services.StatementData, error) {
	customerID := r.URL.Query().Get("customer")
	if customerID == "" {
		return nil, fmt.Errorf("customer parameter is required")
	}

	var start, end time.Time
	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
		if err != nil {
			return nil, fmt.Errorf("start must be in YYYY-MM-DD format")
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
		if err != nil {
			return nil, fmt.Errorf("end must be in YYYY-MM-DD format")
		}
		end = t
	}

	return h.Service.Build(r.Context(), customerID, start, end)
}

// Statement serves the account statement as JSON. Query parameters:
// customer (required), start, end (YYYY-MM-DD).
func (h *StatementHandler) Statement(w http.ResponseWriter, r *http.Request) {
	data, err := h.build(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, data)
}

// StatementPDF serves the statement as a downloadable PDF.
func (h *StatementHandler) StatementPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.build(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pdf, err := h.Service.GeneratePDF(data)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	filename := fmt.Sprintf("statement_%s_%s.pdf", data.Customer.ID, data.PeriodEnd.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}

// StatementCSV serves the statement transaction history as CSV.
func (h *StatementHandler) StatementCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.build(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.Service.GenerateCSV(data)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("statement_%s_%s.csv", data.Customer.ID, data.PeriodEnd.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(out)
}
