package handlers

import (
	"net/http"
	"time"

	"aqua-backend/internal/services"
	"aqua-backend/internal/timeutil"
	"aqua-backend/pkg/utils"
)

// ReportHandler serves the read-only aggregation endpoints: dashboard,
// summary, business report, collection sheet and receivables.
type ReportHandler struct {
	Analytics   *services.AnalyticsService
	Collection  *services.CollectionService
	Receivable  *services.ReceivableService
}

func NewReportHandler(a *services.AnalyticsService, c *services.CollectionService, r *services.ReceivableService) *ReportHandler {
	return &ReportHandler{Analytics: a, Collection: c, Receivable: r}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Analytics.Dashboard(r.Context()))
}

// Summary serves the sales summary page data. Query parameter view
// selects the time series granularity (monthly|weekly|daily).
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = "monthly"
	}

	payload := map[string]any{
		"overview":     h.Analytics.Overview(r.Context()),
		"series":       h.Analytics.TimeSeries(r.Context(), view),
		"topProducts":  h.Analytics.TopProducts(r.Context(), 10),
		"topCustomers": h.Analytics.TopCustomers(r.Context(), 10),
		"categories":   h.Analytics.CategoryBreakdown(r.Context()),
	}

	utils.RespondJSON(w, http.StatusOK, payload)
}

func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Analytics.Report(r.Context()))
}

// CollectionSheet serves the daily collection sheet. Query parameter
// date (YYYY-MM-DD) defaults to today.
func (h *ReportHandler) CollectionSheet(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		date = t
	}

	utils.RespondJSON(w, http.StatusOK, h.Collection.Sheet(r.Context(), date))
}

func (h *ReportHandler) Receivables(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Receivable.Report(r.Context()))
}
