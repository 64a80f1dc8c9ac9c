package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/services"
	"aqua-backend/internal/timeutil"
	"aqua-backend/pkg/utils"
)

type SaleHandler struct {
	Service   *services.SaleService
	Analytics *services.AnalyticsService
}

func NewSaleHandler(s *services.SaleService, a *services.AnalyticsService) *SaleHandler {
	return &SaleHandler{Service: s, Analytics: a}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.Service.CreateSale(r.Context(), &req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Service.ListSales(r.Context()))
}

func (h *SaleHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	purchase, err := h.Service.CreatePurchase(r.Context(), &req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, purchase)
}

func (h *SaleHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Service.ListPurchases(r.Context()))
}

// Register serves the filtered sales register. Query parameters:
// start, end (YYYY-MM-DD), status (paid|pending|partial|all), q.
func (h *SaleHandler) Register(w http.ResponseWriter, r *http.Request) {
	filter := services.RegisterFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "start must be in YYYY-MM-DD format")
			return
		}
		filter.Start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, time.Local)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "end must be in YYYY-MM-DD format")
			return
		}
		filter.End = t
	}

	utils.RespondJSON(w, http.StatusOK, h.Analytics.Register(r.Context(), filter))
}
