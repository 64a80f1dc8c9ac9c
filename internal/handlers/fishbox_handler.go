package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aqua-backend/internal/models"
	"aqua-backend/internal/services"
	"aqua-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type FishBoxHandler struct {
	Service *services.FishBoxService
}

func NewFishBoxHandler(s *services.FishBoxService) *FishBoxHandler {
	return &FishBoxHandler{Service: s}
}

func (h *FishBoxHandler) CreateFishBox(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFishBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	box, err := h.Service.Create(r.Context(), req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, box)
}

func (h *FishBoxHandler) GetFishBox(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	box := h.Service.Get(r.Context(), id)
	if box == nil {
		utils.RespondError(w, http.StatusNotFound, "Fish box not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, box)
}

// ListFishBoxes supports ?status=received|sent|in_stock;
// status=received also returns in-stock boxes (the received view).
func (h *FishBoxHandler) ListFishBoxes(w http.ResponseWriter, r *http.Request) {
	status := models.FishBoxStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		utils.RespondError(w, http.StatusBadRequest, "Invalid fish box status")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.Service.List(r.Context(), status))
}

func (h *FishBoxHandler) UpdateFishBox(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateFishBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	box, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrBoxAlreadySent) {
			status = http.StatusConflict
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	if box == nil {
		utils.RespondError(w, http.StatusNotFound, "Fish box not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, box)
}

// ShipFishBox dispatches a box to a customer.
func (h *FishBoxHandler) ShipFishBox(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		CustomerID string `json:"customerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	box, err := h.Service.Ship(r.Context(), id, req.CustomerID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrBoxAlreadySent) {
			status = http.StatusConflict
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	if box == nil {
		utils.RespondError(w, http.StatusNotFound, "Fish box not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, box)
}

func (h *FishBoxHandler) DeleteFishBox(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.Service.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *FishBoxHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Service.Stats(r.Context()))
}
