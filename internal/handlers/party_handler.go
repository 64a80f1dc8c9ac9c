package handlers

import (
	"encoding/json"
	"net/http"

	"aqua-backend/internal/models"
	"aqua-backend/internal/services"
	"aqua-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PartyHandler struct {
	Service *services.PartyService
}

func NewPartyHandler(s *services.PartyService) *PartyHandler {
	return &PartyHandler{Service: s}
}

func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	party, err := h.Service.CreateParty(r.Context(), &req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, party)
}

func (h *PartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	party, err := h.Service.GetParty(r.Context(), id)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, party)
}

// ListParties supports ?type=supplier|distributor.
func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	var parties []models.Party
	switch t := r.URL.Query().Get("type"); t {
	case "":
		parties = h.Service.ListParties(r.Context())
	case string(models.PartyTypeSupplier):
		parties = h.Service.Suppliers(r.Context())
	default:
		for _, p := range h.Service.ListParties(r.Context()) {
			if string(p.Type) == t {
				parties = append(parties, p)
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, parties)
}

func (h *PartyHandler) UpdateParty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	party, err := h.Service.UpdateParty(r.Context(), id, &req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if party == nil {
		utils.RespondError(w, http.StatusNotFound, "Party not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.Service.DeleteParty(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}
