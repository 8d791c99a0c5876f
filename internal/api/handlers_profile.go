package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/solacehq/solace-server/internal/api/respond"
	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/services"
)

// ProfileHandler is a thin HTTP transport over ProfileService.
type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler { return &ProfileHandler{svc: svc} }

// CreateProfile POST /api/v1/profile
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var p model.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateProfile(r.Context(), &p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetProfile GET /api/v1/profile/{profileId}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetProfile(r.Context(), mux.Vars(r)["profileId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListProfiles GET /api/v1/profile
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListProfiles(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"profiles": ps, "count": len(ps)})
}

// UpdateProfile PUT /api/v1/profile/{profileId}
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p model.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	p.ProfileID = mux.Vars(r)["profileId"]
	out, err := h.svc.UpdateProfile(r.Context(), &p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteProfile DELETE /api/v1/profile/{profileId}
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProfile(r.Context(), mux.Vars(r)["profileId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
