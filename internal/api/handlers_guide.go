package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/solacehq/solace-server/internal/api/respond"
	"github.com/solacehq/solace-server/internal/services"
)

// GuideHandler is a thin HTTP transport over GuideService.
type GuideHandler struct {
	svc *services.GuideService
}

func NewGuideHandler(svc *services.GuideService) *GuideHandler { return &GuideHandler{svc: svc} }

// GenerateGuide POST /api/v1/generate-guide?profile_id={profileId}&assessment_id={assessmentId}
func (h *GuideHandler) GenerateGuide(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	profileID, assessmentID := q.Get("profile_id"), q.Get("assessment_id")
	if profileID == "" || assessmentID == "" {
		respond.WriteBadRequest(w, "profile_id and assessment_id query parameters are required")
		return
	}
	out, err := h.svc.GenerateGuide(r.Context(), profileID, assessmentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetGuide GET /api/v1/guide/{guideId}
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetGuide(r.Context(), mux.Vars(r)["guideId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListGuidesByProfile GET /api/v1/guides/profile/{profileId}
func (h *GuideHandler) ListGuidesByProfile(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.ListGuidesByProfile(r.Context(), mux.Vars(r)["profileId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"guides": gs, "count": len(gs)})
}

// DeleteGuide DELETE /api/v1/guide/{guideId}
func (h *GuideHandler) DeleteGuide(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGuide(r.Context(), mux.Vars(r)["guideId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AnalyzeMood POST /api/v1/analyze-mood
func (h *GuideHandler) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	mood, emoji, err := h.svc.AnalyzeMood(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"mood": mood, "emoji": emoji})
}
