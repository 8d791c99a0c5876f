package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/solacehq/solace-server/internal/api/respond"
	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/services"
)

// AssessmentHandler is a thin HTTP transport over AssessmentService.
type AssessmentHandler struct {
	svc *services.AssessmentService
}

func NewAssessmentHandler(svc *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// CreateAssessment POST /api/v1/assessment?profile_id={profileId}
func (h *AssessmentHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")
	if profileID == "" {
		respond.WriteBadRequest(w, "profile_id query parameter is required")
		return
	}
	var a model.Assessment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	a.ProfileID = profileID
	out, err := h.svc.CreateAssessment(r.Context(), &a)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetAssessment GET /api/v1/assessment/{assessmentId}
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetAssessment(r.Context(), mux.Vars(r)["assessmentId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListAssessmentsByProfile GET /api/v1/assessments/profile/{profileId}
func (h *AssessmentHandler) ListAssessmentsByProfile(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListAssessmentsByProfile(r.Context(), mux.Vars(r)["profileId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"assessments": as, "count": len(as)})
}
