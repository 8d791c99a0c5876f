package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/solacehq/solace-server/internal/api/respond"
	"github.com/solacehq/solace-server/internal/archive"
	"github.com/solacehq/solace-server/internal/model"
)

// ArchiveHandler exposes the flat-file record of completed assessments.
type ArchiveHandler struct {
	arc *archive.ProfileArchive
}

func NewArchiveHandler(arc *archive.ProfileArchive) *ArchiveHandler {
	return &ArchiveHandler{arc: arc}
}

// SaveRecord POST /api/v1/profiles
func (h *ArchiveHandler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var a model.Assessment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := a.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.arc.Save(&a); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

// ListRecords GET /api/v1/profiles
func (h *ArchiveHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.arc.List()
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"profiles": records, "count": len(records)})
}
