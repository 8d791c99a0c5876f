package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/solacehq/solace-server/internal/api/recovery"
	"github.com/solacehq/solace-server/internal/archive"
	"github.com/solacehq/solace-server/internal/guide"
	"github.com/solacehq/solace-server/internal/llm"
	"github.com/solacehq/solace-server/internal/services"
	"github.com/solacehq/solace-server/internal/store"
)

// Deps carries everything the router needs to assemble handlers.
type Deps struct {
	Store   store.Store
	LLM     llm.Client
	Archive *archive.ProfileArchive
	Logger  zerolog.Logger

	// IsHealthy backs GET /api/health. Nil means always healthy.
	IsHealthy func() bool
}

// NewRouter wires services and handlers onto a mux router.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	gen := guide.New(d.LLM, d.Logger)

	profileSvc := services.NewProfileService(d.Store)
	assessSvc := services.NewAssessmentService(d.Store)
	guideSvc := services.NewGuideService(d.Store, gen)

	healthHandler := NewHealthHandler(d.IsHealthy)
	profileHandler := NewProfileHandler(profileSvc)
	assessHandler := NewAssessmentHandler(assessSvc)
	guideHandler := NewGuideHandler(guideSvc)

	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	v1 := router.PathPrefix("/api/v1").Subrouter()

	// Profile endpoints
	v1.HandleFunc("/profile", profileHandler.CreateProfile).Methods("POST")
	v1.HandleFunc("/profile", profileHandler.ListProfiles).Methods("GET")
	v1.HandleFunc("/profile/{profileId}", profileHandler.GetProfile).Methods("GET")
	v1.HandleFunc("/profile/{profileId}", profileHandler.UpdateProfile).Methods("PUT")
	v1.HandleFunc("/profile/{profileId}", profileHandler.DeleteProfile).Methods("DELETE")

	// Assessment endpoints
	v1.HandleFunc("/assessment", assessHandler.CreateAssessment).Methods("POST")
	v1.HandleFunc("/assessment/{assessmentId}", assessHandler.GetAssessment).Methods("GET")
	v1.HandleFunc("/assessments/profile/{profileId}", assessHandler.ListAssessmentsByProfile).Methods("GET")

	// Guide endpoints
	v1.HandleFunc("/generate-guide", guideHandler.GenerateGuide).Methods("POST")
	v1.HandleFunc("/guide/{guideId}", guideHandler.GetGuide).Methods("GET")
	v1.HandleFunc("/guide/{guideId}", guideHandler.DeleteGuide).Methods("DELETE")
	v1.HandleFunc("/guides/profile/{profileId}", guideHandler.ListGuidesByProfile).Methods("GET")
	v1.HandleFunc("/analyze-mood", guideHandler.AnalyzeMood).Methods("POST")

	// Flat-file archive of completed assessments
	if d.Archive != nil {
		archiveHandler := NewArchiveHandler(d.Archive)
		v1.HandleFunc("/profiles", archiveHandler.SaveRecord).Methods("POST")
		v1.HandleFunc("/profiles", archiveHandler.ListRecords).Methods("GET")
	}

	return router
}
