package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/wizard"
)

// fakeService answers the endpoints the assess flow touches and records
// what it received.
type fakeService struct {
	profile    model.Profile
	assessment model.Assessment
	archived   int
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&f.profile)
		f.profile.ProfileID = "profile_fake"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&f.profile)
	})
	mux.HandleFunc("/api/v1/assessment", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&f.assessment)
		f.assessment.ProfileID = r.URL.Query().Get("profile_id")
		f.assessment.AssessmentID = "assessment_fake"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&f.assessment)
	})
	mux.HandleFunc("/api/v1/profiles", func(w http.ResponseWriter, r *http.Request) {
		f.archived++
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"saved"}`))
	})
	mux.HandleFunc("/api/v1/generate-guide", func(w http.ResponseWriter, r *http.Request) {
		g := model.Guide{
			GuideID:       "guide_fake",
			ProfileID:     r.URL.Query().Get("profile_id"),
			DetectedMood:  "hopeful",
			MoodEmoji:     model.MoodEmojis["hopeful"],
			Overview:      "A quiet place to begin.",
			WeeklyRoutine: model.EmptyWeeklySchedule(),
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(&g)
	})
	return mux
}

func completedWizard(t *testing.T) *wizard.Machine {
	t.Helper()
	m := wizard.New()
	require.NoError(t, m.SubmitProfile(model.Profile{
		Age: 31, Gender: model.GenderFemale, Location: "Khulna",
		EmploymentStatus: model.EmploymentEmployed,
	}))
	require.NoError(t, m.SubmitLoss(model.RelationshipParent, model.CauseIllness, model.TimeSinceMonths))
	require.NoError(t, m.SubmitSupport(
		[]model.SupportSystem{model.SupportFamily},
		[]model.CopingMethod{model.CopingJournaling},
	))
	require.NoError(t, m.SubmitWellbeing(wizard.Wellbeing{SleepQuality: 2, EnergyLevel: 2}))
	require.NoError(t, m.SubmitStory(strings.Repeat("My mother passed away in the spring. ", 3)))
	return m
}

func TestSubmitAndGeneratePostsDraftProfile(t *testing.T) {
	fake := &fakeService{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	m := completedWizard(t)
	var out bytes.Buffer
	require.NoError(t, submitAndGenerate(newAPIClient(srv.URL), m, &out))

	// The created profile carries the wizard draft's fields.
	assert.Equal(t, 31, fake.profile.Age)
	assert.Equal(t, "Khulna", fake.profile.Location)

	// The assessment is linked to the returned profile id and archived once.
	assert.Equal(t, "profile_fake", fake.assessment.ProfileID)
	assert.Equal(t, model.RelationshipParent, fake.assessment.Relationship)
	assert.Equal(t, 1, fake.archived)

	// The rendered guide reaches the writer.
	assert.Contains(t, out.String(), "hopeful")
	assert.Contains(t, out.String(), "A quiet place to begin.")
}

func TestSubmitAndGenerateSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Bad Gateway","code":502}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	m := completedWizard(t)
	err := submitAndGenerate(newAPIClient(srv.URL), m, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"headaches", "fatigue"}, splitCommaList(" headaches , fatigue ,"))
	assert.Nil(t, splitCommaList("  "))
}
