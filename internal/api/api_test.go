package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace-server/internal/archive"
	"github.com/solacehq/solace-server/internal/llm"
	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store/memory"
)

// cannedLLM answers each pipeline prompt with a fixed, parseable response.
type cannedLLM struct {
	fail bool
}

func (c *cannedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if c.fail {
		return "", llm.ErrUnavailable
	}
	switch {
	case strings.Contains(prompt, "overview"):
		return "A gentle overview of the weeks ahead.", nil
	case strings.Contains(prompt, "weekly routine"):
		return `{"monday": [{"time_period": "Morning", "activity": "Walk", "description": "Short walk"}],
		  "tuesday": [], "wednesday": [], "thursday": [], "friday": [], "saturday": [], "sunday": []}`, nil
	case strings.Contains(prompt, "reflective questions"):
		return `[{"question": "Q", "context": "C", "suggested_prompts": ["P"]}]`, nil
	case strings.Contains(prompt, "support resources"):
		return `[{"title": "T", "description": "D", "category": "Support Groups"}]`, nil
	case strings.Contains(prompt, "emotional state"):
		return "hopeful", nil
	}
	return "", fmt.Errorf("unexpected prompt")
}

func newTestServer(t *testing.T, client llm.Client) *httptest.Server {
	t.Helper()
	arc, err := archive.New(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, err)

	router := NewRouter(Deps{
		Store:   memory.New(),
		LLM:     client,
		Archive: arc,
		Logger:  zerolog.Nop(),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	out := map[string]json.RawMessage{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func profileBody() map[string]interface{} {
	return map[string]interface{}{
		"age":               25,
		"gender":            "Male",
		"location":          "Dhaka",
		"employment_status": "Employed",
		"work_schedule":     "9 to 5",
	}
}

func assessmentBody() map[string]interface{} {
	return map[string]interface{}{
		"age":               25,
		"gender":            "Male",
		"location":          "Dhaka",
		"employment_status": "Employed",
		"relationship":      "Parent",
		"cause_of_death":    "Illness",
		"time_since_loss":   "Months",
		"current_support":   []string{"Family"},
		"coping_methods":    []string{"Journaling"},
		"sleep_quality":     2,
		"appetite_changes":  true,
		"energy_level":      2,
		"story":             "My father passed away three months ago.",
	}
}

func createProfile(t *testing.T, base string) string {
	resp, out := doJSON(t, "POST", base+"/api/v1/profile", profileBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var id string
	require.NoError(t, json.Unmarshal(out["profile_id"], &id))
	require.True(t, strings.HasPrefix(id, "profile_"))
	return id
}

func createAssessment(t *testing.T, base, profileID string) string {
	resp, out := doJSON(t, "POST", base+"/api/v1/assessment?profile_id="+profileID, assessmentBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var id string
	require.NoError(t, json.Unmarshal(out["assessment_id"], &id))
	return id
}

func TestProfileLifecycle(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	id := createProfile(t, srv.URL)

	resp, out := doJSON(t, "GET", srv.URL+"/api/v1/profile/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loc string
	require.NoError(t, json.Unmarshal(out["location"], &loc))
	assert.Equal(t, "Dhaka", loc)

	updated := profileBody()
	updated["location"] = "Chittagong"
	resp, out = doJSON(t, "PUT", srv.URL+"/api/v1/profile/"+id, updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(out["location"], &loc))
	assert.Equal(t, "Chittagong", loc)

	resp, _ = doJSON(t, "DELETE", srv.URL+"/api/v1/profile/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, "GET", srv.URL+"/api/v1/profile/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProfileValidationFails(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	body := profileBody()
	body["age"] = 200
	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/profile", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateAssessmentRequiresExistingProfile(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/assessment?profile_id=profile_missing", assessmentBody())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAssessmentRequiresProfileIDParam(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/assessment", assessmentBody())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAssessmentsByProfileEmptyIsOK(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	resp, out := doJSON(t, "GET", srv.URL+"/api/v1/assessments/profile/profile_missing", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count int
	require.NoError(t, json.Unmarshal(out["count"], &count))
	assert.Equal(t, 0, count)
}

func TestGenerateGuideEndToEnd(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	pid := createProfile(t, srv.URL)
	aid := createAssessment(t, srv.URL, pid)

	resp, out := doJSON(t, "POST",
		srv.URL+"/api/v1/generate-guide?profile_id="+pid+"&assessment_id="+aid, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var g model.Guide
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &g))
	assert.True(t, strings.HasPrefix(g.GuideID, "guide_"))
	assert.Equal(t, pid, g.ProfileID)
	assert.Equal(t, "hopeful", g.DetectedMood)
	assert.Equal(t, model.MoodEmojis["hopeful"], g.MoodEmoji)
	assert.NotEmpty(t, g.Overview)
	assert.Len(t, g.WeeklyRoutine.Monday, 1)
	assert.NotEmpty(t, g.CopingStrategies)

	// The stored copy is retrievable and listed under the profile.
	resp, _ = doJSON(t, "GET", srv.URL+"/api/v1/guide/"+g.GuideID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, listOut := doJSON(t, "GET", srv.URL+"/api/v1/guides/profile/"+pid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count int
	require.NoError(t, json.Unmarshal(listOut["count"], &count))
	assert.Equal(t, 1, count)
}

func TestGenerateGuideMismatchedAssessmentIs404(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	pid1 := createProfile(t, srv.URL)
	pid2 := createProfile(t, srv.URL)
	aid := createAssessment(t, srv.URL, pid1)

	resp, _ := doJSON(t, "POST",
		srv.URL+"/api/v1/generate-guide?profile_id="+pid2+"&assessment_id="+aid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateGuideUpstreamFailureIs502(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{fail: true})
	pid := createProfile(t, srv.URL)
	aid := createAssessment(t, srv.URL, pid)

	resp, out := doJSON(t, "POST",
		srv.URL+"/api/v1/generate-guide?profile_id="+pid+"&assessment_id="+aid, nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// The body carries the generic retry message, not provider internals.
	var msg string
	require.NoError(t, json.Unmarshal(out["message"], &msg))
	assert.Equal(t, upstreamMessage, msg)
}

func TestDeleteGuide(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	pid := createProfile(t, srv.URL)
	aid := createAssessment(t, srv.URL, pid)

	resp, out := doJSON(t, "POST",
		srv.URL+"/api/v1/generate-guide?profile_id="+pid+"&assessment_id="+aid, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var gid string
	require.NoError(t, json.Unmarshal(out["id"], &gid))

	resp, _ = doJSON(t, "DELETE", srv.URL+"/api/v1/guide/"+gid, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, "DELETE", srv.URL+"/api/v1/guide/"+gid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnalyzeMood(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})

	resp, out := doJSON(t, "POST", srv.URL+"/api/v1/analyze-mood",
		map[string]string{"text": "I feel like things may get better"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mood, emoji string
	require.NoError(t, json.Unmarshal(out["mood"], &mood))
	require.NoError(t, json.Unmarshal(out["emoji"], &emoji))
	assert.Equal(t, "hopeful", mood)
	assert.Equal(t, model.MoodEmojis["hopeful"], emoji)
}

func TestAnalyzeMoodEmptyTextIs400(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/analyze-mood", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestArchiveSaveAndList(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})

	resp, _ := doJSON(t, "POST", srv.URL+"/api/v1/profiles", assessmentBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, "POST", srv.URL+"/api/v1/profiles", assessmentBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, out := doJSON(t, "GET", srv.URL+"/api/v1/profiles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count int
	require.NoError(t, json.Unmarshal(out["count"], &count))
	assert.Equal(t, 2, count)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &cannedLLM{})
	resp, out := doJSON(t, "GET", srv.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status string
	require.NoError(t, json.Unmarshal(out["status"], &status))
	assert.Equal(t, "healthy", status)
}
