package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/solacehq/solace-server/internal/model"
)

// apiClient is a small resty wrapper over the service REST API.
type apiClient struct {
	http *resty.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			// Guide generation waits on several provider calls.
			SetTimeout(5 * time.Minute),
	}
}

func (c *apiClient) do(req *resty.Request, method, path string, out interface{}) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	if out != nil {
		return json.Unmarshal(resp.Body(), out)
	}
	return nil
}

func (c *apiClient) CreateProfile(p *model.Profile) (*model.Profile, error) {
	var out model.Profile
	err := c.do(c.http.R().SetBody(p), "POST", "/api/v1/profile", &out)
	return &out, err
}

func (c *apiClient) CreateAssessment(profileID string, a *model.Assessment) (*model.Assessment, error) {
	var out model.Assessment
	err := c.do(c.http.R().SetBody(a).SetQueryParam("profile_id", profileID),
		"POST", "/api/v1/assessment", &out)
	return &out, err
}

func (c *apiClient) GenerateGuide(profileID, assessmentID string) (*model.Guide, error) {
	var out model.Guide
	err := c.do(c.http.R().
		SetQueryParam("profile_id", profileID).
		SetQueryParam("assessment_id", assessmentID),
		"POST", "/api/v1/generate-guide", &out)
	return &out, err
}

func (c *apiClient) GetGuide(guideID string) (*model.Guide, error) {
	var out model.Guide
	err := c.do(c.http.R(), "GET", "/api/v1/guide/"+guideID, &out)
	return &out, err
}

func (c *apiClient) ListGuides(profileID string) ([]model.Guide, error) {
	var out struct {
		Guides []model.Guide `json:"guides"`
	}
	err := c.do(c.http.R(), "GET", "/api/v1/guides/profile/"+profileID, &out)
	return out.Guides, err
}

func (c *apiClient) DeleteGuide(guideID string) error {
	return c.do(c.http.R(), "DELETE", "/api/v1/guide/"+guideID, nil)
}

func (c *apiClient) AnalyzeMood(text string) (mood, emoji string, err error) {
	var out struct {
		Mood  string `json:"mood"`
		Emoji string `json:"emoji"`
	}
	err = c.do(c.http.R().SetBody(map[string]string{"text": text}),
		"POST", "/api/v1/analyze-mood", &out)
	return out.Mood, out.Emoji, err
}

func (c *apiClient) SaveRecord(a *model.Assessment) error {
	return c.do(c.http.R().SetBody(a), "POST", "/api/v1/profiles", nil)
}
