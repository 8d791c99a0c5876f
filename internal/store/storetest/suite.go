package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Profiles: create/get round-trip
	p, err := s.Profiles().Create(ctx, &model.Profile{
		Age: 34, Gender: model.GenderFemale, Location: "Portland",
		EmploymentStatus: model.EmploymentEmployed,
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.ProfileID == "" {
		t.Fatalf("CreateProfile: empty id")
	}
	got, err := s.Profiles().Get(ctx, p.ProfileID)
	if err != nil || got.Age != 34 || got.Gender != model.GenderFemale || got.Location != "Portland" {
		t.Fatalf("GetProfile: got=%+v err=%v", got, err)
	}

	// Unknown id fails with ErrNotFound
	if _, err := s.Profiles().Get(ctx, "profile_missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetProfile unknown: want ErrNotFound, got %v", err)
	}

	// Update requires pre-existence
	got.Location = "Salem"
	if upd, err := s.Profiles().Update(ctx, got); err != nil || upd.Location != "Salem" {
		t.Fatalf("UpdateProfile: got=%+v err=%v", upd, err)
	}
	missing := *got
	missing.ProfileID = "profile_missing"
	if _, err := s.Profiles().Update(ctx, &missing); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateProfile unknown: want ErrNotFound, got %v", err)
	}

	if lst, err := s.Profiles().List(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListProfiles: n=%d err=%v", len(lst), err)
	}

	// Assessments: create links to profile
	a, err := s.Assessments().Create(ctx, &model.Assessment{
		ProfileID: p.ProfileID,
		Age:       34, Gender: model.GenderFemale, Location: "Portland",
		EmploymentStatus: model.EmploymentEmployed,
		Relationship:     model.RelationshipSpouse,
		CauseOfDeath:     model.CauseAccident,
		TimeSinceLoss:    model.TimeSinceWeeks,
		CurrentSupport:   []model.SupportSystem{model.SupportFamily, model.SupportFriends},
		CopingMethods:    []model.CopingMethod{model.CopingJournaling},
		SleepQuality:     2, EnergyLevel: 1,
		AppetiteChanges: true, SocialWithdrawal: true,
		PhysicalSymptoms: []string{"fatigue"},
		Story:            "We were married for eleven years.",
	})
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	if a.AssessmentID == "" {
		t.Fatalf("CreateAssessment: empty id")
	}
	if ga, err := s.Assessments().Get(ctx, a.AssessmentID); err != nil || ga.Story != a.Story || len(ga.CurrentSupport) != 2 {
		t.Fatalf("GetAssessment: got=%+v err=%v", ga, err)
	}
	if _, err := s.Assessments().Get(ctx, "assessment_missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetAssessment unknown: want ErrNotFound, got %v", err)
	}
	if lst, err := s.Assessments().ListByProfile(ctx, p.ProfileID); err != nil || len(lst) != 1 {
		t.Fatalf("ListAssessmentsByProfile: n=%d err=%v", len(lst), err)
	}
	// Unknown profile yields an empty slice, not an error
	if lst, err := s.Assessments().ListByProfile(ctx, "profile_missing"); err != nil || len(lst) != 0 {
		t.Fatalf("ListAssessmentsByProfile unknown: n=%d err=%v", len(lst), err)
	}

	// Guides: create, list by profile, delete with back-reference cleanup
	g1, err := s.Guides().Create(ctx, sampleGuide(p.ProfileID))
	if err != nil {
		t.Fatalf("CreateGuide g1: %v", err)
	}
	g2, err := s.Guides().Create(ctx, sampleGuide(p.ProfileID))
	if err != nil {
		t.Fatalf("CreateGuide g2: %v", err)
	}
	if g1.GuideID == g2.GuideID {
		t.Fatalf("CreateGuide: duplicate ids")
	}
	if gg, err := s.Guides().Get(ctx, g1.GuideID); err != nil || gg.DetectedMood != "hopeful" {
		t.Fatalf("GetGuide: got=%+v err=%v", gg, err)
	}
	if lst, err := s.Guides().ListByProfile(ctx, p.ProfileID); err != nil || len(lst) != 2 {
		t.Fatalf("ListGuidesByProfile: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Guides().ListByProfile(ctx, "profile_missing"); err != nil || len(lst) != 0 {
		t.Fatalf("ListGuidesByProfile unknown: n=%d err=%v", len(lst), err)
	}

	if err := s.Guides().Delete(ctx, g1.GuideID); err != nil {
		t.Fatalf("DeleteGuide: %v", err)
	}
	if _, err := s.Guides().Get(ctx, g1.GuideID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetGuide after delete: want ErrNotFound, got %v", err)
	}
	if lst, err := s.Guides().ListByProfile(ctx, p.ProfileID); err != nil || len(lst) != 1 {
		t.Fatalf("ListGuidesByProfile after delete: n=%d err=%v", len(lst), err)
	}
	// Deleting an already-deleted id fails, not idempotent success
	if err := s.Guides().Delete(ctx, g1.GuideID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteGuide twice: want ErrNotFound, got %v", err)
	}

	// Profile delete requires pre-existence
	if err := s.Profiles().Delete(ctx, p.ProfileID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if err := s.Profiles().Delete(ctx, p.ProfileID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteProfile twice: want ErrNotFound, got %v", err)
	}
}

func sampleGuide(profileID string) *model.Guide {
	contact := "555-0123"
	return &model.Guide{
		ProfileID:     profileID,
		DetectedMood:  "hopeful",
		MoodEmoji:     model.MoodEmojis["hopeful"],
		Overview:      "A quiet place to begin.",
		WeeklyRoutine: model.EmptyWeeklySchedule(),
		ReflectiveQuestions: []model.ReflectiveQuestion{{
			Question:         model.ReflectivePrompts[0],
			Context:          "Reflecting on positive memories can help",
			SuggestedPrompts: []string{"Think about a happy moment"},
		}},
		PhysicalActivity: "Daily 15-minute walks and light yoga",
		MealPlan:         "Maintain regular meal times with balanced nutrition.",
		EveningRitual:    "Develop a consistent bedtime routine",
		Resources: []model.Resource{{
			Title:       "Local Grief Support Group",
			Description: "Weekly meetings for those experiencing loss",
			Category:    "Support Groups",
			Contact:     &contact,
		}},
		CopingStrategies: []string{"Deep breathing exercises"},
	}
}
