package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace-server/internal/model"
)

func validProfile() model.Profile {
	return model.Profile{
		Age:              25,
		Gender:           model.GenderFemale,
		Location:         "Chittagong",
		EmploymentStatus: model.EmploymentStudent,
	}
}

func longStory() string {
	return "My mother passed away six months ago after a long illness and I still think about her every single day."
}

func advanceTo(t *testing.T, m *Machine, target Step) {
	t.Helper()
	steps := []func() error{
		func() error { return m.SubmitProfile(validProfile()) },
		func() error {
			return m.SubmitLoss(model.RelationshipParent, model.CauseIllness, model.TimeSinceMonths)
		},
		func() error {
			return m.SubmitSupport(
				[]model.SupportSystem{model.SupportFamily},
				[]model.CopingMethod{model.CopingJournaling},
			)
		},
		func() error {
			return m.SubmitWellbeing(Wellbeing{SleepQuality: 3, EnergyLevel: 3})
		},
		func() error { return m.SubmitStory(longStory()) },
	}
	for m.Step() < target {
		require.NoError(t, steps[int(m.Step())-1]())
	}
}

func TestWizardHappyPath(t *testing.T) {
	m := New()
	assert.Equal(t, StepProfile, m.Step())

	advanceTo(t, m, stepDone)
	require.True(t, m.Done())

	a, err := m.Assessment("profile_abc")
	require.NoError(t, err)
	assert.Equal(t, "profile_abc", a.ProfileID)
	assert.Equal(t, 25, a.Age)
	assert.Equal(t, model.RelationshipParent, a.Relationship)
	assert.Equal(t, longStory(), a.Story)
	require.NoError(t, a.Validate())
}

func TestWizardInvalidSubmitDoesNotAdvance(t *testing.T) {
	m := New()
	p := validProfile()
	p.Age = -1
	err := m.SubmitProfile(p)
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Equal(t, StepProfile, m.Step())
}

func TestWizardRejectsOutOfOrderSubmits(t *testing.T) {
	m := New()
	err := m.SubmitStory(longStory())
	require.Error(t, err)
	assert.Equal(t, StepProfile, m.Step())

	advanceTo(t, m, StepWellbeing)
	require.Error(t, m.SubmitLoss(model.RelationshipParent, model.CauseIllness, model.TimeSinceMonths))
	assert.Equal(t, StepWellbeing, m.Step())
}

func TestWizardBackIsSingleStepAndPreservesDraft(t *testing.T) {
	m := New()
	advanceTo(t, m, StepSupport)

	m.Back()
	assert.Equal(t, StepLoss, m.Step())
	// Earlier answers survive the backward move.
	assert.Equal(t, model.RelationshipParent, m.Draft().Relationship)
	assert.Equal(t, 25, m.Draft().Profile.Age)

	// Resubmitting the loss step overwrites and moves forward again.
	require.NoError(t, m.SubmitLoss(model.RelationshipSibling, model.CauseAccident, model.TimeSinceDays))
	assert.Equal(t, StepSupport, m.Step())
	assert.Equal(t, model.RelationshipSibling, m.Draft().Relationship)
}

func TestWizardBackOnFirstStepIsNoOp(t *testing.T) {
	m := New()
	m.Back()
	assert.Equal(t, StepProfile, m.Step())
}

func TestWizardBackAfterCompletionIsNoOp(t *testing.T) {
	m := New()
	advanceTo(t, m, stepDone)
	m.Back()
	assert.True(t, m.Done())
}

func TestWizardStoryMinimumLength(t *testing.T) {
	m := New()
	advanceTo(t, m, StepStory)

	err := m.SubmitStory("too short")
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Equal(t, StepStory, m.Step())
}

func TestWizardAssessmentBeforeCompletionFails(t *testing.T) {
	m := New()
	advanceTo(t, m, StepStory)
	_, err := m.Assessment("profile_abc")
	require.Error(t, err)
}

func TestWizardWellbeingBounds(t *testing.T) {
	m := New()
	advanceTo(t, m, StepWellbeing)

	require.Error(t, m.SubmitWellbeing(Wellbeing{SleepQuality: 0, EnergyLevel: 3}))
	require.Error(t, m.SubmitWellbeing(Wellbeing{SleepQuality: 3, EnergyLevel: 6}))
	assert.Equal(t, StepWellbeing, m.Step())
}
