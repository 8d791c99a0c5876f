// Package wizard models the five-step assessment intake as an explicit
// finite-state value: current step plus accumulated draft. Transitions are
// forward-on-valid-submit and single-step back; the assessment materializes
// only after the final step.
package wizard

import (
	"fmt"

	"github.com/solacehq/solace-server/internal/model"
)

// Step identifies a wizard state.
type Step int

const (
	StepProfile Step = iota + 1
	StepLoss
	StepSupport
	StepWellbeing
	StepStory
	stepDone
)

// TotalSteps is the number of user-facing steps.
const TotalSteps = 5

func (s Step) String() string {
	switch s {
	case StepProfile:
		return "profile"
	case StepLoss:
		return "loss"
	case StepSupport:
		return "support"
	case StepWellbeing:
		return "wellbeing"
	case StepStory:
		return "story"
	case stepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Draft accumulates fields across steps.
type Draft struct {
	Profile model.Profile

	Relationship  model.Relationship
	CauseOfDeath  model.CauseOfDeath
	TimeSinceLoss model.TimeSinceLoss

	CurrentSupport []model.SupportSystem
	CopingMethods  []model.CopingMethod

	SleepQuality            int
	AppetiteChanges         bool
	EnergyLevel             int
	SocialWithdrawal        bool
	DifficultyConcentrating bool
	PhysicalSymptoms        []string

	Story string
}

// Machine is the wizard state. The zero value is not usable; call New.
type Machine struct {
	step  Step
	draft Draft
}

// New starts a wizard at the profile step.
func New() *Machine {
	return &Machine{step: StepProfile}
}

// Step returns the current step.
func (m *Machine) Step() Step { return m.step }

// Draft returns a copy of the accumulated draft, for pre-filling forms
// after a backward transition.
func (m *Machine) Draft() Draft { return m.draft }

// Done reports whether the final step has been submitted.
func (m *Machine) Done() bool { return m.step == stepDone }

// Back moves one step backward. It is a no-op on the first step and after
// completion.
func (m *Machine) Back() {
	if m.step > StepProfile && m.step < stepDone {
		m.step--
	}
}

func (m *Machine) requireStep(s Step) error {
	if m.step != s {
		return fmt.Errorf("wizard is at step %s, not %s", m.step, s)
	}
	return nil
}

// SubmitProfile completes step 1.
func (m *Machine) SubmitProfile(p model.Profile) error {
	if err := m.requireStep(StepProfile); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	m.draft.Profile = p
	m.step = StepLoss
	return nil
}

// SubmitLoss completes step 2.
func (m *Machine) SubmitLoss(rel model.Relationship, cause model.CauseOfDeath, since model.TimeSinceLoss) error {
	if err := m.requireStep(StepLoss); err != nil {
		return err
	}
	if !rel.Valid() {
		return model.NewValidationError("relationship", "unrecognized value")
	}
	if !cause.Valid() {
		return model.NewValidationError("cause_of_death", "unrecognized value")
	}
	if !since.Valid() {
		return model.NewValidationError("time_since_loss", "unrecognized value")
	}
	m.draft.Relationship = rel
	m.draft.CauseOfDeath = cause
	m.draft.TimeSinceLoss = since
	m.step = StepSupport
	return nil
}

// SubmitSupport completes step 3. At least one entry is required on each list.
func (m *Machine) SubmitSupport(support []model.SupportSystem, coping []model.CopingMethod) error {
	if err := m.requireStep(StepSupport); err != nil {
		return err
	}
	if len(support) == 0 {
		return model.NewValidationError("current_support", "select at least one")
	}
	if len(coping) == 0 {
		return model.NewValidationError("coping_methods", "select at least one")
	}
	m.draft.CurrentSupport = support
	m.draft.CopingMethods = coping
	m.step = StepWellbeing
	return nil
}

// Wellbeing bundles the step-4 inputs.
type Wellbeing struct {
	SleepQuality            int
	AppetiteChanges         bool
	EnergyLevel             int
	SocialWithdrawal        bool
	DifficultyConcentrating bool
	PhysicalSymptoms        []string
}

// SubmitWellbeing completes step 4.
func (m *Machine) SubmitWellbeing(w Wellbeing) error {
	if err := m.requireStep(StepWellbeing); err != nil {
		return err
	}
	if w.SleepQuality < 1 || w.SleepQuality > 5 {
		return model.NewValidationError("sleep_quality", "must be between 1 and 5")
	}
	if w.EnergyLevel < 1 || w.EnergyLevel > 5 {
		return model.NewValidationError("energy_level", "must be between 1 and 5")
	}
	m.draft.SleepQuality = w.SleepQuality
	m.draft.AppetiteChanges = w.AppetiteChanges
	m.draft.EnergyLevel = w.EnergyLevel
	m.draft.SocialWithdrawal = w.SocialWithdrawal
	m.draft.DifficultyConcentrating = w.DifficultyConcentrating
	m.draft.PhysicalSymptoms = w.PhysicalSymptoms
	m.step = StepStory
	return nil
}

// MinStoryLength is the intake-enforced minimum for the story text.
const MinStoryLength = 50

// SubmitStory completes the final step.
func (m *Machine) SubmitStory(story string) error {
	if err := m.requireStep(StepStory); err != nil {
		return err
	}
	if len(story) < MinStoryLength {
		return model.NewValidationError("story", fmt.Sprintf("must be at least %d characters", MinStoryLength))
	}
	m.draft.Story = story
	m.step = stepDone
	return nil
}

// Assessment materializes the completed draft. It fails unless every step
// has been submitted.
func (m *Machine) Assessment(profileID string) (*model.Assessment, error) {
	if !m.Done() {
		return nil, fmt.Errorf("wizard incomplete: at step %s", m.step)
	}
	p := m.draft.Profile
	return &model.Assessment{
		ProfileID:               profileID,
		Age:                     p.Age,
		Gender:                  p.Gender,
		Location:                p.Location,
		EmploymentStatus:        p.EmploymentStatus,
		WorkSchedule:            p.WorkSchedule,
		Ethnicity:               p.Ethnicity,
		Relationship:            m.draft.Relationship,
		CauseOfDeath:            m.draft.CauseOfDeath,
		TimeSinceLoss:           m.draft.TimeSinceLoss,
		CurrentSupport:          m.draft.CurrentSupport,
		CopingMethods:           m.draft.CopingMethods,
		SleepQuality:            m.draft.SleepQuality,
		AppetiteChanges:         m.draft.AppetiteChanges,
		EnergyLevel:             m.draft.EnergyLevel,
		SocialWithdrawal:        m.draft.SocialWithdrawal,
		DifficultyConcentrating: m.draft.DifficultyConcentrating,
		PhysicalSymptoms:        m.draft.PhysicalSymptoms,
		Story:                   m.draft.Story,
	}, nil
}
