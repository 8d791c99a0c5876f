package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAssessment() *Assessment {
	return &Assessment{
		Age:              25,
		Gender:           GenderMale,
		Location:         "Dhaka",
		EmploymentStatus: EmploymentEmployed,
		Relationship:     RelationshipParent,
		CauseOfDeath:     CauseIllness,
		TimeSinceLoss:    TimeSinceMonths,
		CurrentSupport:   []SupportSystem{SupportFamily},
		CopingMethods:    []CopingMethod{CopingExercise},
		SleepQuality:     3,
		EnergyLevel:      2,
		Story:            "My father passed away three months ago.",
	}
}

func TestProfileValidate(t *testing.T) {
	p := &Profile{Age: 25, Gender: GenderFemale, Location: "Austin", EmploymentStatus: EmploymentStudent}
	require.NoError(t, p.Validate())

	p.Age = 151
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	p.Age = 25
	p.Gender = "Unknown"
	assert.Error(t, p.Validate())

	p.Gender = GenderFemale
	p.Location = ""
	assert.Error(t, p.Validate())
}

func TestAssessmentValidate(t *testing.T) {
	require.NoError(t, validAssessment().Validate())

	cases := []struct {
		name   string
		mutate func(*Assessment)
	}{
		{"sleep quality low", func(a *Assessment) { a.SleepQuality = 0 }},
		{"sleep quality high", func(a *Assessment) { a.SleepQuality = 6 }},
		{"energy level low", func(a *Assessment) { a.EnergyLevel = 0 }},
		{"no support", func(a *Assessment) { a.CurrentSupport = nil }},
		{"no coping methods", func(a *Assessment) { a.CopingMethods = nil }},
		{"bad coping method", func(a *Assessment) { a.CopingMethods = []CopingMethod{"Screaming"} }},
		{"empty story", func(a *Assessment) { a.Story = "" }},
		{"bad relationship", func(a *Assessment) { a.Relationship = "Acquaintance" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAssessment()
			tc.mutate(a)
			err := a.Validate()
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestMoodEmojis(t *testing.T) {
	for _, mood := range Moods {
		if _, ok := MoodEmojis[mood]; !ok {
			t.Fatalf("mood %q has no emoji", mood)
		}
	}
	assert.Len(t, Moods, 8)
}
