package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/wizard"
)

func init() {
	assessCmd := &cobra.Command{
		Use:   "assess",
		Short: "Run the interactive grief assessment and generate a guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(newAPIClient(apiFlag))
		},
	}
	rootCmd.AddCommand(assessCmd)
}

// runAssess walks the five-step intake, submits it to the service, and
// prints the generated guide.
func runAssess(client *apiClient) error {
	m := wizard.New()

	for !m.Done() {
		var err error
		switch m.Step() {
		case wizard.StepProfile:
			err = askProfile(m)
		case wizard.StepLoss:
			err = askLoss(m)
		case wizard.StepSupport:
			err = askSupport(m)
		case wizard.StepWellbeing:
			err = askWellbeing(m)
		case wizard.StepStory:
			err = askStory(m)
		}
		if err != nil {
			if model.IsValidationError(err) {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			return err
		}
	}

	return submitAndGenerate(client, m, os.Stdout)
}

// submitAndGenerate pushes a completed wizard through the service: profile,
// assessment, archive record, then guide generation and rendering.
func submitAndGenerate(client *apiClient, m *wizard.Machine, out io.Writer) error {
	draft := m.Draft()
	profile, err := client.CreateProfile(&draft.Profile)
	if err != nil {
		return err
	}

	assessment, err := m.Assessment(profile.ProfileID)
	if err != nil {
		return err
	}
	assessment, err = client.CreateAssessment(profile.ProfileID, assessment)
	if err != nil {
		return err
	}
	if err := client.SaveRecord(assessment); err != nil {
		return err
	}

	fmt.Fprintln(out, "Generating your personalized guide, this can take a minute...")
	guide, err := client.GenerateGuide(profile.ProfileID, assessment.AssessmentID)
	if err != nil {
		return err
	}
	printGuide(out, guide)
	return nil
}

// goBack runs a confirm prompt shared by every step after the first.
func goBack(m *wizard.Machine) bool {
	if m.Step() == wizard.StepProfile {
		return false
	}
	var proceed = true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Continue to the next step?").
			Affirmative("Continue").
			Negative("Go back").
			Value(&proceed),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return false
	}
	if !proceed {
		m.Back()
	}
	return !proceed
}

func intOptions(lo, hi int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}
	return opts
}

func enumOptions[T ~string](values []T) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func askProfile(m *wizard.Machine) error {
	draft := m.Draft().Profile
	ageStr := ""
	if draft.Age > 0 {
		ageStr = strconv.Itoa(draft.Age)
	}
	var schedule string
	if draft.WorkSchedule != nil {
		schedule = *draft.WorkSchedule
	}
	p := draft

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("How old are you?").
			Value(&ageStr).
			Validate(func(s string) error {
				_, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("enter a number")
				}
				return nil
			}),
		huh.NewSelect[model.Gender]().
			Title("Gender").
			Options(enumOptions(model.Genders)...).
			Value(&p.Gender),
		huh.NewInput().
			Title("Where do you live?").
			Value(&p.Location),
		huh.NewSelect[model.EmploymentStatus]().
			Title("Employment status").
			Options(enumOptions(model.EmploymentStatuses)...).
			Value(&p.EmploymentStatus),
		huh.NewInput().
			Title("Work schedule (optional)").
			Value(&schedule),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return err
	}

	p.Age, _ = strconv.Atoi(ageStr)
	if schedule != "" {
		p.WorkSchedule = &schedule
	} else {
		p.WorkSchedule = nil
	}
	return m.SubmitProfile(p)
}

func askLoss(m *wizard.Machine) error {
	rel := m.Draft().Relationship
	cause := m.Draft().CauseOfDeath
	since := m.Draft().TimeSinceLoss

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[model.Relationship]().
			Title("Who did you lose?").
			Options(enumOptions(model.Relationships)...).
			Value(&rel),
		huh.NewSelect[model.CauseOfDeath]().
			Title("Cause of their passing").
			Options(enumOptions(model.CausesOfDeath)...).
			Value(&cause),
		huh.NewSelect[model.TimeSinceLoss]().
			Title("How long ago?").
			Options(enumOptions(model.TimesSinceLoss)...).
			Value(&since),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return err
	}
	if goBack(m) {
		return nil
	}
	return m.SubmitLoss(rel, cause, since)
}

func askSupport(m *wizard.Machine) error {
	support := m.Draft().CurrentSupport
	coping := m.Draft().CopingMethods

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[model.SupportSystem]().
			Title("Who supports you right now?").
			Options(enumOptions(model.SupportSystems)...).
			Value(&support),
		huh.NewMultiSelect[model.CopingMethod]().
			Title("What helps you cope?").
			Options(enumOptions(model.CopingMethods)...).
			Value(&coping),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return err
	}
	if goBack(m) {
		return nil
	}
	return m.SubmitSupport(support, coping)
}

func askWellbeing(m *wizard.Machine) error {
	d := m.Draft()
	w := wizard.Wellbeing{
		SleepQuality:            d.SleepQuality,
		AppetiteChanges:         d.AppetiteChanges,
		EnergyLevel:             d.EnergyLevel,
		SocialWithdrawal:        d.SocialWithdrawal,
		DifficultyConcentrating: d.DifficultyConcentrating,
	}
	symptoms := strings.Join(d.PhysicalSymptoms, ", ")

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Sleep quality (1 poor - 5 good)").
			Options(intOptions(1, 5)...).
			Value(&w.SleepQuality),
		huh.NewSelect[int]().
			Title("Energy level (1 low - 5 high)").
			Options(intOptions(1, 5)...).
			Value(&w.EnergyLevel),
		huh.NewConfirm().
			Title("Has your appetite changed?").
			Value(&w.AppetiteChanges),
		huh.NewConfirm().
			Title("Have you been withdrawing from others?").
			Value(&w.SocialWithdrawal),
		huh.NewConfirm().
			Title("Difficulty concentrating?").
			Value(&w.DifficultyConcentrating),
		huh.NewInput().
			Title("Any physical symptoms? (comma separated, optional)").
			Value(&symptoms),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return err
	}
	if goBack(m) {
		return nil
	}
	w.PhysicalSymptoms = splitCommaList(symptoms)
	return m.SubmitWellbeing(w)
}

func askStory(m *wizard.Machine) error {
	story := m.Draft().Story

	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Tell us about your loss, in your own words").
			Description(fmt.Sprintf("At least %d characters. Take your time.", wizard.MinStoryLength)).
			Value(&story),
	)).WithTheme(solaceHuhTheme())
	if err := form.Run(); err != nil {
		return err
	}
	if goBack(m) {
		return nil
	}
	return m.SubmitStory(story)
}
