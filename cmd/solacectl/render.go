package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/solacehq/solace-server/internal/model"
)

var (
	colorAccent = lipgloss.Color("5")
	colorDim    = lipgloss.Color("8")

	headerStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(colorAccent)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// solaceHuhTheme restyles the base huh theme with the CLI palette.
func solaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = headerStyle
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.Description = dimStyle
	t.Blurred.Title = dimStyle
	return t
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// printGuide renders a generated guide for the terminal.
func printGuide(w io.Writer, g *model.Guide) {
	fmt.Fprintln(w, headerStyle.Render("Your Personalized Guide"))
	fmt.Fprintf(w, "%s %s %s\n\n", dimStyle.Render("Detected mood:"), g.DetectedMood, g.MoodEmoji)

	fmt.Fprintln(w, sectionStyle.Render("Overview"))
	fmt.Fprintln(w, g.Overview)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Weekly Routine"))
	printDay(w, "Monday", g.WeeklyRoutine.Monday)
	printDay(w, "Tuesday", g.WeeklyRoutine.Tuesday)
	printDay(w, "Wednesday", g.WeeklyRoutine.Wednesday)
	printDay(w, "Thursday", g.WeeklyRoutine.Thursday)
	printDay(w, "Friday", g.WeeklyRoutine.Friday)
	printDay(w, "Saturday", g.WeeklyRoutine.Saturday)
	printDay(w, "Sunday", g.WeeklyRoutine.Sunday)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Reflective Questions"))
	for _, q := range g.ReflectiveQuestions {
		fmt.Fprintf(w, "  - %s\n    %s\n", q.Question, dimStyle.Render(q.Context))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Daily Care"))
	fmt.Fprintf(w, "  Physical activity: %s\n", g.PhysicalActivity)
	fmt.Fprintf(w, "  Meals:             %s\n", g.MealPlan)
	fmt.Fprintf(w, "  Evenings:          %s\n", g.EveningRitual)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Coping Strategies"))
	for _, s := range g.CopingStrategies {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Resources"))
	for _, r := range g.Resources {
		fmt.Fprintf(w, "  - %s (%s)\n    %s\n", r.Title, r.Category, dimStyle.Render(r.Description))
		if r.URL != nil {
			fmt.Fprintf(w, "    %s\n", *r.URL)
		}
		if r.Contact != nil {
			fmt.Fprintf(w, "    %s\n", *r.Contact)
		}
	}
}

func printDay(w io.Writer, day string, acts []model.DailyActivity) {
	if len(acts) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", day)
	for _, a := range acts {
		fmt.Fprintf(w, "    %s: %s - %s\n", a.TimePeriod, a.Activity, a.Description)
	}
}
