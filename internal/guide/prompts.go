package guide

import (
	"fmt"
	"strings"

	"github.com/solacehq/solace-server/internal/model"
)

func overviewPrompt(a *model.Assessment) string {
	return fmt.Sprintf(`Create a compassionate and personalized overview for someone grieving. Consider:
- They lost their %s
- Cause: %s
- Time since loss: %s
- Current support: %s
- Their story: %s

Write a 2-3 paragraph overview that validates their feelings and offers hope.`,
		a.Relationship, a.CauseOfDeath, a.TimeSinceLoss, joinSupport(a.CurrentSupport), a.Story)
}

func routinePrompt(p *model.Profile, a *model.Assessment) string {
	schedule := ""
	if p.WorkSchedule != nil {
		schedule = *p.WorkSchedule
	}
	return fmt.Sprintf(`Create a structured weekly routine for someone grieving. Consider:
- Their work schedule: %s
- Their energy level: %d/5
- Their sleep quality: %d/5
- Their current coping methods: %s

Return the routine as a JSON object with days of the week as keys, and arrays of activity objects with 'time_period', 'activity' and 'description' fields.`,
		schedule, a.EnergyLevel, a.SleepQuality, joinCoping(a.CopingMethods))
}

func questionsPrompt(a *model.Assessment) string {
	return fmt.Sprintf(`Generate 3 reflective questions that would be helpful for someone who:
- Lost their %s
- Is experiencing grief for %s
- Has these coping methods: %s

Return as a JSON array of question objects with 'question', 'context', and 'suggested_prompts' fields.`,
		a.Relationship, a.TimeSinceLoss, joinCoping(a.CopingMethods))
}

func resourcesPrompt(p *model.Profile, a *model.Assessment) string {
	return fmt.Sprintf(`Suggest grief support resources for someone who:
- Lives in %s
- Lost their %s
- Has support from: %s

Return as a JSON array of resource objects with 'title', 'description', 'category', and optional 'contact' fields.`,
		p.Location, a.Relationship, joinSupport(a.CurrentSupport))
}

func moodPrompt(text string) string {
	return fmt.Sprintf(`Analyze the emotional state in this text and categorize it into one of these moods: %s. Return only the mood word.

Text: %s`, strings.Join(model.Moods, ", "), text)
}

func joinSupport(ss []model.SupportSystem) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinCoping(ms []model.CopingMethod) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
