package guide

import (
	"strings"

	"github.com/solacehq/solace-server/internal/model"
)

// Static rule tables keyed on assessment values. Threshold semantics are
// load-bearing: energy cut points at <=2 and <=4, sleep cut point at <=3,
// coping-strategy truncation keeps the first five in method-then-general order.

const (
	activityLow  = "Gentle stretching and short walks"
	activityMid  = "Daily 15-minute walks and light yoga"
	activityHigh = "Regular exercise including walks, yoga, or your preferred physical activity"

	mealPlanChangedAppetite = "Start with small, frequent meals. Focus on nutritious, easy-to-digest foods."
	mealPlanRegular         = "Maintain regular meal times with balanced nutrition."

	ritualFallback = "Develop a consistent bedtime routine"
)

var lowSleepRitual = []string{
	"Create a calm environment 1 hour before bed",
	"Practice deep breathing or gentle stretching",
	"Avoid screens 30 minutes before sleep",
}

func physicalActivity(a *model.Assessment) string {
	switch {
	case a.EnergyLevel <= 2:
		return activityLow
	case a.EnergyLevel <= 4:
		return activityMid
	default:
		return activityHigh
	}
}

func mealPlan(a *model.Assessment) string {
	if a.AppetiteChanges {
		return mealPlanChangedAppetite
	}
	return mealPlanRegular
}

func eveningRitual(a *model.Assessment) string {
	var components []string
	if a.SleepQuality <= 3 {
		components = append(components, lowSleepRitual...)
	}
	if hasCoping(a, model.CopingJournaling) {
		components = append(components, "Write in your journal")
	}
	if hasCoping(a, model.CopingMeditation) {
		components = append(components, "Practice a short meditation")
	}
	if len(components) == 0 {
		return ritualFallback
	}
	return strings.Join(components, " ")
}

var strategyByMethod = map[model.CopingMethod]string{
	model.CopingExercise:   "Regular physical activity",
	model.CopingMeditation: "Daily meditation practice",
	model.CopingJournaling: "Express feelings through writing",
	model.CopingArt:        "Creative expression through art",
	model.CopingNature:     "Time in nature",
}

var generalStrategies = []string{
	"Deep breathing exercises",
	"Connecting with others",
	"Self-compassion practice",
}

func copingStrategies(a *model.Assessment) []string {
	strategies := make([]string, 0, len(a.CopingMethods)+len(generalStrategies))
	for _, method := range a.CopingMethods {
		if s, mapped := strategyByMethod[method]; mapped {
			strategies = append(strategies, s)
		}
	}
	strategies = append(strategies, generalStrategies...)
	if len(strategies) > 5 {
		strategies = strategies[:5]
	}
	return strategies
}

func hasCoping(a *model.Assessment, m model.CopingMethod) bool {
	for _, c := range a.CopingMethods {
		if c == m {
			return true
		}
	}
	return false
}
