package guide

import (
	"encoding/json"
	"strings"

	"github.com/solacehq/solace-server/internal/model"
)

// result holds a parse-or-fallback sub-step outcome. The degradation path
// stays explicit: callers can see whether the value came from the provider
// or from the static default.
type result[T any] struct {
	Value    T
	FellBack bool
}

func ok[T any](v T) result[T]       { return result[T]{Value: v} }
func fellBack[T any](v T) result[T] { return result[T]{Value: v, FellBack: true} }

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// parseRoutine expects a JSON object keyed by the seven weekdays, each value
// an ordered list of activities. Any malformed JSON, missing day, or activity
// missing a required field degrades to an all-empty seven-day schedule.
func parseRoutine(raw string) result[model.WeeklySchedule] {
	empty := model.EmptyWeeklySchedule()

	blob := extractJSONBlock(stripCodeFences(raw), '{', '}')
	if blob == "" {
		return fellBack(empty)
	}

	var days map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &days); err != nil {
		return fellBack(empty)
	}

	parsed := make(map[string][]model.DailyActivity, len(weekdays))
	for _, day := range weekdays {
		rawDay, present := days[day]
		if !present {
			return fellBack(empty)
		}
		activities, valid := parseActivities(rawDay)
		if !valid {
			return fellBack(empty)
		}
		parsed[day] = activities
	}

	return ok(model.WeeklySchedule{
		Monday:    parsed["monday"],
		Tuesday:   parsed["tuesday"],
		Wednesday: parsed["wednesday"],
		Thursday:  parsed["thursday"],
		Friday:    parsed["friday"],
		Saturday:  parsed["saturday"],
		Sunday:    parsed["sunday"],
	})
}

func parseActivities(raw json.RawMessage) ([]model.DailyActivity, bool) {
	var items []struct {
		TimePeriod  *string `json:"time_period"`
		Activity    *string `json:"activity"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	out := make([]model.DailyActivity, 0, len(items))
	for _, it := range items {
		if it.TimePeriod == nil || it.Activity == nil || it.Description == nil {
			return nil, false
		}
		out = append(out, model.DailyActivity{
			TimePeriod:  *it.TimePeriod,
			Activity:    *it.Activity,
			Description: *it.Description,
		})
	}
	return out, true
}

// parseQuestions expects a JSON array of question objects. Failure degrades
// to a single canned question with two placeholder prompts.
func parseQuestions(raw string) result[[]model.ReflectiveQuestion] {
	fallback := []model.ReflectiveQuestion{{
		Question:         model.ReflectivePrompts[0],
		Context:          "This question helps process memories",
		SuggestedPrompts: []string{"Think about...", "Remember when..."},
	}}

	blob := extractJSONBlock(stripCodeFences(raw), '[', ']')
	if blob == "" {
		return fellBack(fallback)
	}

	var items []struct {
		Question         *string  `json:"question"`
		Context          *string  `json:"context"`
		SuggestedPrompts []string `json:"suggested_prompts"`
	}
	if err := json.Unmarshal([]byte(blob), &items); err != nil || len(items) == 0 {
		return fellBack(fallback)
	}

	out := make([]model.ReflectiveQuestion, 0, len(items))
	for _, it := range items {
		if it.Question == nil || it.Context == nil || it.SuggestedPrompts == nil {
			return fellBack(fallback)
		}
		out = append(out, model.ReflectiveQuestion{
			Question:         *it.Question,
			Context:          *it.Context,
			SuggestedPrompts: it.SuggestedPrompts,
		})
	}
	return ok(out)
}

// parseResources expects a JSON array of resource objects. Failure degrades
// to a single canned crisis-hotline resource.
func parseResources(raw string) result[[]model.Resource] {
	hotline := "1-800-XXX-XXXX"
	fallback := []model.Resource{{
		Title:       "Grief Support Hotline",
		Description: "24/7 support line for those experiencing grief",
		Category:    "Crisis Support",
		Contact:     &hotline,
	}}

	blob := extractJSONBlock(stripCodeFences(raw), '[', ']')
	if blob == "" {
		return fellBack(fallback)
	}

	var items []struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		URL         *string `json:"url"`
		Contact     *string `json:"contact"`
	}
	if err := json.Unmarshal([]byte(blob), &items); err != nil || len(items) == 0 {
		return fellBack(fallback)
	}

	out := make([]model.Resource, 0, len(items))
	for _, it := range items {
		if it.Title == nil || it.Description == nil || it.Category == nil {
			return fellBack(fallback)
		}
		out = append(out, model.Resource{
			Title:       *it.Title,
			Description: *it.Description,
			Category:    *it.Category,
			URL:         it.URL,
			Contact:     it.Contact,
		})
	}
	return ok(out)
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractJSONBlock finds the first balanced open..close block in the text,
// ignoring brackets inside string literals.
func extractJSONBlock(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
