package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace-server/internal/model"
)

const goodRoutine = `{
  "monday": [{"time_period": "Morning", "activity": "Walk", "description": "A short walk outside"}],
  "tuesday": [], "wednesday": [], "thursday": [], "friday": [], "saturday": [],
  "sunday": [{"time_period": "Evening", "activity": "Call a friend", "description": "Stay connected"}]
}`

func TestParseRoutine(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		res := parseRoutine(goodRoutine)
		require.False(t, res.FellBack)
		require.Len(t, res.Value.Monday, 1)
		assert.Equal(t, "Walk", res.Value.Monday[0].Activity)
		assert.Empty(t, res.Value.Tuesday)
		require.Len(t, res.Value.Sunday, 1)
	})

	t.Run("code-fenced", func(t *testing.T) {
		res := parseRoutine("```json\n" + goodRoutine + "\n```")
		assert.False(t, res.FellBack)
	})

	t.Run("malformed json falls back to empty week", func(t *testing.T) {
		res := parseRoutine("I'm sorry, I cannot produce JSON today.")
		assert.True(t, res.FellBack)
		assert.Equal(t, model.EmptyWeeklySchedule(), res.Value)
	})

	t.Run("missing day falls back", func(t *testing.T) {
		res := parseRoutine(`{"monday": [], "tuesday": []}`)
		assert.True(t, res.FellBack)
		assert.Equal(t, model.EmptyWeeklySchedule(), res.Value)
	})

	t.Run("activity missing field falls back", func(t *testing.T) {
		res := parseRoutine(`{
          "monday": [{"activity": "Walk"}],
          "tuesday": [], "wednesday": [], "thursday": [], "friday": [], "saturday": [], "sunday": []
        }`)
		assert.True(t, res.FellBack)
	})
}

func TestParseQuestions(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		res := parseQuestions(`[
          {"question": "What do you miss most?", "context": "Naming it helps", "suggested_prompts": ["Their laugh..."]},
          {"question": "What would they say?", "context": "Imagined dialogue", "suggested_prompts": []}
        ]`)
		require.False(t, res.FellBack)
		require.Len(t, res.Value, 2)
		assert.Equal(t, "What do you miss most?", res.Value[0].Question)
	})

	t.Run("malformed falls back to single canned question", func(t *testing.T) {
		res := parseQuestions("not json at all")
		require.True(t, res.FellBack)
		require.Len(t, res.Value, 1)
		assert.Equal(t, model.ReflectivePrompts[0], res.Value[0].Question)
		assert.Len(t, res.Value[0].SuggestedPrompts, 2)
	})

	t.Run("empty array falls back", func(t *testing.T) {
		res := parseQuestions(`[]`)
		assert.True(t, res.FellBack)
		assert.Len(t, res.Value, 1)
	})

	t.Run("missing required field falls back", func(t *testing.T) {
		res := parseQuestions(`[{"question": "Q only"}]`)
		assert.True(t, res.FellBack)
	})
}

func TestParseResources(t *testing.T) {
	t.Run("well-formed with optional fields", func(t *testing.T) {
		res := parseResources(`[
          {"title": "Grief circle", "description": "Weekly group", "category": "Support Groups", "contact": "555-0100"},
          {"title": "Reading list", "description": "Books on loss", "category": "Educational Resources", "url": "https://example.org"}
        ]`)
		require.False(t, res.FellBack)
		require.Len(t, res.Value, 2)
		require.NotNil(t, res.Value[0].Contact)
		assert.Equal(t, "555-0100", *res.Value[0].Contact)
		assert.Nil(t, res.Value[0].URL)
		require.NotNil(t, res.Value[1].URL)
	})

	t.Run("malformed falls back to crisis hotline", func(t *testing.T) {
		res := parseResources(`{"oops": true}`)
		require.True(t, res.FellBack)
		require.Len(t, res.Value, 1)
		assert.Equal(t, "Grief Support Hotline", res.Value[0].Title)
		assert.Equal(t, "Crisis Support", res.Value[0].Category)
	})
}

func TestExtractJSONBlock(t *testing.T) {
	t.Run("ignores braces in strings", func(t *testing.T) {
		got := extractJSONBlock(`prefix {"a": "}{"} suffix`, '{', '}')
		assert.Equal(t, `{"a": "}{"}`, got)
	})
	t.Run("unbalanced returns empty", func(t *testing.T) {
		assert.Equal(t, "", extractJSONBlock(`{"a": 1`, '{', '}'))
	})
	t.Run("array block", func(t *testing.T) {
		got := extractJSONBlock(`Here you go: [1, 2, [3]] done`, '[', ']')
		assert.Equal(t, `[1, 2, [3]]`, got)
	})
}
