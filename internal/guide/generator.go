// Package guide assembles personalized support guides from a profile and an
// assessment. Four text-generation calls (overview, routine, questions,
// resources) plus one mood classification; routine/questions/resources
// degrade to static defaults on any parse failure, the overview and the
// mood call propagate provider errors.
package guide

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/solacehq/solace-server/internal/llm"
	"github.com/solacehq/solace-server/internal/model"
)

// Generator runs the guide-generation pipeline.
type Generator struct {
	llm llm.Client
	log zerolog.Logger
}

// New constructs a Generator.
func New(client llm.Client, log zerolog.Logger) *Generator {
	return &Generator{llm: client, log: log}
}

// Generate produces a guide for the profile+assessment pair. The returned
// guide has no identifier; the store assigns one on create.
func (g *Generator) Generate(ctx context.Context, p *model.Profile, a *model.Assessment) (*model.Guide, error) {
	overview, err := g.llm.Complete(ctx, overviewPrompt(a))
	if err != nil {
		return nil, err
	}
	overview = strings.TrimSpace(overview)

	routine := g.routine(ctx, p, a)
	questions := g.questions(ctx, a)
	resources := g.resources(ctx, p, a)

	mood, emoji, err := g.AnalyzeMood(ctx, a.Story)
	if err != nil {
		return nil, err
	}

	return &model.Guide{
		ProfileID:           p.ProfileID,
		DetectedMood:        mood,
		MoodEmoji:           emoji,
		Overview:            overview,
		WeeklyRoutine:       routine,
		ReflectiveQuestions: questions,
		PhysicalActivity:    physicalActivity(a),
		MealPlan:            mealPlan(a),
		EveningRitual:       eveningRitual(a),
		Resources:           resources,
		CopingStrategies:    copingStrategies(a),
	}, nil
}

func (g *Generator) routine(ctx context.Context, p *model.Profile, a *model.Assessment) model.WeeklySchedule {
	raw, err := g.llm.Complete(ctx, routinePrompt(p, a))
	if err != nil {
		g.log.Warn().Err(err).Msg("routine generation failed, using empty schedule")
		return model.EmptyWeeklySchedule()
	}
	res := parseRoutine(raw)
	if res.FellBack {
		g.log.Warn().Msg("routine response unparseable, using empty schedule")
	}
	return res.Value
}

func (g *Generator) questions(ctx context.Context, a *model.Assessment) []model.ReflectiveQuestion {
	raw, err := g.llm.Complete(ctx, questionsPrompt(a))
	if err != nil {
		g.log.Warn().Err(err).Msg("question generation failed, using default question")
		return parseQuestions("").Value
	}
	res := parseQuestions(raw)
	if res.FellBack {
		g.log.Warn().Msg("questions response unparseable, using default question")
	}
	return res.Value
}

func (g *Generator) resources(ctx context.Context, p *model.Profile, a *model.Assessment) []model.Resource {
	raw, err := g.llm.Complete(ctx, resourcesPrompt(p, a))
	if err != nil {
		g.log.Warn().Err(err).Msg("resource generation failed, using default resource")
		return parseResources("").Value
	}
	res := parseResources(raw)
	if res.FellBack {
		g.log.Warn().Msg("resources response unparseable, using default resource")
	}
	return res.Value
}

// AnalyzeMood classifies the emotional state of the text into one of the
// eight recognized moods. An unrecognized word keeps the provider's answer
// but maps to the default emoji; a provider error propagates.
func (g *Generator) AnalyzeMood(ctx context.Context, text string) (mood, emoji string, err error) {
	raw, err := g.llm.Complete(ctx, moodPrompt(text))
	if err != nil {
		return "", "", err
	}
	mood = strings.ToLower(strings.TrimSpace(raw))
	emoji, recognized := model.MoodEmojis[mood]
	if !recognized {
		emoji = model.DefaultMoodEmoji
	}
	return mood, emoji, nil
}
