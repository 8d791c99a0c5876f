package services

import (
	"context"

	"github.com/solacehq/solace-server/internal/guide"
	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

type GuideService struct {
	store store.Store
	gen   *guide.Generator
}

func NewGuideService(s store.Store, gen *guide.Generator) *GuideService {
	return &GuideService{store: s, gen: gen}
}

// GenerateGuide runs the generation pipeline against the stored profile and
// assessment, then persists the result. The assessment must belong to the
// profile; a mismatch is reported as not-found to avoid leaking which half
// exists.
func (s *GuideService) GenerateGuide(ctx context.Context, profileID, assessmentID string) (*model.Guide, error) {
	p, err := s.store.Profiles().Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	a, err := s.store.Assessments().Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if a.ProfileID != profileID {
		return nil, model.ErrNotFound
	}

	g, err := s.gen.Generate(ctx, p, a)
	if err != nil {
		return nil, err
	}
	return s.store.Guides().Create(ctx, g)
}

func (s *GuideService) GetGuide(ctx context.Context, guideID string) (*model.Guide, error) {
	return s.store.Guides().Get(ctx, guideID)
}

func (s *GuideService) ListGuides(ctx context.Context) ([]*model.Guide, error) {
	return s.store.Guides().List(ctx)
}

func (s *GuideService) ListGuidesByProfile(ctx context.Context, profileID string) ([]*model.Guide, error) {
	return s.store.Guides().ListByProfile(ctx, profileID)
}

func (s *GuideService) DeleteGuide(ctx context.Context, guideID string) error {
	return s.store.Guides().Delete(ctx, guideID)
}

// AnalyzeMood classifies free text without touching storage.
func (s *GuideService) AnalyzeMood(ctx context.Context, text string) (mood, emoji string, err error) {
	if text == "" {
		return "", "", model.NewValidationError("text", "is required")
	}
	return s.gen.AnalyzeMood(ctx, text)
}
