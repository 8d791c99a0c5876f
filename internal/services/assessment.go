package services

import (
	"context"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

type AssessmentService struct {
	store store.Store
}

func NewAssessmentService(s store.Store) *AssessmentService {
	return &AssessmentService{store: s}
}

// CreateAssessment validates and persists an intake questionnaire. The
// referenced profile must exist.
func (s *AssessmentService) CreateAssessment(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.store.Profiles().Get(ctx, a.ProfileID); err != nil {
		return nil, err
	}
	return s.store.Assessments().Create(ctx, a)
}

func (s *AssessmentService) GetAssessment(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	return s.store.Assessments().Get(ctx, assessmentID)
}

func (s *AssessmentService) ListAssessments(ctx context.Context) ([]*model.Assessment, error) {
	return s.store.Assessments().List(ctx)
}

func (s *AssessmentService) ListAssessmentsByProfile(ctx context.Context, profileID string) ([]*model.Assessment, error) {
	return s.store.Assessments().ListByProfile(ctx, profileID)
}
