// Package services holds the application services that sit between the HTTP
// transport and the store. Handlers stay thin; validation and orchestration
// live here.
package services

import (
	"context"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

type ProfileService struct {
	store store.Store
}

func NewProfileService(s store.Store) *ProfileService {
	return &ProfileService{store: s}
}

func (s *ProfileService) CreateProfile(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.store.Profiles().Create(ctx, p)
}

func (s *ProfileService) GetProfile(ctx context.Context, profileID string) (*model.Profile, error) {
	return s.store.Profiles().Get(ctx, profileID)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return s.store.Profiles().List(ctx)
}

// UpdateProfile replaces the stored record wholesale; the identifier and
// creation time are preserved by the store.
func (s *ProfileService) UpdateProfile(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.store.Profiles().Update(ctx, p)
}

func (s *ProfileService) DeleteProfile(ctx context.Context, profileID string) error {
	return s.store.Profiles().Delete(ctx, profileID)
}
