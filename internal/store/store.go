package store

import (
	"context"

	"github.com/solacehq/solace-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., memory, sqlite, postgres).
type Store interface {
	Profiles() Profiles
	Assessments() Assessments
	Guides() Guides
}

// Profiles owns demographic records. Create generates the identifier.
type Profiles interface {
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)
	Get(ctx context.Context, profileID string) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
	Update(ctx context.Context, p *model.Profile) (*model.Profile, error)
	Delete(ctx context.Context, profileID string) error
}

// Assessments owns intake questionnaires, indexed by profile.
type Assessments interface {
	Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error)
	Get(ctx context.Context, assessmentID string) (*model.Assessment, error)
	List(ctx context.Context) ([]*model.Assessment, error)
	// ListByProfile returns an empty slice, not an error, for an unknown profile.
	ListByProfile(ctx context.Context, profileID string) ([]*model.Assessment, error)
}

// Guides owns generated guides, indexed by profile.
type Guides interface {
	Create(ctx context.Context, g *model.Guide) (*model.Guide, error)
	Get(ctx context.Context, guideID string) (*model.Guide, error)
	List(ctx context.Context) ([]*model.Guide, error)
	// ListByProfile returns an empty slice, not an error, for an unknown profile.
	ListByProfile(ctx context.Context, profileID string) ([]*model.Guide, error)
	// Delete removes the guide and its back-reference from every profile index.
	// Deleting an id that was never present returns model.ErrNotFound.
	Delete(ctx context.Context, guideID string) error
}
