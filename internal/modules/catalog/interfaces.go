package catalog

import (
	"context"

	"goeventcity/internal/domain"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, limit, offset int) ([]domain.Event, error)
}

type VenueRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context, limit, offset int) ([]domain.Venue, error)
}

type PerformerRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Performer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Performer, error)
}

// Purger invalidates cached listings by tag after a catalog write. Purge
// failures never fail the write.
type Purger interface {
	PurgeTags(ctx context.Context, tags ...string) error
}
