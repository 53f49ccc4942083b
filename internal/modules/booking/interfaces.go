package booking

import (
	"context"
	"time"

	"goeventcity/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, data map[string]string, ttl time.Duration) (*domain.BookingSession, error)
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Update(ctx context.Context, id string, step int, data map[string]string) error
	Delete(ctx context.Context, id string) error
}

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRequester(ctx context.Context, identityID string, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, cancelledAt *time.Time) error
}

// Notifier delivers the best-effort booking-submitted email. Errors are
// logged by the service and never propagated.
type Notifier interface {
	SendBookingSubmitted(ctx context.Context, email string, b *domain.Booking) error
}
