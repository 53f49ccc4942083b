package notification

import (
	"context"
	"log"

	"goeventcity/internal/domain"
)

// Mailer is the outbound email side effect. Implementations must be safe to
// call fire-and-forget: the caller logs a returned error and moves on.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string, role domain.Role) error
	SendBookingSubmitted(ctx context.Context, email string, b *domain.Booking) error
}

// ConsoleMailer writes mail to the process log. Stands in for a real
// delivery provider in development, or silently drops everything when
// disabled (delivery credentials absent).
type ConsoleMailer struct {
	enabled bool
}

func NewConsoleMailer(enabled bool) *ConsoleMailer {
	if !enabled {
		log.Println("mailer: disabled, outbound email will be dropped")
	}
	return &ConsoleMailer{enabled: enabled}
}

func (m *ConsoleMailer) SendWelcome(_ context.Context, email, name string, role domain.Role) error {
	if m.enabled {
		log.Printf("[MAIL] welcome email=%s name=%q role=%s", email, name, role)
	}
	return nil
}

func (m *ConsoleMailer) SendBookingSubmitted(_ context.Context, email string, b *domain.Booking) error {
	if m.enabled {
		log.Printf("[MAIL] booking submitted email=%s booking_id=%s total_cents=%d", email, b.ID, b.Total)
	}
	return nil
}
