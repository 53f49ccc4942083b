package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingSession is the ephemeral state of a partially completed booking
// form. CurrentStep is the highest step whose fields have been accepted;
// it only moves forward. Data accumulates fields across steps.
type BookingSession struct {
	ID          string            `json:"id"`
	CurrentStep int               `json:"current_step"`
	Data        map[string]string `json:"data"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Expired reports whether the session is past its TTL at the given instant.
func (s *BookingSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Booking is the terminal, priced reservation record. All money amounts are
// integer cents. The pricing breakdown is computed once at creation:
// ServiceFee = round(BasePrice * 0.10), Subtotal = BasePrice + ServiceFee,
// Total = Subtotal.
type Booking struct {
	ID                  string        `json:"id"`
	EventID             string        `json:"event_id,omitempty"`
	VenueID             string        `json:"venue_id,omitempty"`
	PerformerID         string        `json:"performer_id,omitempty"`
	RequesterIdentityID string        `json:"requester_identity_id"`
	GuestCount          int           `json:"guest_count"`
	BasePrice           int64         `json:"base_price"`
	ServiceFee          int64         `json:"service_fee"`
	Subtotal            int64         `json:"subtotal"`
	Total               int64         `json:"total"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
}
