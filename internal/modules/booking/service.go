package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

// Service drives the five-step booking wizard and owns the pricing contract.
type Service struct {
	sessions   SessionRepository
	bookings   BookingRepositoryInterface
	notifier   Notifier
	sessionTTL time.Duration
}

func NewService(
	sessions SessionRepository,
	bookings BookingRepositoryInterface,
	notifier Notifier,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		sessions:   sessions,
		bookings:   bookings,
		notifier:   notifier,
		sessionTTL: sessionTTL,
	}
}

// AdvanceResult is what a successful step submission yields: either the next
// step of a live session, or the terminal Booking.
type AdvanceResult struct {
	Session  *domain.BookingSession `json:"session,omitempty"`
	NextStep int                    `json:"next_step,omitempty"`
	Booking  *domain.Booking        `json:"booking,omitempty"`
}

// Advance validates the submitted step, merges its fields into the session
// and moves the wizard forward. Nothing is persisted on validation failure.
// Submitting the review step creates the Booking and retires the session.
//
// Two concurrent Advance calls on one session are not serialized; the last
// writer wins. Sessions are single-user, single-tab in practice.
func (s *Service) Advance(ctx context.Context, identityID, sessionID string, step int, fields map[string]string) (*AdvanceResult, error) {
	if errs := validateStep(step, fields); errs != nil {
		return nil, errs
	}

	if sessionID == "" {
		if step != StepEventDetails {
			return nil, ErrSessionNotFound
		}
		session, err := s.sessions.Create(ctx, fields, s.sessionTTL)
		if err != nil {
			return nil, err
		}
		return &AdvanceResult{Session: session, NextStep: StepRequirements}, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	// Expiry is enforced on read: an expired session behaves as missing.
	if session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}

	if step > session.CurrentStep+1 {
		return nil, FieldErrors{"step": "cannot skip ahead"}
	}

	// Field-by-field merge. Revisiting an earlier step must not erase
	// later-step fields already captured.
	merged := make(map[string]string, len(session.Data)+len(fields))
	for k, v := range session.Data {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	if step == StepReview {
		booking, err := s.createBooking(ctx, identityID, merged)
		if err != nil {
			return nil, err
		}
		if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			log.Printf("booking: session cleanup failed session_id=%s err=%v", session.ID, delErr)
		}
		if s.notifier != nil {
			if mailErr := s.notifier.SendBookingSubmitted(ctx, merged["contact_email"], booking); mailErr != nil {
				log.Printf("booking: submit notification failed booking_id=%s err=%v", booking.ID, mailErr)
			}
		}
		return &AdvanceResult{Booking: booking}, nil
	}

	next := session.CurrentStep
	if step > next {
		next = step
	}
	if err := s.sessions.Update(ctx, session.ID, next, merged); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session.CurrentStep = next
	session.Data = merged
	return &AdvanceResult{Session: session, NextStep: next + 1}, nil
}

// createBooking materializes the terminal record from the accumulated
// session fields. The payment step has already validated the inputs, but a
// session that skipped it would land here with no price, so re-check.
func (s *Service) createBooking(ctx context.Context, identityID string, data map[string]string) (*domain.Booking, error) {
	basePrice, err := ParseCents(data["base_price"])
	if err != nil || basePrice <= 0 {
		return nil, FieldErrors{"base_price": "must be a positive amount"}
	}
	guestCount, err := strconv.Atoi(data["guest_count"])
	if err != nil || guestCount < 1 {
		return nil, FieldErrors{"guest_count": "must be an integer of at least 1"}
	}

	fee := ServiceFee(basePrice)
	subtotal := basePrice + fee

	b := &domain.Booking{
		EventID:             data["event_id"],
		VenueID:             data["venue_id"],
		PerformerID:         data["performer_id"],
		RequesterIdentityID: identityID,
		GuestCount:          guestCount,
		BasePrice:           basePrice,
		ServiceFee:          fee,
		Subtotal:            subtotal,
		Total:               subtotal,
		Status:              domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, identityID, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.RequesterIdentityID != identityID {
		return nil, ErrNotOwner
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, identityID string, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListByRequester(ctx, identityID, limit, offset)
}

// Act applies a confirm or cancel action. Only the requester (or an admin)
// may mutate a booking, and only along the allowed transitions.
func (s *Service) Act(ctx context.Context, identityID string, isAdmin bool, bookingID, action string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.RequesterIdentityID != identityID && !isAdmin {
		return nil, ErrNotOwner
	}

	switch action {
	case "confirm":
		if b.Status != domain.BookingPending {
			return nil, ErrInvalidTransition
		}
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed, nil); err != nil {
			return nil, err
		}
		b.Status = domain.BookingConfirmed

	case "cancel":
		if b.Status == domain.BookingCancelled {
			return nil, ErrInvalidTransition
		}
		now := time.Now()
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled, &now); err != nil {
			return nil, err
		}
		b.Status = domain.BookingCancelled
		b.CancelledAt = &now

	default:
		return nil, ErrInvalidAction
	}

	return b, nil
}
