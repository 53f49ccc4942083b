package catalog

import (
	"context"
	"errors"
	"log"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

// Service exposes the discovery surface: event, venue and performer
// listings, plus the event writes that feed the booking flow.
type Service struct {
	events     EventRepositoryInterface
	venues     VenueRepositoryInterface
	performers PerformerRepositoryInterface
	purger     Purger
}

func NewService(
	events EventRepositoryInterface,
	venues VenueRepositoryInterface,
	performers PerformerRepositoryInterface,
	purger Purger,
) *Service {
	return &Service{
		events:     events,
		venues:     venues,
		performers: performers,
		purger:     purger,
	}
}

func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	e := &domain.Event{
		Title:       req.Title,
		EventType:   req.EventType,
		Description: req.Description,
		VenueID:     req.VenueID,
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	s.purge(ctx, e)
	return e, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		e.Title = req.Title
	}
	if req.EventType != "" {
		e.EventType = req.EventType
	}
	if req.Description != "" {
		e.Description = req.Description
	}
	if req.VenueID != "" {
		e.VenueID = req.VenueID
	}
	if req.StartsAt != nil {
		e.StartsAt = *req.StartsAt
	}
	if req.Capacity > 0 {
		e.Capacity = req.Capacity
	}

	if err := s.events.Update(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.purge(ctx, e)
	return e, nil
}

// purge is fire-and-forget: the write already succeeded, a stale cache entry
// is the worst outcome of a purge failure.
func (s *Service) purge(ctx context.Context, e *domain.Event) {
	if s.purger == nil {
		return
	}
	tags := []string{"events", "event:" + e.ID}
	if e.VenueID != "" {
		tags = append(tags, "venue:"+e.VenueID)
	}
	if err := s.purger.PurgeTags(ctx, tags...); err != nil {
		log.Printf("catalog: cache purge failed event_id=%s err=%v", e.ID, err)
	}
}

func (s *Service) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEvents(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	return s.events.List(ctx, clampLimit(limit), offset)
}

func (s *Service) ListVenues(ctx context.Context, limit, offset int) ([]domain.Venue, error) {
	return s.venues.List(ctx, clampLimit(limit), offset)
}

func (s *Service) ListPerformers(ctx context.Context, limit, offset int) ([]domain.Performer, error) {
	return s.performers.List(ctx, clampLimit(limit), offset)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
