package catalog

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	EventType   string    `json:"event_type" binding:"required"`
	Description string    `json:"description"`
	VenueID     string    `json:"venue_id"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Capacity    int       `json:"capacity" binding:"omitempty,gte=1"`
}

type UpdateEventRequest struct {
	Title       string     `json:"title,omitempty"`
	EventType   string     `json:"event_type,omitempty"`
	Description string     `json:"description,omitempty"`
	VenueID     string     `json:"venue_id,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	Capacity    int        `json:"capacity,omitempty" binding:"omitempty,gte=1"`
}
