package repository

import (
	"context"
	"time"

	"goeventcity/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	EventType   string    `gorm:"column:event_type"`
	Description string    `gorm:"column:description;type:text"`
	VenueID     *string   `gorm:"column:venue_id"`
	StartsAt    time.Time `gorm:"column:starts_at"`
	Capacity    int       `gorm:"column:capacity"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	var venueID string
	if m.VenueID != nil {
		venueID = *m.VenueID
	}
	return &domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		EventType:   m.EventType,
		Description: m.Description,
		VenueID:     venueID,
		StartsAt:    m.StartsAt,
		Capacity:    m.Capacity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	m := eventModel{
		ID:          e.ID,
		Title:       e.Title,
		EventType:   e.EventType,
		Description: e.Description,
		VenueID:     nullable(e.VenueID),
		StartsAt:    e.StartsAt,
		Capacity:    e.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx := r.db.WithContext(ctx).Model(&eventModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"title":       e.Title,
			"event_type":  e.EventType,
			"description": e.Description,
			"venue_id":    nullable(e.VenueID),
			"starts_at":   e.StartsAt,
			"capacity":    e.Capacity,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	var rows []eventModel
	tx := r.db.WithContext(ctx).Order("starts_at ASC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	City      string    `gorm:"column:city"`
	Address   string    `gorm:"column:address"`
	Capacity  int       `gorm:"column:capacity"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (venueModel) TableName() string { return "venues" }

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	m := venueModel{ID: v.ID, Name: v.Name, City: v.City, Address: v.Address, Capacity: v.Capacity, CreatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	v.CreatedAt = m.CreatedAt
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var m venueModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Venue{ID: m.ID, Name: m.Name, City: m.City, Address: m.Address, Capacity: m.Capacity, CreatedAt: m.CreatedAt}, nil
}

func (r *VenueRepository) List(ctx context.Context, limit, offset int) ([]domain.Venue, error) {
	var rows []venueModel
	tx := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Venue, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Venue{ID: m.ID, Name: m.Name, City: m.City, Address: m.Address, Capacity: m.Capacity, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

type PerformerRepository struct {
	db *gorm.DB
}

func NewPerformerRepository(db *gorm.DB) *PerformerRepository {
	return &PerformerRepository{db: db}
}

type performerModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Genre     string    `gorm:"column:genre"`
	Bio       string    `gorm:"column:bio;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (performerModel) TableName() string { return "performers" }

func (r *PerformerRepository) Create(ctx context.Context, p *domain.Performer) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m := performerModel{ID: p.ID, Name: p.Name, Genre: p.Genre, Bio: p.Bio, CreatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.CreatedAt = m.CreatedAt
	return nil
}

func (r *PerformerRepository) GetByID(ctx context.Context, id string) (*domain.Performer, error) {
	var m performerModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Performer{ID: m.ID, Name: m.Name, Genre: m.Genre, Bio: m.Bio, CreatedAt: m.CreatedAt}, nil
}

func (r *PerformerRepository) List(ctx context.Context, limit, offset int) ([]domain.Performer, error) {
	var rows []performerModel
	tx := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Performer, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Performer{ID: m.ID, Name: m.Name, Genre: m.Genre, Bio: m.Bio, CreatedAt: m.CreatedAt})
	}
	return out, nil
}
