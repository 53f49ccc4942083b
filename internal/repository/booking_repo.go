package repository

import (
	"context"
	"time"

	"goeventcity/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                  string     `gorm:"column:id;primaryKey"`
	EventID             *string    `gorm:"column:event_id"`
	VenueID             *string    `gorm:"column:venue_id"`
	PerformerID         *string    `gorm:"column:performer_id"`
	RequesterIdentityID string     `gorm:"column:requester_identity_id;index"`
	GuestCount          int        `gorm:"column:guest_count"`
	BasePrice           int64      `gorm:"column:base_price"`
	ServiceFee          int64      `gorm:"column:service_fee"`
	Subtotal            int64      `gorm:"column:subtotal"`
	Total               int64      `gorm:"column:total"`
	Status              string     `gorm:"column:status"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
	CancelledAt         *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var eventID, venueID, performerID string
	if m.EventID != nil {
		eventID = *m.EventID
	}
	if m.VenueID != nil {
		venueID = *m.VenueID
	}
	if m.PerformerID != nil {
		performerID = *m.PerformerID
	}

	return &domain.Booking{
		ID:                  m.ID,
		EventID:             eventID,
		VenueID:             venueID,
		PerformerID:         performerID,
		RequesterIdentityID: m.RequesterIdentityID,
		GuestCount:          m.GuestCount,
		BasePrice:           m.BasePrice,
		ServiceFee:          m.ServiceFee,
		Subtotal:            m.Subtotal,
		Total:               m.Total,
		Status:              domain.BookingStatus(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		CancelledAt:         m.CancelledAt,
	}
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	m := bookingModel{
		ID:                  b.ID,
		EventID:             nullable(b.EventID),
		VenueID:             nullable(b.VenueID),
		PerformerID:         nullable(b.PerformerID),
		RequesterIdentityID: b.RequesterIdentityID,
		GuestCount:          b.GuestCount,
		BasePrice:           b.BasePrice,
		ServiceFee:          b.ServiceFee,
		Subtotal:            b.Subtotal,
		Total:               b.Total,
		Status:              string(b.Status),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByRequester(ctx context.Context, identityID string, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("requester_identity_id = ?", identityID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, cancelledAt *time.Time) error {
	updates := map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
