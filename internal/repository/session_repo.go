package repository

import (
	"context"
	"encoding/json"
	"time"

	"goeventcity/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingSessionRepository struct {
	db *gorm.DB
}

func NewBookingSessionRepository(db *gorm.DB) *BookingSessionRepository {
	return &BookingSessionRepository{db: db}
}

type bookingSessionModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	CurrentStep int       `gorm:"column:current_step"`
	DataJSON    string    `gorm:"column:data_json;type:text"`
	ExpiresAt   time.Time `gorm:"column:expires_at;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingSessionModel) TableName() string { return "booking_sessions" }

func toDomainSession(m bookingSessionModel) (*domain.BookingSession, error) {
	data := map[string]string{}
	if m.DataJSON != "" {
		if err := json.Unmarshal([]byte(m.DataJSON), &data); err != nil {
			return nil, err
		}
	}
	return &domain.BookingSession{
		ID:          m.ID,
		CurrentStep: m.CurrentStep,
		Data:        data,
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// Create allocates a fresh session at step 1 holding the first step's fields.
func (r *BookingSessionRepository) Create(ctx context.Context, data map[string]string, ttl time.Duration) (*domain.BookingSession, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m := bookingSessionModel{
		ID:          uuid.NewString(),
		CurrentStep: 1,
		DataJSON:    string(raw),
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return toDomainSession(m)
}

func (r *BookingSessionRepository) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	var m bookingSessionModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m)
}

// Update persists the merged field map and the new step index. The caller
// is responsible for merging; this is a whole-row write, last writer wins.
func (r *BookingSessionRepository) Update(ctx context.Context, id string, step int, data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Model(&bookingSessionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_step": step,
			"data_json":    string(raw),
			"updated_at":   time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingSessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&bookingSessionModel{}).Error
}

// DeleteExpired reclaims abandoned sessions. Used by the background sweep
// and the one-shot cleanup command.
func (r *BookingSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&bookingSessionModel{})
	return tx.RowsAffected, tx.Error
}
