package repository

import (
	"context"
	"strings"
	"time"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

type identityModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (identityModel) TableName() string { return "identities" }

func toDomainIdentity(m identityModel) *domain.Identity {
	return &domain.Identity{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toIdentityModel(i *domain.Identity) identityModel {
	return identityModel{
		ID:           i.ID,
		Email:        strings.ToLower(strings.TrimSpace(i.Email)),
		PasswordHash: i.PasswordHash,
		Name:         i.Name,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// DB exposes the underlying handle so the auth service can run the sign-up
// saga inside a single transaction.
func (r *IdentityRepository) DB() *gorm.DB { return r.db }

// CreateTx inserts within the caller's transaction.
func (r *IdentityRepository) CreateTx(tx *gorm.DB, i *domain.Identity) error {
	m := toIdentityModel(i)
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*i = *toDomainIdentity(m)
	return nil
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var m identityModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainIdentity(m), nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	var m identityModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainIdentity(m), nil
}

func (r *IdentityRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&identityModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}
