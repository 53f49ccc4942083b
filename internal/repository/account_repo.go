package repository

import (
	"context"
	"time"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID                     string    `gorm:"column:id;primaryKey"`
	PrimaryOwnerIdentityID string    `gorm:"column:primary_owner_identity_id;index"`
	Name                   string    `gorm:"column:name"`
	Email                  string    `gorm:"column:email"`
	IsPersonal             bool      `gorm:"column:is_personal"`
	CreatedAt              time.Time `gorm:"column:created_at"`
}

func (accountModel) TableName() string { return "accounts" }

func toDomainAccount(m accountModel) *domain.Account {
	return &domain.Account{
		ID:                     m.ID,
		PrimaryOwnerIdentityID: m.PrimaryOwnerIdentityID,
		Name:                   m.Name,
		Email:                  m.Email,
		IsPersonal:             m.IsPersonal,
		CreatedAt:              m.CreatedAt,
	}
}

func (r *AccountRepository) CreateTx(tx *gorm.DB, a *domain.Account) error {
	m := accountModel{
		ID:                     a.ID,
		PrimaryOwnerIdentityID: a.PrimaryOwnerIdentityID,
		Name:                   a.Name,
		Email:                  a.Email,
		IsPersonal:             a.IsPersonal,
		CreatedAt:              a.CreatedAt,
	}
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAccount(m)
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) GetPersonalByOwner(ctx context.Context, identityID string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).
		Where("primary_owner_identity_id = ? AND is_personal = ?", identityID, true).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}
