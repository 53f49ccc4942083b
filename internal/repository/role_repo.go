package repository

import (
	"context"
	"time"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

type RoleAssignmentRepository struct {
	db *gorm.DB
}

func NewRoleAssignmentRepository(db *gorm.DB) *RoleAssignmentRepository {
	return &RoleAssignmentRepository{db: db}
}

type roleAssignmentModel struct {
	IdentityID string    `gorm:"column:identity_id;primaryKey"`
	AccountID  string    `gorm:"column:account_id;primaryKey"`
	Role       string    `gorm:"column:role"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (roleAssignmentModel) TableName() string { return "role_assignments" }

func (r *RoleAssignmentRepository) CreateTx(tx *gorm.DB, ra *domain.RoleAssignment) error {
	m := roleAssignmentModel{
		IdentityID: ra.IdentityID,
		AccountID:  ra.AccountID,
		Role:       string(ra.Role),
		CreatedAt:  ra.CreatedAt,
	}
	return tx.Create(&m).Error
}

// GetByIdentity returns the identity's effective role binding. A membership
// holds at most one role per account, and the core only deals in the
// personal account, so First is sufficient.
func (r *RoleAssignmentRepository) GetByIdentity(ctx context.Context, identityID string) (*domain.RoleAssignment, error) {
	var m roleAssignmentModel
	tx := r.db.WithContext(ctx).Where("identity_id = ?", identityID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.RoleAssignment{
		IdentityID: m.IdentityID,
		AccountID:  m.AccountID,
		Role:       domain.Role(m.Role),
		CreatedAt:  m.CreatedAt,
	}, nil
}
