package repository

import (
	"context"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PermissionGrantRepository struct {
	db *gorm.DB
}

func NewPermissionGrantRepository(db *gorm.DB) *PermissionGrantRepository {
	return &PermissionGrantRepository{db: db}
}

type permissionGrantModel struct {
	Role       string `gorm:"column:role;primaryKey"`
	Permission string `gorm:"column:permission;primaryKey"`
}

func (permissionGrantModel) TableName() string { return "permission_grants" }

// Exists is a pure lookup: the allow/deny decision depends only on the grant
// table contents.
func (r *PermissionGrantRepository) Exists(ctx context.Context, role domain.Role, permission string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&permissionGrantModel{}).
		Where("role = ? AND permission = ?", string(role), permission).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

// Upsert seeds reference data. Grants are read-only at runtime.
func (r *PermissionGrantRepository) Upsert(ctx context.Context, g domain.PermissionGrant) error {
	m := permissionGrantModel{Role: string(g.Role), Permission: g.Permission}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
}
