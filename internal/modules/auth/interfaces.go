package auth

import (
	"context"

	"goeventcity/internal/domain"

	"gorm.io/gorm"
)

// IdentityRepositoryInterface — only the methods the auth service uses.
type IdentityRepositoryInterface interface {
	CreateTx(tx *gorm.DB, i *domain.Identity) error
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB // for the sign-up transaction
}

type AccountRepositoryInterface interface {
	CreateTx(tx *gorm.DB, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type RoleAssignmentRepositoryInterface interface {
	CreateTx(tx *gorm.DB, ra *domain.RoleAssignment) error
	GetByIdentity(ctx context.Context, identityID string) (*domain.RoleAssignment, error)
}
