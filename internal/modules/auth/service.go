package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"goeventcity/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type jwtService interface {
	GenerateToken(identityID string, role string) (string, error)
}

// Mailer sends the best-effort welcome email after sign-up. Failures are
// logged and swallowed, never surfaced.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string, role domain.Role) error
}

// Service contains the identity, account and role-assignment logic.
type Service struct {
	identities IdentityRepositoryInterface
	accounts   AccountRepositoryInterface
	roles      RoleAssignmentRepositoryInterface
	jwt        jwtService
	mailer     Mailer
}

func NewService(
	identities IdentityRepositoryInterface,
	accounts AccountRepositoryInterface,
	roles RoleAssignmentRepositoryInterface,
	jwt jwtService,
	mailer Mailer,
) *Service {
	return &Service{
		identities: identities,
		accounts:   accounts,
		roles:      roles,
		jwt:        jwt,
		mailer:     mailer,
	}
}

// SignUp creates the identity, its personal account and the role assignment
// in one transaction. A failure at any stage rolls the whole sign-up back;
// there is no path that leaves an identity without an account and role.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*domain.Profile, string, error) {
	role := domain.Role(strings.TrimSpace(req.Role))
	if !role.Valid() {
		return nil, "", ErrInvalidRole
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.identities.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	account := &domain.Account{
		ID:                     uuid.NewString(),
		PrimaryOwnerIdentityID: identity.ID,
		Name:                   req.Name,
		Email:                  email,
		IsPersonal:             true,
		CreatedAt:              now,
	}
	assignment := &domain.RoleAssignment{
		IdentityID: identity.ID,
		AccountID:  account.ID,
		Role:       role,
		CreatedAt:  now,
	}

	err = s.identities.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.identities.CreateTx(tx, identity); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("create identity: %w", err)
		}
		if err := s.accounts.CreateTx(tx, account); err != nil {
			return fmt.Errorf("%w: %v", ErrAccountCreation, err)
		}
		if err := s.roles.CreateTx(tx, assignment); err != nil {
			return fmt.Errorf("%w: %v", ErrRoleAssignment, err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(identity.ID, string(role))
	if err != nil {
		return nil, "", err
	}

	if s.mailer != nil {
		if mailErr := s.mailer.SendWelcome(ctx, email, req.Name, role); mailErr != nil {
			log.Printf("signup: welcome mail failed email=%s err=%v", email, mailErr)
		}
	}

	identity.PasswordHash = ""
	return &domain.Profile{Identity: *identity, AccountID: account.ID, Role: role}, token, nil
}

// Login verifies credentials and requires a complete profile: an identity
// whose role assignment or account is missing cannot log in.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Profile, string, error) {
	identity, err := s.identities.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	profile, err := s.ResolveProfile(ctx, identity.ID)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(identity.ID, string(profile.Role))
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// ResolveProfile joins identity -> role assignment -> account. Any missing
// leg yields ErrProfileIncomplete: resolution is strictly all-or-nothing.
func (s *Service) ResolveProfile(ctx context.Context, identityID string) (*domain.Profile, error) {
	identity, err := s.identities.GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	assignment, err := s.roles.GetByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, assignment.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}

	identity.PasswordHash = ""
	return &domain.Profile{Identity: *identity, AccountID: account.ID, Role: assignment.Role}, nil
}

// isUniqueViolation covers Postgres (deployments) and SQLite (local dev).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
