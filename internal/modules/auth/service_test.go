package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goeventcity/internal/database"
	"goeventcity/internal/domain"
	jwtsvc "goeventcity/internal/pkg/jwt"
	"goeventcity/internal/repository"
)

// The sign-up saga is exercised against a real in-memory SQLite database:
// mocking the transaction would prove nothing about rollback behavior.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func newTestService(db *gorm.DB) *Service {
	return NewService(
		repository.NewIdentityRepository(db),
		repository.NewAccountRepository(db),
		repository.NewRoleAssignmentRepository(db),
		jwtsvc.New("test-secret", time.Hour),
		nil,
	)
}

func signUpReq(email string) SignUpRequest {
	return SignUpRequest{
		Name:     "Test Person",
		Email:    email,
		Password: "password123",
		Role:     "fan",
	}
}

func TestSignUp_CreatesCompleteProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	profile, token, err := svc.SignUp(context.Background(), signUpReq("fan@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "fan@example.com", profile.Identity.Email)
	assert.Equal(t, domain.RoleFan, profile.Role)
	assert.NotEmpty(t, profile.AccountID)
	assert.Empty(t, profile.Identity.PasswordHash)

	// The profile must resolve fully afterwards.
	resolved, err := svc.ResolveProfile(context.Background(), profile.Identity.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.AccountID, resolved.AccountID)
	assert.Equal(t, domain.RoleFan, resolved.Role)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, _, err := svc.SignUp(context.Background(), signUpReq("dup@example.com"))
	require.NoError(t, err)

	_, _, err = svc.SignUp(context.Background(), signUpReq("dup@example.com"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignUp_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	req := signUpReq("x@example.com")
	req.Role = "superuser"
	_, _, err := svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestSignUp_WeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	req := signUpReq("x@example.com")
	req.Password = "short"
	_, _, err := svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignUp_RoleAssignmentFailureRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	// Force the third stage to fail: without its table the role insert
	// errors, and the whole sign-up must roll back.
	require.NoError(t, db.Migrator().DropTable("role_assignments"))

	_, _, err := svc.SignUp(context.Background(), signUpReq("orphan@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoleAssignment)
	assert.NotErrorIs(t, err, ErrAccountCreation)

	// No orphaned identity or account may survive the failure.
	identities := repository.NewIdentityRepository(db)
	exists, err := identities.ExistsByEmail(context.Background(), "orphan@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSignUp_AccountCreationFailureIsDistinct(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	require.NoError(t, db.Migrator().DropTable("accounts"))

	_, _, err := svc.SignUp(context.Background(), signUpReq("orphan2@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountCreation)
	assert.NotErrorIs(t, err, ErrRoleAssignment)
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, _, err := svc.SignUp(context.Background(), signUpReq("login@example.com"))
	require.NoError(t, err)

	profile, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Login@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleFan, profile.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, _, err := svc.SignUp(context.Background(), signUpReq("login2@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "login2@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveProfile_MissingLegIsIncomplete(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	profile, _, err := svc.SignUp(context.Background(), signUpReq("strict@example.com"))
	require.NoError(t, err)

	// Remove the role assignment: the raw identity still exists, but
	// resolution is all-or-nothing.
	require.NoError(t, db.Exec("DELETE FROM role_assignments WHERE identity_id = ?", profile.Identity.ID).Error)

	_, err = svc.ResolveProfile(context.Background(), profile.Identity.ID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestResolveProfile_UnknownIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db)

	_, err := svc.ResolveProfile(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}
