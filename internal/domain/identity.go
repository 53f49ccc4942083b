package domain

import "time"

type Role string

const (
	RoleFan          Role = "fan"
	RolePerformer    Role = "performer"
	RoleVenueManager Role = "venue_manager"
	RoleInfluencer   Role = "influencer"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the closed set of platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFan, RolePerformer, RoleVenueManager, RoleInfluencer, RoleAdmin:
		return true
	}
	return false
}

// Permission names referenced by permission_grants rows.
const (
	PermManageVenue     = "manage_venue"
	PermManageEvents    = "manage_events"
	PermManagePerformer = "manage_performer_profile"
	PermCreateBooking   = "create_booking"
	PermModerateContent = "moderate_content"
)

// Identity is an authenticable principal. The ID is immutable after sign-up.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Account is the billing/ownership entity. Exactly one personal account is
// created per identity at sign-up.
type Account struct {
	ID                      string    `json:"id"`
	PrimaryOwnerIdentityID  string    `json:"primary_owner_identity_id"`
	Name                    string    `json:"name"`
	Email                   string    `json:"email"`
	IsPersonal              bool      `json:"is_personal"`
	CreatedAt               time.Time `json:"created_at"`
}

// RoleAssignment binds an identity/account pair to exactly one role.
type RoleAssignment struct {
	IdentityID string    `json:"identity_id"`
	AccountID  string    `json:"account_id"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// PermissionGrant is read-only reference data mapping a role to a permission.
type PermissionGrant struct {
	Role       Role   `json:"role"`
	Permission string `json:"permission"`
}

// Profile is a fully resolved identity: who they are, which account they own
// and which role they act as. All three legs must exist for a profile to
// resolve at all.
type Profile struct {
	Identity  Identity `json:"identity"`
	AccountID string   `json:"account_id"`
	Role      Role     `json:"role"`
}
