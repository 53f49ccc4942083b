package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidRole        = errors.New("invalid role")

	// Sign-up stage errors. Kept distinct so a partial failure is always
	// attributable to the step that failed.
	ErrAccountCreation = errors.New("account creation failed")
	ErrRoleAssignment  = errors.New("role assignment failed")

	// ErrProfileIncomplete means the identity authenticated but one of the
	// profile legs (account or role assignment) is missing. Resolution is
	// all-or-nothing; callers treat this as unauthenticated.
	ErrProfileIncomplete = errors.New("profile incomplete")
)
