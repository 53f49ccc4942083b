package auth

import "goeventcity/internal/domain"

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type IdentityPublic struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AccountID string `json:"account_id"`
}

func toPublic(p *domain.Profile) IdentityPublic {
	return IdentityPublic{
		ID:        p.Identity.ID,
		Email:     p.Identity.Email,
		Name:      p.Identity.Name,
		Role:      string(p.Role),
		AccountID: p.AccountID,
	}
}
