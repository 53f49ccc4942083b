package auth

import (
	"errors"
	"net/http"

	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/sign-up", h.SignUp)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/session", h.Session)
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	profile, token, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown role")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD", "Password must be at least 8 characters")
		case errors.Is(err, ErrAccountCreation):
			response.Error(c, http.StatusInternalServerError, "ACCOUNT_CREATION_FAILED", "Failed to create account")
		case errors.Is(err, ErrRoleAssignment):
			response.Error(c, http.StatusInternalServerError, "ROLE_ASSIGNMENT_FAILED", "Failed to assign role")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to sign up")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"identity": toPublic(profile),
		"token":    token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	profile, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrProfileIncomplete):
			response.Unauthenticated(c, "Profile is incomplete")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"identity": toPublic(profile),
		"token":    token,
	})
}

// Session resolves the calling identity. The JWT middleware has already
// validated the token; this re-resolves the full profile from storage.
func (h *Handler) Session(c *gin.Context) {
	identityID := c.GetString("identity_id")
	if identityID == "" {
		response.Unauthenticated(c, "Authentication required")
		return
	}

	profile, err := h.service.ResolveProfile(c.Request.Context(), identityID)
	if err != nil {
		if errors.Is(err, ErrProfileIncomplete) {
			response.Unauthenticated(c, "Profile is incomplete")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SESSION_FAILED", "Failed to resolve session")
		return
	}

	response.Success(c, http.StatusOK, toPublic(profile))
}
