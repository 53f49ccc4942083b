package middleware

import (
	"context"
	"net/http"

	"goeventcity/internal/domain"
	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// PermissionChecker is the read-only grant lookup the guard consults.
type PermissionChecker interface {
	Exists(ctx context.Context, role domain.Role, permission string) (bool, error)
}

// PermissionGuard gates routes on (role, permission) grants. The decision is
// a pure function of the grant table; nothing is cached or mutated, so two
// consecutive checks with unchanged grants always agree.
type PermissionGuard struct {
	grants PermissionChecker
}

func NewPermissionGuard(grants PermissionChecker) *PermissionGuard {
	return &PermissionGuard{grants: grants}
}

func (g *PermissionGuard) Require(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthenticated(c, "Role not found in token")
			c.Abort()
			return
		}

		ok, err := g.grants.Exists(c.Request.Context(), domain.Role(role.(string)), permission)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "PERMISSION_CHECK_FAILED", "Failed to check permission")
			c.Abort()
			return
		}
		if !ok {
			response.Forbidden(c, "Access denied: missing permission")
			c.Abort()
			return
		}

		c.Next()
	}
}
