package middleware

import (
	"goeventcity/internal/domain"
	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated identity holds exactly the required
// role. There is no hierarchy: admin does not imply venue_manager.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthenticated(c, "Role not found in token")
			c.Abort()
			return
		}

		if domain.Role(role.(string)) != required {
			response.Forbidden(c, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAnyRole allows routes shared by a fixed set of roles. Each role is
// still matched exactly.
func RequireAnyRole(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthenticated(c, "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[domain.Role(role.(string))] {
			response.Forbidden(c, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
