package middleware

import (
	"strings"

	"goeventcity/internal/pkg/jwt"
	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores identity_id and role in the
// request context. Unauthenticated requests get a redirect signal to the
// sign-in page, never a raw error.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Unauthenticated(c, "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Unauthenticated(c, "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Unauthenticated(c, "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Unauthenticated(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("identity_id", claims.IdentityID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
