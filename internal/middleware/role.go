package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the given roles (see auth.RoleStaff,
// auth.RoleAdmin). Must run after AuthMiddleware, which stores the
// token's role under userRole.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get("userRole")
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
