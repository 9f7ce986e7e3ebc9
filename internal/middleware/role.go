package middleware

import (
	"net/http"

	"pearl/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireRole is the single authorization gate for protected groups.
// No session → 401, wrong role → 403.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.Current(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		for _, allowed := range allowedRoles {
			if sess.Role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
