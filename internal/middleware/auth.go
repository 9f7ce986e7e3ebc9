package middleware

import (
	"net/http"
	"strings"

	"pearl/internal/auth"
	"pearl/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Session resolves the caller's token (Authorization header first, then the
// session cookie) to a server-side session. It never aborts: anonymous and
// stale tokens simply leave no session on the context.
func Session(tokens *auth.Tokens, store session.Store, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.WithError(err).Error("load session failed")
			}
			c.Next()
			return
		}

		session.Attach(c, sess)
		c.Set("userID", sess.UserID)
		c.Set("userRole", sess.Role)
		c.Next()
	}
}

// RequireSession rejects requests without an authenticated session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.Current(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.Split(h, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if ck, err := c.Cookie(auth.CookieName); err == nil {
		return ck
	}
	return ""
}
