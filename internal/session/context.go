package session

import "github.com/gin-gonic/gin"

const contextKey = "session"

// Attach stores the resolved session on the request context.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// Current returns the session resolved by the session middleware, if any.
func Current(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}
