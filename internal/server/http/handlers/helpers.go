package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avdeyev/churnscope/internal/server/http/middleware"
	"github.com/avdeyev/churnscope/internal/session"
)

// CurrentSession extracts the resumed session from context.
func CurrentSession(c *gin.Context) *session.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return session.New()
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return session.New()
	}
	return sess
}
