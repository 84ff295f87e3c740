package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/avdeyev/churnscope/internal/pkg/auth"
	"github.com/avdeyev/churnscope/internal/session"
)

const (
	// SessionContextKey is a gin context key for the caller's resumed session.
	SessionContextKey = "session"
	authCookieName    = "churnscope_token"
)

// TokenParser resolves a token into the username it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired resumes the caller's session from the request token and
// rejects callers that cannot reach the prediction screens.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		username, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		sess := session.Resume(username)
		if !sess.CanPredict() {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(SessionContextKey, sess)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie so the client returns to the
// logged-out screen.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
