package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avdeyev/churnscope/internal/domain/errors"
	"github.com/avdeyev/churnscope/internal/server/http/dto"
	"github.com/avdeyev/churnscope/internal/server/http/middleware"
	"github.com/avdeyev/churnscope/internal/session"
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register. Registration leaves the caller
// logged out; authentication is a separate explicit step.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sess := session.New()
	if err := sess.BeginRegistration(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Login, req.Password); err != nil {
		_ = sess.CancelRegistration()
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	_ = sess.CompleteRegistration()
	c.Status(http.StatusOK)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Logout handles POST /api/user/logout. The session returns to the
// logged-out state and the token cookie is dropped.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := CurrentSession(c)
	if err := sess.Logout(); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	middleware.ClearAuthCookie(c)
	c.Status(http.StatusOK)
}
