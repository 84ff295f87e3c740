package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/churnscope/internal/server/http/dto"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	facade PredictFacade
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade PredictFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:       "ok",
		ModelVersion: h.facade.ModelVersion(),
		Store:        "ok",
	}
	if err := h.facade.StoreHealth(c.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.Store = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BannerHandler serves the branding image shown on the login screen.
type BannerHandler struct {
	path string
}

// NewBannerHandler creates BannerHandler for the configured asset path.
func NewBannerHandler(path string) *BannerHandler {
	return &BannerHandler{path: path}
}

// Banner handles GET /banner.
func (h *BannerHandler) Banner(c *gin.Context) {
	if h.path == "" {
		c.Status(http.StatusNotFound)
		return
	}
	if _, err := os.Stat(h.path); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(h.path)
}
