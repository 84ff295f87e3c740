package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avdeyev/churnscope/internal/config"
	"github.com/avdeyev/churnscope/internal/server/http/handlers"
	"github.com/avdeyev/churnscope/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ChurnFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	predictHandler := handlers.NewPredictHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	bannerHandler := handlers.NewBannerHandler(cfg.BannerPath)

	engine.GET("/banner", bannerHandler.Banner)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Health)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/user/logout", authHandler.Logout)
	authed.POST("/predict", predictHandler.Online)
	authed.POST("/predict/batch", predictHandler.Batch)

	return engine
}
