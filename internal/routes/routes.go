package routes

import (
	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/handlers"
	"elitejobs_backend/internal/logger"
	"elitejobs_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter собирает gin.Engine с общими middleware и маршрутами
func SetupRouter(db *gorm.DB, appHandlers *handlers.AppHandlers) *gin.Engine {
	cfg := config.GetConfig()
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	// Локальное хранилище раздает файлы самим приложением
	if cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	api := router.Group("/api/v1")
	{
		appHandlers.Health.RegisterRoutes(api)
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.OAuth.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.Job.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
		appHandlers.Recruiter.RegisterRoutes(api)
	}

	if appHandlers.OAuth.Enabled() {
		logger.Info("google oauth routes registered")
	}

	return router
}
