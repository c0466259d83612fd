package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/placement-backend/internal/http/handlers"
	"github.com/yungbote/placement-backend/internal/http/middleware"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	AuthMiddleware  *middleware.AuthMiddleware
	HealthHandler   *handlers.HealthHandler
	AnalysisHandler *handlers.AnalysisHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		an := api.Group("/analysis")
		an.POST("/analyze", cfg.AnalysisHandler.Analyze)
		an.GET("/latest", cfg.AnalysisHandler.Latest)
		an.GET("/history", cfg.AnalysisHandler.History)
		an.GET("/learning-paths", cfg.AnalysisHandler.LearningPaths)
		an.PATCH("/learning-paths/:id/progress", cfg.AnalysisHandler.UpdateProgress)
		an.GET("/domains", cfg.AnalysisHandler.Domains)
	}

	return router
}
