package app

import (
	"context"
	"pathfinder/docs"
	"pathfinder/internal/config"
	"pathfinder/pkg/monitoring"
	"pathfinder/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(ctx context.Context, router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 生成接口会调用外部服务，单独限流
	limiter := security.NewRateLimiter(ctx, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()).Middleware()

	// 1. 页面
	router.GET("/", c.learningPath.ShowPage)
	router.POST("/", limiter, c.learningPath.SubmitForm)

	// 2. API
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/levels", c.learningPath.ListLevels)
		api.POST("/learning-path", limiter, c.learningPath.Generate)
	}
}
