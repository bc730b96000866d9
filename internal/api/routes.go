package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the API routes
func SetupRouter(h *Handler, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		repos := v1.Group("/repos")
		{
			repos.POST("", h.CreateReport)
			repos.GET("/:owner/:repo", h.GetRepositoryReport)
		}

		v1.POST("/analyze", h.Analyze)
		v1.POST("/dashboard", h.Dashboard)
		v1.GET("/search", h.Search)
	}

	return r
}

// requestLogger logs one line per request through logrus
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}).Debug("Handled request")
	}
}
