package main

import (
	"slices"

	"codeberg.org/cde/python-api/api/rest/health"
	"codeberg.org/cde/python-api/api/rest/root"
	_ "codeberg.org/cde/python-api/docs"
	"codeberg.org/cde/python-api/internal/errors"
	"codeberg.org/cde/python-api/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const metricsPath = "/metrics"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	// probes and scrapes are neither rate limited nor logged
	quiet := append(slices.Clone(health.Paths), metricsPath)

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(quiet...),
		errors.Recovery(),
		middleware.CORS(server.config.CORSAllowedOrigins),
	)

	if server.metrics != nil {
		router.Use(server.metrics.Middleware())
	}

	if server.rateLimitStore != nil {
		limit, err := middleware.RateLimit(server.config.RateLimit, server.rateLimitStore, quiet...)
		if err != nil {
			return err
		}

		router.Use(limit)
	}

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})
	router.NoMethod(errors.MethodNotAllowed)

	health.RegisterRoutes(router)
	root.RegisterRoutes(router, server.hosts, server.vault)

	if server.metrics != nil {
		router.GET(metricsPath, server.metrics.Handler())
	}

	if server.config.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return nil
}
