package main

import (
	"context"
	"fmt"

	"codeberg.org/cde/python-api/internal/config"
	"codeberg.org/cde/python-api/internal/hostinfo"
	"codeberg.org/cde/python-api/internal/logger"
	"codeberg.org/cde/python-api/internal/middleware"
	"codeberg.org/cde/python-api/internal/vault"
	"github.com/gin-gonic/gin"
)

const metricsNamespace = "python_api"

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// nil trusts no proxy, so ClientIP is always the socket peer
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	server := &Server{
		config: cfg,
		router: router,
		hosts:  hostinfo.NewResolver(),
		vault:  vault.NewProbe(cfg.VaultSecretPath),
	}

	if cfg.RateLimitEnabled() {
		store, err := middleware.NewRateLimitStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rate limit store: %w", err)
		}

		server.rateLimitStore = store
	}

	if cfg.MetricsEnabled {
		server.metrics = middleware.NewMetrics(metricsNamespace)
	}

	if err := RegisterRoutes(router, server); err != nil {
		server.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("server initialized",
		"environment", cfg.Environment,
		"vault_secret_path", server.vault.Path(),
		"rate_limit", cfg.RateLimit,
		"rate_limit_shared", server.rateLimitStore != nil && server.rateLimitStore.Shared(),
		"trusted_proxies", cfg.TrustedProxies,
		"metrics", cfg.MetricsEnabled,
		"swagger", cfg.SwaggerEnabled,
	)

	return server, nil
}

// releases external connections
func (s *Server) Close() error {
	if s.rateLimitStore == nil {
		return nil
	}

	return s.rateLimitStore.Close()
}
