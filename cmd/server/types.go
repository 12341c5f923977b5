package main

import (
	"codeberg.org/cde/python-api/internal/config"
	"codeberg.org/cde/python-api/internal/hostinfo"
	"codeberg.org/cde/python-api/internal/middleware"
	"codeberg.org/cde/python-api/internal/vault"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config         *config.Config
	router         *gin.Engine
	hosts          *hostinfo.Resolver
	vault          *vault.Probe
	rateLimitStore *middleware.RateLimitStore
	metrics        *middleware.Metrics
}
