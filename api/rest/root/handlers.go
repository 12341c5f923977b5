package root

import (
	"net/http"

	"codeberg.org/cde/python-api/internal/errors"
	"codeberg.org/cde/python-api/internal/logger"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Service information
// @Description Returns the service identity, the answering host and whether the Vault agent injected the config secret.
// @Tags service
// @Produce json
// @Success 200 {object} ServiceInfo
// @Failure 500 {object} errors.ErrorResponse
// @Router / [get]
func Handler(hosts HostnameResolver, probe SecretProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		log.Info("Root endpoint called")

		host, err := hosts.Hostname()
		if err != nil {
			errors.InternalError(c, "failed to resolve hostname", err)
			return
		}

		injected, err := probe.Injected()
		if err != nil {
			log.Warn("vault secret check failed", "error", err)
		}

		c.JSON(http.StatusOK, ServiceInfo{
			Service:       ServiceName,
			Message:       Greeting,
			Host:          host,
			VaultInjected: injected,
		})
	}
}
