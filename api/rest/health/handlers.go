package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusHealthy = "healthy"
	StatusUp      = "UP"
)

// Handler godoc
// @Summary Health check
// @Description Liveness/readiness probe target. Always healthy while the process serves requests.
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: StatusHealthy})
}

// ActuatorHandler godoc
// @Summary Actuator-style health check
// @Description Health payload in the format expected by Spring Boot tooling.
// @Tags health
// @Produce json
// @Success 200 {object} ActuatorResponse
// @Router /actuator/health [get]
func ActuatorHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ActuatorResponse{Status: StatusUp})
}
