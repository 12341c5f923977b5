package health

import "github.com/gin-gonic/gin"

// probe paths, exempt from rate limiting and request logging
var Paths = []string{"/health", "/actuator/health"}

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", Handler)
	router.HEAD("/health", Handler)
	router.GET("/actuator/health", ActuatorHandler)
}
