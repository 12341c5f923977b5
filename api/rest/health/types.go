package health

// Response is the liveness/readiness probe payload
type Response struct {
	Status string `json:"status"`
}

// ActuatorResponse mirrors the Spring Boot actuator health payload
type ActuatorResponse struct {
	Status string `json:"status"`
}
