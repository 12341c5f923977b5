package config

type Config struct {
	Environment        string   `validate:"required,oneof=development production test"`
	Port               string   `validate:"required,numeric"`
	LogLevel           string   `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat          string   `validate:"omitempty,oneof=json text"`
	VaultSecretPath    string   `validate:"required"`
	RateLimit          string   // empty disables rate limiting
	TrustedProxies     []string `validate:"dive,cidr|ip"`
	RedisURL           string   `validate:"omitempty,url"`
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
	MetricsEnabled     bool
	SwaggerEnabled     bool
}

// returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// returns true when a rate limit is configured
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimit != ""
}
