package config

import (
	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all console configuration
type Config struct {
	// GatewayURL is the /api root the browser frontend also talks to.
	GatewayURL string `env:"GATEWAY_URL" envDefault:"http://localhost:8080/api"`
	// SessionToken is the bearer token issued by the auth service login.
	SessionToken string `env:"SESSION_TOKEN"`
	// JWTSecret, when set, lets the console verify the token signature
	// instead of only reading its claims.
	JWTSecret string `env:"JWT_SECRET"`
}

// NewConfig creates a new Config
func NewConfig() (*Config, error) {
	cfg := new(Config)
	err := env.Parse(cfg)

	return cfg, err
}
