package config

import (
	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all gateway configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Auth    AuthConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Addr string `env:"GATEWAY_ADDR" envDefault:"0.0.0.0:8080"`
}

// BackendConfig points at the hospital REST API this gateway fronts.
type BackendConfig struct {
	URL string `env:"HOSPITAL_API_URL" envDefault:"http://hospital-api:5000"`
}

type AuthConfig struct {
	URL string `env:"AUTH_SERVICE_URL" envDefault:"http://auth-service:8081"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://redis:6379/0"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8080"`
}

// NewConfig creates a new Config
func NewConfig() (*Config, error) {
	cfg := new(Config)
	err := env.Parse(cfg)

	return cfg, err
}
