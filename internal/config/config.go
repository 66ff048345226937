package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr        string        `envconfig:"STOREFRONT_ADDR" default:":8080"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-secret"`
	Theme       string        `envconfig:"STOREFRONT_THEME" default:"fashion"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
