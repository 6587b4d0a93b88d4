package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds settings read from the environment.
type ServerConfig struct {
	DatabaseURL       string `env:"SWIPEMATH_DATABASE_URL" envDefault:"sqlite://swipemath.db"`
	MigrationsDir     string `env:"SWIPEMATH_MIGRATIONS_DIR" envDefault:"./migrations"`
	FirebaseProjectID string `env:"SWIPEMATH_FIREBASE_PROJECT_ID"`
	FirebaseAPIKey    string `env:"SWIPEMATH_FIREBASE_API_KEY"`
	TLSCertFile       string `env:"SWIPEMATH_TLS_CERT_FILE"`
	TLSKeyFile        string `env:"SWIPEMATH_TLS_KEY_FILE"`
}

// LoadServerConfig parses ServerConfig from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg, err := env.ParseAs[ServerConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %v", err)
	}
	return &cfg, nil
}
