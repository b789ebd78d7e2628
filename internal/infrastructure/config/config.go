package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, populated from environment
// variables. A .env file is loaded beforehand by godotenv/autoload in
// main.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// ClientBaseURL is the frontend origin embedded in invitation
	// registration links.
	ClientBaseURL string `env:"CLIENT_BASE_URL" envDefault:"http://localhost:3000"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`

	MailFrom string `env:"MAIL_FROM" envDefault:"no-reply@zoracom.example.com"`
	MailMock bool   `env:"MAIL_MOCK" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
