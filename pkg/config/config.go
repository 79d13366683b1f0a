package config

import (
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Used to assemble a DSN when DATABASE_URL is not set
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"dealership"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	// Default admin seeded at startup when no user exists with this email
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@auto.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"123456"`
}

// Load reads configuration from environment variables. A .env file is
// optional and only used for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
