package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN         string // MySQL DSN, must include parseTime=true
	Host        string
	Port        string
	Environment string // "development" or "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("godotenv.Load() error: %v", err)
	}

	cfg := &Config{
		DSN:         os.Getenv("DSN"),
		Host:        os.Getenv("API_HOST"),
		Port:        os.Getenv("API_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
	}
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	return cfg
}

// AllowedOrigins is the CORS allowlist. Everything is allowed in
// development; production is restricted to the known frontends.
func (c *Config) AllowedOrigins() []string {
	if c.Environment == "production" {
		return []string{
			"https://hrmslite.netlify.app",
			"http://localhost:3000",
		}
	}
	return []string{"*"}
}
