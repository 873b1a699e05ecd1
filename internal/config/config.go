// Package config loads the application configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration the rest of the
// application depends on; tests swap in a literal implementation.
type Provider interface {
	GetAddr() string
	GetAPIBaseURL() string
	GetSessionSecret() string
	GetCatalogPath() string
	GetDataDir() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	APIBaseURL    string
	SessionSecret string
	CatalogPath   string
	DataDir       string
}

// New loads configuration from environment variables, reading a .env file
// first when one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getenv("APP_ADDR", ":8080"),
		APIBaseURL:    getenv("API_BASE_URL", "http://localhost:8000"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CatalogPath:   getenv("CATALOG_FILE", "web/data/campanhas.json"),
		DataDir:       getenv("DATA_DIR", "data"),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetCatalogPath() string   { return c.CatalogPath }
func (c *Config) GetDataDir() string       { return c.DataDir }
