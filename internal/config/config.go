// Package config provides environment-driven configuration for the service
// and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig is the top-level runtime configuration, read from environment
// variables (optionally seeded from a .env file by the CLI).
type AppConfig struct {
	// GeminiAPIKey authenticates against the Gemini API. Required.
	GeminiAPIKey string
	// DatabaseURL is the PostgreSQL connection URL. Required for the server;
	// the file-based CLI commands run without it.
	DatabaseURL string
	// Port the HTTP server listens on.
	Port int
	// MaxIterations bounds refinement passes per generation run.
	MaxIterations int
}

// Load reads the application configuration from the environment.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          8080,
		MaxIterations: 0, // 0 means the refine package default
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if iterStr := os.Getenv("MAX_REFINE_ITERATIONS"); iterStr != "" {
		iterations, err := strconv.Atoi(iterStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_REFINE_ITERATIONS: %v", err)
		}
		cfg.MaxIterations = iterations
	}

	return cfg, nil
}

// Validate checks the fields the server requires.
func (c *AppConfig) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("MAX_REFINE_ITERATIONS must be non-negative, got: %d", c.MaxIterations)
	}
	return nil
}
