package config

import (
	"fmt"
	"os"
)

// defaultPort is the listen port used when neither the PORT environment
// variable nor the -p flag is provided.
const defaultPort = 8000

// StructuredConfig is the top-level configuration container for the
// credvault service. It aggregates all sub-configurations and is populated
// by merging values from environment variables and command-line flags.
//
// Struct tags:
//   - env: direct environment variable name for scalar fields (caarlos0/env).
type StructuredConfig struct {
	// Storage holds configuration for the document-store backend.
	Storage Storage

	// Server holds network settings for the HTTP server.
	Server Server
}

// Storage groups the configuration for all persistence backends used by the
// service. Currently only the document store.
type Storage struct {
	// DB holds the document-store connection settings.
	DB DB
}

// DB holds connection settings for the document-store backend.
type DB struct {
	// URL is the connection string used to open the store connection
	// (e.g. "mongodb://localhost:27017").
	// Env: DATABASE_URL
	URL string `env:"DATABASE_URL"`

	// Name is the logical database name inside the store.
	// Env: DATABASE_NAME
	Name string `env:"DATABASE_NAME"`
}

// Configured reports whether both values required to open a store
// connection are present. When false the gateway is never constructed and
// the service runs without persistence.
func (db DB) Configured() bool {
	return db.URL != "" && db.Name != ""
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port on which the HTTP server listens.
	// Env: PORT (default 8000)
	Port int `env:"PORT"`
}

// Address returns the listen address in "host:port" form, applying the
// default port when none was configured.
func (s Server) Address() string {
	port := s.Port
	if port == 0 {
		port = defaultPort
	}
	return fmt.Sprintf("0.0.0.0:%d", port)
}

// EnvPresence reports whether the two store-related environment variables
// hold non-empty values in the process environment. It inspects the
// environment directly (rather than the merged config) because the
// diagnostics endpoint reports the raw env state, not the effective
// configuration. An empty value counts as absent.
func EnvPresence() (urlSet, nameSet bool) {
	return os.Getenv("DATABASE_URL") != "", os.Getenv("DATABASE_NAME") != ""
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
