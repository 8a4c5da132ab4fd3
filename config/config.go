// Package config holds runtime settings for the task manager server and the
// MongoDB connection helpers. Settings come from the environment (with an
// optional .env overlay loaded in main) and are passed explicitly into the
// handlers instead of living in package globals.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the task manager server.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - MongoURI: MongoDB connection string.
//   - Database: database name holding the users and tasks collections.
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256).
//   - TokenTTL: bearer token lifetime.
type Config struct {
	Addr      string
	MongoURI  string
	Database  string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load builds a Config from environment variables, falling back to
// development defaults. NOTE: the default secret is insecure and must be
// overridden in production.
func Load() *Config {
	cfg := &Config{
		Addr:      ":6080",
		MongoURI:  "mongodb://localhost:27017",
		Database:  "taskmanager",
		JWTSecret: "your_secret_key",
		TokenTTL:  1 * time.Hour,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.MongoURI = uri
	}
	if db := os.Getenv("MONGO_DB"); db != "" {
		cfg.Database = db
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = d
		}
	}

	return cfg
}
