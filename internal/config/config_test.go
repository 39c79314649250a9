package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Create temporary config file
	content := `
server:
  port: 9090
  host: "127.0.0.1"

database:
  uri: "mongodb://testhost:27017"
  database: "testdb"

auth:
  jwtSecret: "test-secret"
`

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Load config
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify loaded values
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Expected host 127.0.0.1, got %s", cfg.Server.Host)
	}

	if cfg.Database.URI != "mongodb://testhost:27017" {
		t.Errorf("Expected test Mongo URI, got %s", cfg.Database.URI)
	}

	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("Expected JWT secret from file, got %q", cfg.Auth.JWTSecret)
	}

	// Defaults still apply to unset sections
	if cfg.Auth.TokenTTL != 240*time.Hour {
		t.Errorf("Expected token TTL default 240h, got %v", cfg.Auth.TokenTTL)
	}

	if cfg.Storage.BucketName != "media" {
		t.Errorf("Expected default bucket, got %s", cfg.Storage.BucketName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Expected defaults when config file is absent, got error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Server.Port)
	}

	if cfg.Database.Database != "backend_yt" {
		t.Errorf("Expected default database name, got %s", cfg.Database.Database)
	}
}
