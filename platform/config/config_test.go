package config

import "testing"

func TestLoadDefaultsAllowAllOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "memory://")
	t.Setenv("CORS_ORIGINS", "*")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatalf("expected wildcard origins to allow all")
	}
	if cfg.GetCORSAllowCreds() {
		t.Fatalf("credentials must be disabled when all origins are allowed")
	}
	if cfg.GetFormRateLimit() != 0 {
		t.Fatalf("expected rate limit disabled by default, got %d", cfg.GetFormRateLimit())
	}
}

func TestLoadFallsBackToMongoURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "gadget_haven")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GetDatabaseURL() != "mongodb://localhost:27017" {
		t.Fatalf("unexpected database url %q", cfg.GetDatabaseURL())
	}
	if cfg.GetDatabaseName() != "gadget_haven" {
		t.Fatalf("unexpected database name %q", cfg.GetDatabaseName())
	}
}

func TestLoadRequiresDatabaseNameForMongo(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DB_NAME is missing")
	}
}

func TestLoadExplicitOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "memory://")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GetCORSAllowAll() {
		t.Fatalf("explicit origins must not allow all")
	}
	origins := cfg.GetCORSOrigins()
	if len(origins) != 2 || origins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins %v", origins)
	}
}
