package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLANT_SHOP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LISTING_PATH", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected no database url, got %q", cfg.DatabaseURL)
	}
	if cfg.ListingPath != "shop.html" {
		t.Fatalf("expected default listing path, got %q", cfg.ListingPath)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PLANT_SHOP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/plants")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LISTING_PATH", "/catalog.html")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.DatabaseURL != "postgres://localhost/plants" || cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ListingPath != "catalog.html" {
		t.Fatalf("expected leading slash trimmed, got %q", cfg.ListingPath)
	}
}
