package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadGatewayFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "db.json" {
		t.Fatalf("expected default db path, got %q", cfg.DatabasePath)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	data := "port: 8080\ndatabase_path: /var/lib/social/db.json\ncors_allowed_origins:\n  - https://example.com\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadGatewayFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/var/lib/social/db.json" {
		t.Fatalf("unexpected db path %q", cfg.DatabasePath)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DB_PATH", "other.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadGatewayFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 4000 {
		t.Fatalf("expected env port 4000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "other.json" {
		t.Fatalf("expected env db path, got %q", cfg.DatabasePath)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if _, err := LoadGatewayFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for bad PORT")
	}

	t.Setenv("PORT", "0")
	if _, err := LoadGatewayFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for out-of-range port")
	}
}

func TestMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("port: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadGatewayFromPath(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
