package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No explicit path and no file in the working directory.
	dir := t.TempDir()
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(old)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.MongoDatabase != "netlint" {
		t.Errorf("MongoDatabase = %q, want netlint", cfg.Server.MongoDatabase)
	}
	if cfg.CacheDir != "" || cfg.Radius != 0 {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netlint.toml")
	content := `
cache_dir = "/tmp/netlint-cache"
radius = 150.0

[server]
addr = ":9090"
redis_addr = "localhost:6379"
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CacheDir != "/tmp/netlint-cache" || cfg.Radius != 150 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.RedisAddr != "localhost:6379" {
		t.Errorf("server = %+v", cfg.Server)
	}
	// Unset values still get defaults.
	if cfg.Server.MongoDatabase != "netlint" {
		t.Errorf("MongoDatabase = %q, want default", cfg.Server.MongoDatabase)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("explicit missing config should error")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("cache_dir = ["), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("invalid TOML should error")
	}
}
