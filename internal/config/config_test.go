package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 3333 {
		t.Errorf("expected port 3333, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Session.CookieName != "sessionId" {
		t.Errorf("expected cookie sessionId, got %q", cfg.Session.CookieName)
	}
	if cfg.Session.MaxAge != 7*24*time.Hour {
		t.Errorf("expected 7 day max age, got %v", cfg.Session.MaxAge)
	}
	if !cfg.Metrics.IsEnabled() || cfg.Metrics.Path != "/metrics" {
		t.Errorf("expected metrics on /metrics, got %+v", cfg.Metrics)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8080
database:
  driver: sqlite
  path: /tmp/diet.db
session:
  cookie_name: sid
  max_age: 1h
log:
  level: debug
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.Path != "/tmp/diet.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Session.CookieName != "sid" || cfg.Session.MaxAge != time.Hour {
		t.Errorf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Metrics.IsEnabled() {
		t.Errorf("expected metrics disabled")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: sqlite
`)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.Host != "db.internal" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: oracle\n")

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [")

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}

	want := "host=h port=5432 user=u password=p dbname=d sslmode=disable"
	if got := c.DSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
