package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Upstream: UpstreamConfig{BaseURL: "http://localhost:9000"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingUpstreamURL(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing upstream.base_url")
	}
}

func TestValidate_NonHTTPUpstreamURL(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.BaseURL = "localhost:9000"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-http upstream url")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Upstream.TimeoutSec != 10 {
		t.Errorf("Upstream.TimeoutSec = %d, want 10", cfg.Upstream.TimeoutSec)
	}
	if cfg.Upstream.ForwardAuthorization == nil || !*cfg.Upstream.ForwardAuthorization {
		t.Error("ForwardAuthorization should default to true")
	}
	if cfg.Auth.AllowAnonymousOrders == nil || !*cfg.Auth.AllowAnonymousOrders {
		t.Error("AllowAnonymousOrders should default to true")
	}
}

func TestApplyDefaults_ExplicitFalseKept(t *testing.T) {
	f := false
	cfg := validConfig()
	cfg.Upstream.ForwardAuthorization = &f
	cfg.Auth.AllowAnonymousOrders = &f
	cfg.ApplyDefaults()

	if *cfg.Upstream.ForwardAuthorization {
		t.Error("explicit forward_authorization=false must be kept")
	}
	if *cfg.Auth.AllowAnonymousOrders {
		t.Error("explicit allow_anonymous_orders=false must be kept")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
http:
  port: 8080
upstream:
  base_url: ${TEST_UPSTREAM_URL:-http://fallback:9000}
auth:
  jwt_secret: ${TEST_JWT_SECRET}
`)
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEST_JWT_SECRET", "super-secret")
	chdir(t, dir)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://fallback:9000" {
		t.Errorf("BaseURL = %q, want the ${VAR:-default} fallback", cfg.Upstream.BaseURL)
	}
	if cfg.Auth.JWTSecret != "super-secret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
