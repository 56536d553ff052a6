package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d accepted", port)
		}
	}
}

func TestValidate_AddrsRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "database.addrs") {
		t.Fatalf("Validate() = %v, want database.addrs error", err)
	}
}

func TestValidate_PageSizeOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.DefaultPageSize = 50
	cfg.Catalog.MaxPageSize = 10
	if err := cfg.Validate(); err == nil {
		t.Fatal("max_page_size below default_page_size accepted")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http timeouts = %d/%d/%d, want 10/10/10",
			cfg.HTTP.ReadTimeoutSec, cfg.HTTP.WriteTimeoutSec, cfg.HTTP.ShutdownSec)
	}
	if cfg.Catalog.DefaultPageSize != 20 {
		t.Errorf("default_page_size = %d, want 20", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Catalog.MaxPageSize != 100 {
		t.Errorf("max_page_size = %d, want 100", cfg.Catalog.MaxPageSize)
	}
	if cfg.Catalog.FetchLimit != 5000 {
		t.Errorf("fetch_limit = %d, want 5000", cfg.Catalog.FetchLimit)
	}
	if cfg.Catalog.KeyPrefix != "propfind:" {
		t.Errorf("key_prefix = %q", cfg.Catalog.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PROPFIND_TEST_PASSWORD", "s3cret")

	in := []byte("password: ${PROPFIND_TEST_PASSWORD}\nprefix: ${PROPFIND_TEST_MISSING:-propfind:}\n")
	out := string(expandEnvVars(in))

	if !strings.Contains(out, "password: s3cret") {
		t.Errorf("env var not expanded: %q", out)
	}
	if !strings.Contains(out, "prefix: propfind:") {
		t.Errorf("default value not applied: %q", out)
	}
}
