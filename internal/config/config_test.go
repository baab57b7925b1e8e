package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STANDARDS_LOG_DIR", "")
	t.Setenv("STANDARDS_LOG_FILE", "")
	t.Setenv("OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg := Load()

	if cfg.Logging.Dir != "logs" {
		t.Errorf("Logging.Dir = %q, want logs", cfg.Logging.Dir)
	}
	if cfg.Logging.File != "fetch_github_standards.log" {
		t.Errorf("Logging.File = %q, want fetch_github_standards.log", cfg.Logging.File)
	}
	if cfg.Logging.Path() != filepath.Join("logs", "fetch_github_standards.log") {
		t.Errorf("Logging.Path() = %q", cfg.Logging.Path())
	}
	if cfg.Tracing.Endpoint != "" {
		t.Errorf("Tracing.Endpoint = %q, want empty", cfg.Tracing.Endpoint)
	}
	if cfg.Tracing.ServiceName != "standards-fetcher" {
		t.Errorf("Tracing.ServiceName = %q, want standards-fetcher", cfg.Tracing.ServiceName)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STANDARDS_LOG_DIR", "/var/log/standards")
	t.Setenv("STANDARDS_LOG_FILE", "run.log")
	t.Setenv("OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_SERVICE_NAME", "fetcher-dev")

	cfg := Load()

	if cfg.AppEnv != "prod" {
		t.Errorf("AppEnv = %q, want prod", cfg.AppEnv)
	}
	if cfg.Logging.Path() != filepath.Join("/var/log/standards", "run.log") {
		t.Errorf("Logging.Path() = %q", cfg.Logging.Path())
	}
	if cfg.Tracing.Endpoint != "collector:4318" {
		t.Errorf("Tracing.Endpoint = %q", cfg.Tracing.Endpoint)
	}
	if cfg.Tracing.ServiceName != "fetcher-dev" {
		t.Errorf("Tracing.ServiceName = %q", cfg.Tracing.ServiceName)
	}
}
