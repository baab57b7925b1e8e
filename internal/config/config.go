package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultLogDir      = "logs"
	DefaultLogFile     = "fetch_github_standards.log"
	DefaultServiceName = "standards-fetcher"
)

type Config struct {
	AppEnv  string
	Logging LoggingConfig
	Tracing TracingConfig
}

type LoggingConfig struct {
	Dir  string
	File string
}

// Path is the log file location, Dir joined with File.
func (c LoggingConfig) Path() string {
	return filepath.Join(c.Dir, c.File)
}

type TracingConfig struct {
	// Endpoint is the OTLP/HTTP collector address. Empty keeps spans in-process.
	Endpoint    string
	ServiceName string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		AppEnv: os.Getenv("APP_ENV"),
		Logging: LoggingConfig{
			Dir:  getenv("STANDARDS_LOG_DIR", DefaultLogDir),
			File: getenv("STANDARDS_LOG_FILE", DefaultLogFile),
		},
		Tracing: TracingConfig{
			Endpoint:    os.Getenv("OTLP_ENDPOINT"),
			ServiceName: getenv("OTEL_SERVICE_NAME", DefaultServiceName),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
