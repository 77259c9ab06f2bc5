package logger

import (
	"os"
	"strconv"
)

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger configuration.
type Config struct {
	// Level controls the minimum level that is emitted. One of the
	// Debug, Info, Warning or Error constants. Defaults to Info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is added to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableTracing adds trace_id and span_id fields to entries logged
	// through the *WithContext methods when the context carries an
	// active OpenTelemetry span.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level: Info,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() Config {
	cfg := DefaultConfig()
	if level := os.Getenv("ZAP_LOGGER_LEVEL"); level != "" {
		cfg.Level = level
	}
	cfg.ServiceName = os.Getenv("SERVICE_NAME")
	if raw := os.Getenv("LOGGER_ENABLE_TRACING"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			cfg.EnableTracing = enabled
		}
	}
	return cfg
}
