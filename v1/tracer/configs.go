package tracer

import (
	"os"
	"strconv"
)

// DefaultAppEnv is used when no deployment environment is configured.
const DefaultAppEnv = "development"

// Config holds the tracer configuration.
type Config struct {
	// ServiceName identifies the service emitting spans. It is attached
	// to every span as the service.name resource attribute.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment (for example "development",
	// "staging" or "production"). It is attached to every span as the
	// deployment.environment resource attribute.
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport controls whether spans are exported to an OTLP
	// collector over HTTP. When false, spans are still created and
	// propagated but never leave the process. The exporter endpoint is
	// taken from the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig returns a Config with export disabled.
func DefaultConfig() Config {
	return Config{
		AppEnv: DefaultAppEnv,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ServiceName = os.Getenv("TRACER_SERVICE_NAME")
	if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
		cfg.AppEnv = appEnv
	}
	if raw := os.Getenv("TRACER_ENABLE_EXPORT"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			cfg.EnableExport = enabled
		}
	}
	return cfg
}
