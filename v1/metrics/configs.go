package metrics

import (
	"os"
	"strconv"
)

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
// It contains settings that control how metrics are exposed and collected.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"   → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// This setting can be configured via:
	//   - YAML configuration with the "address" key
	//   - Environment variable METRICS_ADDRESS
	//
	// Default: ":9090"
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// When true, metrics such as goroutine count, GC stats, and CPU usage
	// will be included automatically. Disable only if you want full
	// manual control over registered collectors.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_default_collectors" key
	//   - Environment variable METRICS_ENABLE_DEFAULT_COLLECTORS
	//
	// Default: false
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace sets a global prefix for all metrics registered by this service.
	// Useful when running multiple services in the same Prometheus cluster.
	//
	// Example:
	//   Namespace: "localai"
	//   → Metric name becomes "localai_requests_total"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "namespace" key
	//   - Environment variable METRICS_NAMESPACE
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`

	// ServiceName identifies the service exposing metrics.
	// This is used as a common label in all metrics to help
	// distinguish metrics between services in multi-tenant deployments.
	//
	// Example:
	//   ServiceName: "localai-adapter"
	//   → metrics include label service="localai-adapter"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// DefaultConfig returns a Config listening on the default metrics address.
func DefaultConfig() Config {
	return Config{
		Address: DefaultMetricsAddress,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() Config {
	cfg := DefaultConfig()
	if address := os.Getenv("METRICS_ADDRESS"); address != "" {
		cfg.Address = address
	}
	if raw := os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			cfg.EnableDefaultCollectors = enabled
		}
	}
	cfg.Namespace = os.Getenv("METRICS_NAMESPACE")
	cfg.ServiceName = os.Getenv("METRICS_SERVICE_NAME")
	return cfg
}
