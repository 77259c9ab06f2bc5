package localai

import (
	"os"
	"strconv"
	"time"
)

// Config holds connection settings for a LocalAI (OpenAI-compatible) server.
//
// It is intentionally minimal, readable, and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := localai.DefaultConfig()
//	cfg.BaseURL = "http://localhost:8080/v1"
//	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
//
// Example (builder style):
//
//	cfg := localai.FromBaseURL("http://localhost:8080").
//	    WithAPIKey(os.Getenv("OPENAI_API_KEY")).
//	    WithTimeout(30 * time.Second)
type Config struct {
	// Base URL of the LocalAI server. The /v1 suffix is optional and
	// appended automatically when missing.
	BaseURL string `yaml:"base_url" env:"OPENAI_API_BASE"`

	// API key forwarded as a bearer token on every request.
	// LocalAI deployments without authentication still require a
	// placeholder value so that misconfiguration fails fast.
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`

	// Optional HTTP/HTTPS proxy URL for outgoing requests.
	Proxy string `yaml:"proxy" env:"OPENAI_PROXY"`

	// Optional organization identifier forwarded to the server.
	Organization string `yaml:"organization" env:"OPENAI_ORGANIZATION"`

	// Optional API version header for deployments that require one.
	APIVersion string `yaml:"api_version" env:"OPENAI_API_VERSION"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" env:"LOCALAI_HTTP_TIMEOUT_SECONDS"`
}

// Default values for configuration
const (
	DefaultTimeout = 60 * time.Second
)

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}

// NewConfigFromEnv reads the connection settings from environment variables.
func NewConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = os.Getenv("OPENAI_API_BASE")
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Proxy = os.Getenv("OPENAI_PROXY")
	cfg.Organization = os.Getenv("OPENAI_ORGANIZATION")
	cfg.APIVersion = os.Getenv("OPENAI_API_VERSION")

	if v := os.Getenv("LOCALAI_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}

	return cfg
}

// FromBaseURL returns a default config pre-filled with a specific base URL.
func FromBaseURL(url string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithProxy(url string) *Config {
	c.Proxy = url
	return c
}

func (c *Config) WithOrganization(org string) *Config {
	c.Organization = org
	return c
}

func (c *Config) WithAPIVersion(version string) *Config {
	c.APIVersion = version
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// Validate ensures required fields are present and well-formed.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Proxy != "" {
		if _, err := parseProxyURL(c.Proxy); err != nil {
			return err
		}
	}
	return nil
}
