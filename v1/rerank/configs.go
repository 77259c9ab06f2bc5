package rerank

import (
	"os"
	"strconv"

	"github.com/go-skynet/localai-go/v1/localai"
)

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	// DefaultModel is the reranking model requested when none is configured.
	DefaultModel = "jina-reranker-v1-base-en"

	// DefaultTopN is the number of documents CompressDocuments returns.
	DefaultTopN = 3
)

// Config holds the configuration for the rerank client.
type Config struct {
	// Connection configures the underlying LocalAI connection. When nil,
	// the connection is built from the standard OPENAI_* environment
	// variables via localai.NewConfigFromEnv.
	Connection *localai.Config `yaml:"connection"`

	// Model is the reranking model requested from the server.
	//
	// Default: "jina-reranker-v1-base-en"
	Model string `yaml:"model" env:"LOCALAI_RERANK_MODEL"`

	// TopN is the number of documents returned by CompressDocuments and
	// the default top_n sent to the server. Must be at least 1.
	//
	// Default: 3
	TopN int `yaml:"top_n" env:"LOCALAI_RERANK_TOP_N"`
}

// DefaultConfig returns a Config with all defaults applied and the
// connection left to environment-based construction.
func DefaultConfig() *Config {
	return &Config{
		Model: DefaultModel,
		TopN:  DefaultTopN,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := os.Getenv("LOCALAI_RERANK_MODEL"); model != "" {
		cfg.Model = model
	}
	if raw := os.Getenv("LOCALAI_RERANK_TOP_N"); raw != "" {
		if topN, err := strconv.Atoi(raw); err == nil && topN > 0 {
			cfg.TopN = topN
		}
	}
	return cfg
}

// WithConnection sets the connection configuration and returns the config
// for method chaining.
func (c *Config) WithConnection(conn *localai.Config) *Config {
	c.Connection = conn
	return c
}

// WithModel sets the reranking model and returns the config for method chaining.
func (c *Config) WithModel(model string) *Config {
	c.Model = model
	return c
}

// WithTopN sets the number of returned documents and returns the config for
// method chaining.
func (c *Config) WithTopN(topN int) *Config {
	c.TopN = topN
	return c
}

// Validate checks the configuration for invalid values. Zero values are
// allowed; NewClient replaces them with defaults.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return ErrInvalidTopN
	}
	return nil
}
