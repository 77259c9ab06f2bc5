package embeddings

import (
	"os"
	"strconv"

	"github.com/go-skynet/localai-go/v1/localai"
)

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	// DefaultModel is the embedding model requested when none is configured.
	DefaultModel = "text-embedding-ada-002"

	// DefaultChunkSize is the maximum number of texts sent per request.
	DefaultChunkSize = 1000

	// DefaultMaxParallel is the number of chunk requests in flight at once.
	// The default keeps requests strictly sequential.
	DefaultMaxParallel = 1
)

// Config holds the configuration for the embeddings client.
type Config struct {
	// Connection configures the underlying LocalAI connection. When nil,
	// the connection is built from the standard OPENAI_* environment
	// variables via localai.NewConfigFromEnv.
	Connection *localai.Config `yaml:"connection"`

	// Model is the embedding model requested from the server.
	//
	// Default: "text-embedding-ada-002"
	Model string `yaml:"model" env:"LOCALAI_EMBEDDINGS_MODEL"`

	// ChunkSize is the maximum number of texts sent in a single request.
	// Larger inputs are split into multiple requests of at most this size.
	//
	// Default: 1000
	ChunkSize int `yaml:"chunk_size" env:"LOCALAI_EMBEDDINGS_CHUNK_SIZE"`

	// MaxParallel bounds the number of chunk requests in flight at once.
	// A value of 1 keeps requests strictly sequential.
	//
	// Default: 1
	MaxParallel int `yaml:"max_parallel" env:"LOCALAI_EMBEDDINGS_MAX_PARALLEL"`

	// Dimensions requests a specific vector dimensionality from the server.
	// It is forwarded verbatim when positive and omitted otherwise; not all
	// models support it.
	Dimensions int `yaml:"dimensions" env:"LOCALAI_EMBEDDINGS_DIMENSIONS"`
}

// DefaultConfig returns a Config with all defaults applied and the
// connection left to environment-based construction.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		ChunkSize:   DefaultChunkSize,
		MaxParallel: DefaultMaxParallel,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := os.Getenv("LOCALAI_EMBEDDINGS_MODEL"); model != "" {
		cfg.Model = model
	}
	if raw := os.Getenv("LOCALAI_EMBEDDINGS_CHUNK_SIZE"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			cfg.ChunkSize = size
		}
	}
	if raw := os.Getenv("LOCALAI_EMBEDDINGS_MAX_PARALLEL"); raw != "" {
		if parallel, err := strconv.Atoi(raw); err == nil && parallel > 0 {
			cfg.MaxParallel = parallel
		}
	}
	if raw := os.Getenv("LOCALAI_EMBEDDINGS_DIMENSIONS"); raw != "" {
		if dims, err := strconv.Atoi(raw); err == nil && dims > 0 {
			cfg.Dimensions = dims
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

// WithModel sets the embedding model and returns the config for method chaining.
func (c *Config) WithModel(model string) *Config {
	c.Model = model
	return c
}

// WithChunkSize sets the chunk size and returns the config for method chaining.
func (c *Config) WithChunkSize(size int) *Config {
	c.ChunkSize = size
	return c
}

// WithMaxParallel sets the parallelism bound and returns the config for
// method chaining.
func (c *Config) WithMaxParallel(parallel int) *Config {
	c.MaxParallel = parallel
	return c
}

// WithDimensions sets the requested vector dimensionality and returns the
// config for method chaining.
func (c *Config) WithDimensions(dimensions int) *Config {
	c.Dimensions = dimensions
	return c
}

// Validate checks the configuration for invalid values. Zero values are
// allowed; NewClient replaces them with defaults.
func (c *Config) Validate() error {
	if c.ChunkSize < 0 {
		return ErrInvalidChunkSize
	}
	if c.MaxParallel < 0 {
		return ErrInvalidMaxParallel
	}
	return nil
}
