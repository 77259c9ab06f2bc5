package chat

import (
	"os"
	"strconv"

	"github.com/go-skynet/localai-go/v1/localai"
)

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	// DefaultModel is the chat model requested when none is configured.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTemperature is the sampling temperature applied when none is
	// configured.
	DefaultTemperature float32 = 0.7
)

// Config holds the configuration for the chat client.
type Config struct {
	// Connection configures the underlying LocalAI connection. When nil,
	// the connection is built from the standard OPENAI_* environment
	// variables via localai.NewConfigFromEnv.
	Connection *localai.Config `yaml:"connection"`

	// Model is the chat model requested from the server.
	//
	// Default: "gpt-3.5-turbo"
	Model string `yaml:"model" env:"LOCALAI_CHAT_MODEL"`

	// Temperature is the sampling temperature, between 0 and 2. A zero
	// value is replaced by the default; a literal 0 can still be requested
	// per call with model.WithTemperature.
	//
	// Default: 0.7
	Temperature float32 `yaml:"temperature" env:"LOCALAI_CHAT_TEMPERATURE"`

	// MaxTokens limits the length of the generated completion. It is
	// forwarded verbatim when positive and left to the server otherwise.
	MaxTokens int `yaml:"max_tokens" env:"LOCALAI_CHAT_MAX_TOKENS"`

	// TopP is the nucleus sampling parameter. It is forwarded verbatim
	// when positive and left to the server otherwise.
	TopP float32 `yaml:"top_p" env:"LOCALAI_CHAT_TOP_P"`
}

// DefaultConfig returns a Config with all defaults applied and the
// connection left to environment-based construction.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// NewConfigFromEnv builds a Config from environment variables.
func NewConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if model := os.Getenv("LOCALAI_CHAT_MODEL"); model != "" {
		cfg.Model = model
	}
	if raw := os.Getenv("LOCALAI_CHAT_TEMPERATURE"); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 32); err == nil && temp > 0 {
			cfg.Temperature = float32(temp)
		}
	}
	if raw := os.Getenv("LOCALAI_CHAT_MAX_TOKENS"); raw != "" {
		if tokens, err := strconv.Atoi(raw); err == nil && tokens > 0 {
			cfg.MaxTokens = tokens
		}
	}
	if raw := os.Getenv("LOCALAI_CHAT_TOP_P"); raw != "" {
		if topP, err := strconv.ParseFloat(raw, 32); err == nil && topP > 0 {
			cfg.TopP = float32(topP)
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

// WithModel sets the chat model and returns the config for method chaining.
func (c *Config) WithModel(model string) *Config {
	c.Model = model
	return c
}

// WithTemperature sets the sampling temperature and returns the config for
// method chaining.
func (c *Config) WithTemperature(temperature float32) *Config {
	c.Temperature = temperature
	return c
}

// WithMaxTokens sets the completion length limit and returns the config for
// method chaining.
func (c *Config) WithMaxTokens(maxTokens int) *Config {
	c.MaxTokens = maxTokens
	return c
}

// WithTopP sets the nucleus sampling parameter and returns the config for
// method chaining.
func (c *Config) WithTopP(topP float32) *Config {
	c.TopP = topP
	return c
}

// Validate checks the configuration for invalid values. Zero values are
// allowed; NewClient replaces them with defaults.
func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return ErrInvalidTemperature
	}
	if c.MaxTokens < 0 {
		return ErrInvalidMaxTokens
	}
	return nil
}
