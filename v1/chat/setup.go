package chat

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"

	"github.com/go-skynet/localai-go/v1/localai"
	"github.com/go-skynet/localai-go/v1/observability"
)

// typ is the component type name reported by GetType.
const typ = "LocalAI"

// Client generates chat completions against a LocalAI server.
//
// It implements the eino tool-calling chat model interface and hides the
// underlying OpenAI-compatible wire protocol, role mapping, and streaming
// decode from the application layer.
type Client struct {
	// conn is the shared LocalAI connection used for all requests.
	conn *localai.Client

	// cfg stores the configuration for this client with defaults applied.
	cfg *Config

	// observer provides optional observability hooks for tracking operations.
	observer observability.Observer

	// tools and openaiTools hold the bound tool set in eino and wire form.
	// Both are set together by WithTools and BindTools.
	tools       []*schema.ToolInfo
	openaiTools []openai.Tool

	// toolChoice is the bound tool choice; nil leaves the decision to the
	// server default.
	toolChoice *schema.ToolChoice

	// ownsConn records whether Close should tear down the connection.
	ownsConn bool
}

// NewClient creates a chat client from the provided configuration. A nil
// config is replaced by NewConfigFromEnv. Zero-valued fields are replaced
// with package defaults before validation.
//
// The underlying connection is constructed from cfg.Connection, or from the
// standard OPENAI_* environment variables when cfg.Connection is nil.
//
// Example:
//
//	client, err := chat.NewClient(
//		chat.DefaultConfig().
//			WithConnection(localai.FromBaseURL("http://localhost:8080")).
//			WithModel("llama-3.2-1b-instruct"),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
func NewClient(cfg *Config) (*Client, error) {
	cfg = withDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conn, err := localai.NewClient(cfg.Connection)
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create connection: %w", err)
	}

	return &Client{conn: conn, cfg: cfg, ownsConn: true}, nil
}

// NewClientFromConnection creates a chat client on top of an existing
// LocalAI connection. The connection's lifecycle stays with its owner; Close
// on the returned client is a no-op.
//
// This is the constructor used by the Fx module, where a single connection
// is shared between the embeddings, chat, and rerank clients.
func NewClientFromConnection(conn *localai.Client, cfg *Config) (*Client, error) {
	if conn == nil {
		return nil, ErrMissingConnection
	}

	cfg = withDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{conn: conn, cfg: cfg}, nil
}

// withDefaults clones the configuration and fills zero values with package
// defaults, leaving the caller's struct untouched.
func withDefaults(cfg *Config) *Config {
	if cfg == nil {
		return NewConfigFromEnv()
	}

	clone := *cfg
	if clone.Model == "" {
		clone.Model = DefaultModel
	}
	if clone.Temperature == 0 {
		clone.Temperature = DefaultTemperature
	}
	return &clone
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer is notified about every chat operation.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// GetType returns the component type name exposed to eino graph tooling.
func (c *Client) GetType() string {
	return typ
}

// Model returns the configured default chat model.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Close releases the underlying connection when this client owns it.
// Clients built on a shared connection leave the connection open.
func (c *Client) Close() error {
	if c.ownsConn && c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
