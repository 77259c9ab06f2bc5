package localai

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI-compatible SDK client together with the HTTP
// client it runs on. It is the shared connection object the adapter
// packages (embeddings, chat, rerank) are built on.
//
// Client is safe for concurrent use and should be reused for the life of
// the application.
type Client struct {
	api        *openai.Client
	httpClient *http.Client
	baseURL    string
	cfg        *Config
}

// NewClient constructs a Client from Config.
// It validates the config, normalizes the base URL, and builds the wrapped
// OpenAI-compatible SDK client with timeout and proxy settings applied.
//
// Example:
//
//	client, err := localai.NewClient(localai.FromBaseURL("http://localhost:8080").
//	    WithAPIKey("sk-local"))
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = NewConfigFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("localai: invalid config: %w", err)
	}

	baseURL := normalizeBaseURL(cfg.BaseURL)

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("localai: failed to build http client: %w", err)
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	sdkCfg.BaseURL = baseURL
	sdkCfg.OrgID = cfg.Organization
	sdkCfg.HTTPClient = httpClient
	if cfg.APIVersion != "" {
		sdkCfg.APIVersion = cfg.APIVersion
	}

	return &Client{
		api:        openai.NewClientWithConfig(sdkCfg),
		httpClient: httpClient,
		baseURL:    baseURL,
		cfg:        cfg,
	}, nil
}

// API returns the underlying OpenAI-compatible SDK client.
// This is useful for direct access to endpoints the adapters do not cover.
func (c *Client) API() *openai.Client {
	return c.api
}

// HTTP returns the *http.Client the SDK runs on (timeout and proxy applied).
// The rerank adapter uses it for the endpoint the SDK has no surface for.
func (c *Client) HTTP() *http.Client {
	return c.httpClient
}

// BaseURL returns the normalized server base URL, always ending in /v1.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.cfg.APIKey
}

// Close releases idle HTTP connections held by the client.
// In-flight requests are not interrupted.
func (c *Client) Close() error {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}
