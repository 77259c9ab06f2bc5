// Package localai provides the shared connection layer for talking to a
// LocalAI server (or any other OpenAI-compatible inference endpoint).
//
// # Overview
//
// LocalAI exposes the OpenAI REST API surface on a locally hosted server.
// This package owns everything the higher-level adapters (embeddings, chat,
// rerank) have in common: endpoint configuration, API-key handling, proxy
// support, base-URL normalization, and construction of the underlying
// OpenAI-compatible SDK client.
//
// A client is constructed using:
//
//	client, err := localai.NewClient(cfg)
//
// Once created, it gives access to:
//
//	client.API()     // the wrapped OpenAI-compatible SDK client
//	client.HTTP()    // the shared *http.Client (timeout + proxy applied)
//	client.BaseURL() // the normalized base URL, always ending in /v1
//
// The adapter packages consume these rather than building their own HTTP
// plumbing, so a single Config describes the whole connection.
//
// # Base URL Normalization
//
// The OpenAI SDK expects the base URL to include the version prefix
// (for example "http://localhost:8080/v1"). Users routinely configure the
// bare host instead. NewClient accepts both forms:
//
//	"http://localhost:8080"      → "http://localhost:8080/v1"
//	"http://localhost:8080/"     → "http://localhost:8080/v1"
//	"http://localhost:8080/v1"   → "http://localhost:8080/v1"
//	"http://localhost:8080/v1/"  → "http://localhost:8080/v1"
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := localai.NewConfigFromEnv()
//
// Required variables:
//
//   - OPENAI_API_BASE
//     Base URL of the LocalAI server, with or without the /v1 suffix.
//
//   - OPENAI_API_KEY
//     API key forwarded as a bearer token. LocalAI deployments without
//     authentication still require a placeholder value here.
//
// Optional variables:
//
//   - OPENAI_PROXY
//     HTTP/HTTPS proxy URL for all outgoing requests.
//
//   - OPENAI_ORGANIZATION
//     Organization header forwarded to the server.
//
//   - OPENAI_API_VERSION
//     API version header for deployments that require one.
//
//   - LOCALAI_HTTP_TIMEOUT_SECONDS
//     Request timeout (default: 60 seconds).
//
// Configuration correctness can be verified via:
//
//	if err := cfg.Validate(); err != nil { ... }
//
// Validation failures are sentinel errors (ErrMissingBaseURL,
// ErrMissingAPIKey, ErrInvalidProxy) so callers can branch on them.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	localai.FXModule
//
// which supplies:
//
//   - *localai.Config (from environment)
//   - *localai.Client
//
// and registers a lifecycle hook that releases idle HTTP connections on
// shutdown.
//
// # Design Notes
//
//   - The package never retries or rewrites requests. Transport-level
//     behavior is exactly that of the wrapped SDK; errors propagate
//     unchanged apart from contextual wrapping.
//
//   - The proxy URL is applied on a dedicated http.Transport so that the
//     process-wide default transport is never mutated.
//
//   - Config values are read once at construction time. Changing a Config
//     after NewClient has no effect on the existing client.
package localai
