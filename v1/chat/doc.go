// Package chat provides a unified, high-level API for chat completions
// through a LocalAI inference server.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides all
// low-level HTTP details, endpoint paths, authentication, and wire format
// conversion. The client implements the eino tool-calling chat model
// interface, so it can be dropped into eino graphs, chains, and agents
// unchanged.
//
// A client is constructed using:
//
//	client, err := chat.NewClient(cfg)
//
// The simplest interaction is a one-shot prompt:
//
//	answer, err := client.Invoke(ctx, "What is a llama?")
//
// Full conversations use eino messages:
//
//	reply, err := client.Generate(ctx, []*schema.Message{
//	    schema.SystemMessage("You answer briefly."),
//	    schema.UserMessage("What is a llama?"),
//	})
//
// and incremental output uses Stream, which returns an eino stream reader
// producing one message chunk per server-sent event:
//
//	reader, err := client.Stream(ctx, messages)
//
// # Tool Calling
//
// Tools are bound ahead of time with WithTools, which returns a copy of the
// client so the original keeps its binding:
//
//	toolModel, err := client.WithTools(tools)
//
// Replies that request a tool invocation carry it in the returned message's
// ToolCalls slice; tool results are fed back as schema.Tool role messages.
// Per-call tools and tool choice can be set with model.WithTools and
// model.WithToolChoice without touching the bound state.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := chat.NewConfigFromEnv()
//
// Optional variables:
//
//   - LOCALAI_CHAT_MODEL
//     Model name requested from the server (default: "gpt-3.5-turbo").
//
//   - LOCALAI_CHAT_TEMPERATURE
//     Sampling temperature between 0 and 2 (default: 0.7).
//
//   - LOCALAI_CHAT_MAX_TOKENS
//     Completion length limit; 0 leaves the limit to the server.
//
//   - LOCALAI_CHAT_TOP_P
//     Nucleus sampling parameter; 0 leaves it to the server.
//
// The connection itself (base URL, API key, proxy) is configured through the
// localai package, either by embedding a *localai.Config in Config.Connection
// or by leaving it nil to read the standard OPENAI_* variables.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	chat.FXModule
//
// which supplies:
//
//   - *chat.Config
//   - *chat.Client
//
// and expects a *localai.Client in the container (add localai.FXModule).
//
// Example:
//
//	app := fx.New(
//	    localai.FXModule,
//	    chat.FXModule,
//	    fx.Invoke(func(c *chat.Client) {
//	        // Use chat
//	    }),
//	)
//
// # Design Notes
//
//   - Errors from the inference server are returned to the caller wrapped
//     with %w. There is no retry, fallback, or error rewriting.
//
//   - Generation parameters (model, temperature, max tokens, top_p, stop
//     sequences) can be overridden per call with the model package's
//     option helpers.
//
//   - Stream requests token usage from the server; when the final event
//     carries it, the last emitted chunk exposes it through ResponseMeta.
//
//   - Replies always carry the server's finish reason and token usage in
//     ResponseMeta, so callers can account for consumption per request.
//
// # Summary
//
// The chat package provides:
//
//   - A clean, stable API for one-shot prompts, conversations, and
//     streaming completions.
//   - Tool calling compatible with eino agents.
//   - A no-leak abstraction over the LocalAI /v1/chat/completions endpoint.
//
// For most applications, only two operations are needed:
//
//	client, _ := chat.NewClient(cfg)
//	client.Invoke(ctx, prompt)
//	client.Generate(ctx, messages)
//
// Everything else (request shapes, role mapping, streaming decode, and tool
// schema conversion) is handled internally.
package chat
