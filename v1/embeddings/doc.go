// Package embeddings provides a unified, high-level API for computing text
// embeddings through a LocalAI inference server.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides all
// low-level HTTP details, endpoint paths, authentication, and batching
// behavior. The client implements the eino embedding component interface, so
// it can be dropped into eino graphs and chains unchanged.
//
// A client is constructed using:
//
//	client, err := embeddings.NewClient(cfg)
//
// Once created, the client can embed a single query via:
//
//	vector, err := client.EmbedQuery(ctx, "hello")
//
// or a batch of documents via:
//
//	vectors, err := client.EmbedDocuments(ctx, []string{"a", "b", "c"})
//
// EmbedDocuments always returns one vector per input text, in input order.
// The eino-facing method EmbedStrings behaves identically.
//
// # Batching
//
// Inputs are sent to the /v1/embeddings endpoint in chunks of at most
// ChunkSize texts per request (default 1000). Chunks are dispatched with a
// bounded level of parallelism controlled by MaxParallel (default 1, meaning
// strictly sequential requests). Regardless of chunking or parallelism, the
// returned vectors always line up with the input texts by position.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := embeddings.NewConfigFromEnv()
//
// Optional variables:
//
//   - LOCALAI_EMBEDDINGS_MODEL
//     Model name requested from the server (default: "text-embedding-ada-002").
//
//   - LOCALAI_EMBEDDINGS_CHUNK_SIZE
//     Maximum number of texts per request (default: 1000).
//
//   - LOCALAI_EMBEDDINGS_MAX_PARALLEL
//     Maximum number of in-flight chunk requests (default: 1).
//
//   - LOCALAI_EMBEDDINGS_DIMENSIONS
//     Requested vector dimensionality, forwarded verbatim when positive.
//
// The connection itself (base URL, API key, proxy) is configured through the
// localai package, either by embedding a *localai.Config in Config.Connection
// or by leaving it nil to read the standard OPENAI_* variables.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	embeddings.FXModule
//
// which supplies:
//
//   - *embeddings.Config
//   - *embeddings.Client
//
// and expects a *localai.Client in the container (add localai.FXModule).
//
// Example:
//
//	app := fx.New(
//	    localai.FXModule,
//	    embeddings.FXModule,
//	    fx.Invoke(func(c *embeddings.Client) {
//	        // Use embeddings
//	    }),
//	)
//
// # Design Notes
//
//   - Errors from the inference server are returned to the caller wrapped
//     with %w. There is no retry, fallback, or error rewriting; a failed
//     chunk fails the whole call.
//
//   - The per-request model can be overridden with embedding.WithModel
//     without touching the client configuration.
//
//   - An empty input slice returns an empty result without issuing a
//     network request.
//
//   - The server must return exactly one vector per input text; any other
//     cardinality surfaces as ErrVectorCountMismatch.
//
// # Summary
//
// The embeddings package provides:
//
//   - A clean, stable API for query and document embeddings.
//   - Order-preserving chunked batch requests with bounded parallelism.
//   - A no-leak abstraction over the LocalAI /v1/embeddings endpoint.
//
// For most applications, only two operations are needed:
//
//	client, _ := embeddings.NewClient(cfg)
//	client.EmbedQuery(ctx, text)
//	client.EmbedDocuments(ctx, texts)
//
// Everything else (request shapes, chunking, authentication, and vector
// type conversion) is handled internally.
package embeddings
