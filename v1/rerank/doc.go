// Package rerank provides document reranking through a LocalAI inference
// server.
//
// # Overview
//
// Reranking scores a list of candidate documents against a query with a
// cross-encoder model and returns the most relevant ones first. The package
// exposes a single public entrypoint, Client, which talks to the server's
// /v1/rerank endpoint and hides the wire protocol from the application
// layer.
//
// A client is constructed using:
//
//	client, err := rerank.NewClient(cfg)
//
// The low-level operation returns raw index/score pairs:
//
//	results, err := client.Rerank(ctx, "what is a cow?", contents, 3)
//
// The high-level operation works on eino documents:
//
//	ranked, err := client.CompressDocuments(ctx, docs, "what is a cow?")
//
// CompressDocuments returns copies of a subset of the input documents,
// ordered by descending relevance and capped at TopN. Each returned document
// carries its relevance score both in the eino score slot and under the
// "relevance_score" metadata key. The input documents are never mutated.
//
// # Retriever Decoration
//
// NewRetriever wraps any eino retriever so that its candidates are reranked
// before they reach the caller:
//
//	reranking := rerank.NewRetriever(vectorRetriever, client)
//	docs, err := reranking.Retrieve(ctx, query)
//
// The decorator honours retriever.WithTopK for the number of documents kept
// after reranking and retriever.WithScoreThreshold for a minimum relevance
// score.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := rerank.NewConfigFromEnv()
//
// Optional variables:
//
//   - LOCALAI_RERANK_MODEL
//     Reranking model requested from the server
//     (default: "jina-reranker-v1-base-en").
//
//   - LOCALAI_RERANK_TOP_N
//     Number of documents returned by CompressDocuments (default: 3).
//
// The connection itself (base URL, API key, proxy) is configured through the
// localai package, either by embedding a *localai.Config in Config.Connection
// or by leaving it nil to read the standard OPENAI_* variables.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	rerank.FXModule
//
// which supplies:
//
//   - *rerank.Config
//   - *rerank.Client
//
// and expects a *localai.Client in the container (add localai.FXModule).
//
// # Design Notes
//
//   - The rerank endpoint has no surface in the OpenAI SDK, so requests are
//     sent directly over the shared connection's HTTP client with the same
//     bearer authentication as SDK calls.
//
//   - A response without a "results" field is reported as
//     ErrMalformedResponse, with the response body included for diagnosis.
//
//   - Results are sorted by descending relevance client-side before the
//     TopN cut, so the contract holds even when a server returns results
//     in request order.
//
//   - An empty document list returns an empty result without issuing a
//     network request.
//
//   - Errors are wrapped with %w and never retried.
//
// # Summary
//
// The rerank package provides:
//
//   - Raw reranking of text candidates via Rerank.
//   - Document compression for retrieval pipelines via CompressDocuments.
//   - Drop-in reranking for any eino retriever via NewRetriever.
package rerank
