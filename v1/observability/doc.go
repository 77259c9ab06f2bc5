// Package observability defines the observer seam shared by the client
// adapter packages.
//
// # Overview
//
// Every adapter in this library (embeddings, chat, rerank) reports each
// completed operation to an optional Observer. The report is a single
// OperationContext value describing what ran, against which resource, how
// long it took, how big it was, and whether it failed.
//
// Adapters attach an observer with their WithObserver builder method:
//
//	client = client.WithObserver(myObserver)
//
// When no observer is attached, reporting is skipped entirely, so the
// mechanism costs nothing unless used.
//
// # Provided Observers
//
//   - NopObserver: discards everything. Useful as an explicit default.
//   - LoggingObserver: writes one structured log line per operation.
//   - MetricsObserver: records Prometheus counters and histograms.
//   - MultiObserver: fans a report out to several observers.
//
// Applications with custom needs implement the one-method Observer
// interface themselves.
//
// # Design Notes
//
//   - ObserveOperation must not block: it runs on the request path. The
//     provided implementations only touch in-memory state.
//
//   - The Error field carries the operation's error verbatim. Observers
//     must treat it as read-only and must not rely on its concrete type.
package observability
