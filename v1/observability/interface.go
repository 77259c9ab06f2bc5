package observability

import "time"

// OperationContext describes a single completed client operation.
type OperationContext struct {
	// Component is the reporting adapter, e.g. "embeddings", "chat", "rerank".
	Component string

	// Operation is the adapter-level operation name, e.g. "embed_documents".
	Operation string

	// Resource identifies the primary target of the operation.
	// For inference adapters this is the model name.
	Resource string

	// SubResource carries additional context, e.g. the endpoint path.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the operation's error, or nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. the number of inputs
	// in a batch or the number of documents reranked.
	Size int64

	// Metadata carries optional extra key-value context.
	Metadata map[string]interface{}
}

// Observer receives operation reports from the adapter packages.
//
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
