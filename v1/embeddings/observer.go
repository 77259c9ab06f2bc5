package embeddings

import (
	"time"

	"github.com/go-skynet/localai-go/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track embedding operations for metrics and logging.
//
// Notes:
//   - resource: the model the request was made against
//   - size: the number of input texts
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "embeddings",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
