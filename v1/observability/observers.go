package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-skynet/localai-go/v1/metrics"
)

// Logger is an interface that matches the v1/logger.Logger methods used here.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// NopObserver discards all operation reports.
type NopObserver struct{}

// ObserveOperation implements Observer.
func (NopObserver) ObserveOperation(OperationContext) {}

// LoggingObserver writes one structured log line per operation.
// Successful operations are logged at debug level, failures at error level.
type LoggingObserver struct {
	logger Logger
}

// NewLoggingObserver constructs a LoggingObserver on top of the given logger.
func NewLoggingObserver(logger Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// ObserveOperation implements Observer.
func (o *LoggingObserver) ObserveOperation(op OperationContext) {
	if o == nil || o.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"component":   op.Component,
		"operation":   op.Operation,
		"resource":    op.Resource,
		"duration_ms": op.Duration.Milliseconds(),
		"size":        op.Size,
	}
	if op.SubResource != "" {
		fields["sub_resource"] = op.SubResource
	}
	for k, v := range op.Metadata {
		fields[k] = v
	}

	if op.Error != nil {
		o.logger.Error("operation failed", op.Error, fields)
		return
	}
	o.logger.Debug("operation completed", nil, fields)
}

// MetricsObserver records operations as Prometheus metrics: a counter of
// operations by outcome, a duration histogram, and a size histogram. When an
// operation reports prompt_tokens or completion_tokens metadata, the values
// are fed into the token usage counter of the underlying Metrics instance,
// labelled with the operation's resource (the model name).
type MetricsObserver struct {
	metrics    *metrics.Metrics
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	sizes      *prometheus.HistogramVec
}

// NewMetricsObserver registers the observer's collectors on the given
// Metrics instance and returns the observer.
func NewMetricsObserver(m *metrics.Metrics) *MetricsObserver {
	return &MetricsObserver{
		metrics: m,
		operations: m.CreateCounter(
			"client_operations_total",
			"Total number of client operations by component, operation, and status",
			[]string{"component", "operation", "status"},
		),
		durations: m.CreateHistogram(
			"client_operation_duration_seconds",
			"Duration of client operations in seconds",
			[]string{"component", "operation"},
			prometheus.DefBuckets,
		),
		sizes: m.CreateHistogram(
			"client_operation_size",
			"Batch size of client operations (inputs per request)",
			[]string{"component", "operation"},
			[]float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		),
	}
}

// ObserveOperation implements Observer.
func (o *MetricsObserver) ObserveOperation(op OperationContext) {
	if o == nil {
		return
	}

	status := "success"
	if op.Error != nil {
		status = "error"
	}

	o.operations.WithLabelValues(op.Component, op.Operation, status).Inc()
	o.durations.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		o.sizes.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}

	if tokens, ok := metadataInt(op.Metadata, "prompt_tokens"); ok {
		o.metrics.RecordTokenUsage(op.Resource, "prompt", tokens)
	}
	if tokens, ok := metadataInt(op.Metadata, "completion_tokens"); ok {
		o.metrics.RecordTokenUsage(op.Resource, "completion", tokens)
	}
}

// metadataInt reads an integer metadata value, tolerating the int widths
// adapters commonly report.
func metadataInt(metadata map[string]interface{}, key string) (int, bool) {
	if metadata == nil {
		return 0, false
	}
	switch v := metadata[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

// MultiObserver fans each report out to every wrapped observer in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver combines several observers into one. Nil entries are
// dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	kept := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			kept = append(kept, obs)
		}
	}
	return &MultiObserver{observers: kept}
}

// ObserveOperation implements Observer.
func (o *MultiObserver) ObserveOperation(op OperationContext) {
	if o == nil {
		return
	}
	for _, obs := range o.observers {
		obs.ObserveOperation(op)
	}
}
