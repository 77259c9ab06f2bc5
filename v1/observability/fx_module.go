package observability

import (
	"go.uber.org/fx"

	"github.com/go-skynet/localai-go/v1/logger"
	"github.com/go-skynet/localai-go/v1/metrics"
)

// FXModule wires the default observer into Fx.
//
// It provides:
//   - Observer               (NewObserver)
//
// The module expects a *logger.LoggerClient and a *metrics.Metrics in the
// container; include logger.FXModule and metrics.FXModule alongside it.
// Attach the observer to the clients with an invoke:
//
//	fx.Invoke(func(c *embeddings.Client, o observability.Observer) {
//	    c.WithObserver(o)
//	})
var FXModule = fx.Module(
	"observability",

	fx.Provide(
		NewObserver, // -> Observer
	),
)

// NewObserver builds the default observer: every operation is logged
// through the logger and recorded on the metrics registry.
func NewObserver(log *logger.LoggerClient, m *metrics.Metrics) Observer {
	return NewMultiObserver(
		NewLoggingObserver(log),
		NewMetricsObserver(m),
	)
}
