package rerank

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the rerank client into Fx.
//
// It provides:
//   - *Config                (NewConfigFromEnv)
//   - *Client                (NewClientFromConnection)
//   - Lifecycle hook         (RegisterRerankLifecycle)
//
// The module expects a *localai.Client in the container; include
// localai.FXModule alongside it.
var FXModule = fx.Module(
	"rerank",

	fx.Provide(
		NewConfigFromEnv,        // -> *Config
		NewClientFromConnection, // -> *Client
	),

	fx.Invoke(RegisterRerankLifecycle),
)

// RegisterRerankLifecycle ensures that the Client is properly cleaned up on
// application shutdown.
func RegisterRerankLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
