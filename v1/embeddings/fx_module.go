package embeddings

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the embeddings client into Fx.
//
// It provides:
//   - *Config                (NewConfigFromEnv)
//   - *Client                (NewClientFromConnection)
//   - Lifecycle hook         (RegisterEmbeddingsLifecycle)
//
// The module expects a *localai.Client in the container; include
// localai.FXModule alongside it.
var FXModule = fx.Module(
	"embeddings",

	fx.Provide(
		NewConfigFromEnv,        // -> *Config
		NewClientFromConnection, // -> *Client
	),

	fx.Invoke(RegisterEmbeddingsLifecycle),
)

// RegisterEmbeddingsLifecycle ensures that the Client is properly cleaned up
// on application shutdown.
func RegisterEmbeddingsLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
