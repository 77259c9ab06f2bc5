package chat

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the chat client into Fx.
//
// It provides:
//   - *Config                (NewConfigFromEnv)
//   - *Client                (NewClientFromConnection)
//   - Lifecycle hook         (RegisterChatLifecycle)
//
// The module expects a *localai.Client in the container; include
// localai.FXModule alongside it.
var FXModule = fx.Module(
	"chat",

	fx.Provide(
		NewConfigFromEnv,        // -> *Config
		NewClientFromConnection, // -> *Client
	),

	fx.Invoke(RegisterChatLifecycle),
)

// RegisterChatLifecycle ensures that the Client is properly cleaned up on
// application shutdown.
func RegisterChatLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
