package localai

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the LocalAI connection layer into Fx.
//
// It provides:
//   - *Config           (NewConfigFromEnv)
//   - *Client           (NewClient)
//   - Lifecycle hook    (RegisterClientLifecycle)
var FXModule = fx.Module(
	"localai",

	fx.Provide(
		NewConfigFromEnv, // -> *Config
		NewClient,        // -> *Client
	),

	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle ensures idle HTTP connections are released on
// application shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
