package stripeclient

import (
	"go.uber.org/fx"
)

// Module provides the process-wide *Client and closes it when the application stops.
// The host supplies config.StripeConfig and *observability.Logger.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

func registerLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.StopHook(c.Close))
}
