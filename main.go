package main

import (
	"log"

	"subscription-items/internal/auth"
	"subscription-items/internal/config"
	"subscription-items/internal/money/subscriptionitems"
	itemsHandler "subscription-items/internal/money/subscriptionitems/handler"
	"subscription-items/internal/observability"
	"subscription-items/internal/server"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Zap()}
		}),
		fx.Supply(logger, cfg.Stripe, cfg.Auth, cfg.Server),
		subscriptionitems.AsSingleton(),
		fx.Provide(
			auth.New,
			itemsHandler.New,
		),
		server.Module,
	)

	// Run blocks until SIGINT or SIGTERM, then stops the server before the Stripe client.
	app.Run()
}
