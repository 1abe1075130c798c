package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"homely/config"
	"homely/internal/delivery"
	"homely/internal/delivery/worker"
	"homely/internal/delivery/worker/handler"
	"homely/internal/domain/service"
	logs "homely/internal/infra/log"
	"homely/internal/infra/notification"
	"homely/internal/infra/persistence/mongo"
	"homely/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewBookingRepository,
			mongo.NewSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				notification.NewWebPushService,
				fx.ResultTags(`group:"notifiers"`),
			),
			fx.Annotate(
				newFirebaseNotifier,
				fx.ResultTags(`group:"notifiers"`),
			),
		),
	)
}

// newFirebaseNotifier creates the FCM notifier when Firebase is configured.
// A nil notifier is skipped by the dispatcher.
func newFirebaseNotifier(ctx context.Context, cfg *config.Config) (service.Notifier, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			// The worker never publishes events itself; a publisher here
			// would bounce the same event back through Pub/Sub.
			fx.Annotate(
				impl.NewNotificationDispatcher,
				fx.ParamTags(`group:"notifiers"`, `optional:"true"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
