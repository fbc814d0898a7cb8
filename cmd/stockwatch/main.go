package main

import (
	"context"
	"log/slog"
	"os"

	"stockwatch/config"
	"stockwatch/internal/delivery"
	"stockwatch/internal/delivery/http"
	"stockwatch/internal/delivery/http/middleware"
	"stockwatch/internal/delivery/http/router/handler"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/infra/auth"
	logs "stockwatch/internal/infra/log"
	"stockwatch/internal/infra/pubsub"
	"stockwatch/internal/infra/push"
	"stockwatch/internal/infra/rtdb"
	"stockwatch/internal/infra/stockapi"
	"stockwatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		rtdb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rtdb.NewStatusRepository,
			rtdb.NewSubscriptionRepository,
			rtdb.NewTokenRepository,
			rtdb.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionService,
			push.NewFCMSender,
			pubsub.NewEventPublisher,
			newStockSource,
		),
	)
}

// newStockSource wraps the upstream API client in the snapshot cache so a
// burst of dashboard reloads hits the game API at most once per TTL.
func newStockSource(cfg *config.Config) service.StockSource {
	return stockapi.NewCachedSource(stockapi.NewClient(cfg), cfg.StockAPI.CacheTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStockService,
			impl.NewSubscriptionService,
			impl.NewTokenService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStockHandler,
			handler.NewSubscriptionHandler,
			handler.NewTokenHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
