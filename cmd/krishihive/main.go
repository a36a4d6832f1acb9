package main

import (
	"context"
	"log/slog"
	"os"

	"krishihive/config"
	"krishihive/internal/delivery"
	"krishihive/internal/delivery/http"
	"krishihive/internal/delivery/http/middleware"
	"krishihive/internal/delivery/http/router/handler"
	"krishihive/internal/infra/auth/firebase"
	"krishihive/internal/infra/cache"
	logs "krishihive/internal/infra/log"
	"krishihive/internal/infra/persistence/firestore"
	"krishihive/internal/infra/pubsub"
	"krishihive/internal/infra/storage"
	"krishihive/internal/usecase/impl"

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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewCartRepository,
			firestore.NewProfileRepository,
			firestore.NewProductRepository,
			firestore.NewOrderRepository,
			firestore.NewLedgerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewTokenVerifier,
			storage.New,
			cache.New,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewLedgerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewCatalogHandler,
			handler.NewSellerHandler,
			handler.NewAdminHandler,
			handler.NewLedgerHandler,
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
