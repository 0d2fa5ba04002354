package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/catalog"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalogClient,
		fx.Annotate(
			NewCatalogReader,
			fx.As(new(commands.CatalogReader)),
		),
	),
)

func NewCatalogClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, disconnect, err := catalog.Connect(context.Background(), cfg.Catalog)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := disconnect(ctx); err != nil {
				logger.Warn("カタログDBの切断に失敗しました", "error", err)
			}
			return nil
		},
	})

	return client, nil
}

func NewCatalogReader(client *mongo.Client, cfg config.Config) *catalog.Reader {
	return catalog.NewReader(client, cfg.Catalog)
}
