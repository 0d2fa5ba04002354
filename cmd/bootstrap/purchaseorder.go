package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/purchaseorder"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PurchaseOrderModule = fx.Module("purchaseorder",
	fx.Provide(
		NewPurchaseOrderSync,
	),
)

func NewPurchaseOrderSync(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.PurchaseOrderSync, error) {
	if !cfg.PurchaseOrder.Enabled {
		logger.Info("発注連携は無効です")
		return purchaseorder.Noop{}, nil
	}

	conn, ch, err := purchaseorder.Dial(cfg.PurchaseOrder.AMQPURL, cfg.PurchaseOrder.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = ch.Close()
			return conn.Close()
		},
	})

	return purchaseorder.NewPublisher(ch, cfg.PurchaseOrder.Exchange, clk), nil
}
