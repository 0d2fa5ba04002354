package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBlackoutHandler,
		api.NewLedgerHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, bo *api.BlackoutHandler, l *api.LedgerHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Blackout: bo, Ledger: l}
		},
	),
	fx.Invoke(handler.NewRouter),
)
