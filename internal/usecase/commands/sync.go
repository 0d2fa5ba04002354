package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
)

// poNotifier runs purchase-order calls after the booking transaction has
// committed. Failures are logged and never returned.
type poNotifier struct {
	sync    PurchaseOrderSync
	timeout time.Duration
	logger  *slog.Logger
}

func (n poNotifier) syncCatering(ctx context.Context, b *booking.Booking) {
	if n.sync == nil {
		return
	}
	ctx, cancel := n.bounded(ctx)
	defer cancel()

	if err := n.sync.SyncCateringLineItems(ctx, b.ID(), b.GuestCount(), b.FoodPackage()); err != nil {
		n.logger.WarnContext(ctx, "purchase order sync failed",
			"booking_id", b.ID().String(),
			"guest_count", b.GuestCount(),
			"error", err.Error())
	}
}

func (n poNotifier) vendorPayment(ctx context.Context, t *ledger.Transaction) {
	poID := t.PurchaseOrderID()
	if n.sync == nil || poID == nil {
		return
	}
	ctx, cancel := n.bounded(ctx)
	defer cancel()

	if err := n.sync.ApplyVendorPayment(ctx, *poID, t); err != nil {
		n.logger.WarnContext(ctx, "vendor payment forwarding failed",
			"booking_id", t.BookingID().String(),
			"transaction_id", t.ID().String(),
			"purchase_order_id", poID.String(),
			"error", err.Error())
	}
}

// bounded detaches from the request so a client disconnect right after
// commit does not drop the sync, and caps it at the configured timeout.
func (n poNotifier) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := n.timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
