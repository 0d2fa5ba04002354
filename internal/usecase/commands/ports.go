package commands

import (
	"context"

	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// CatalogReader reads venue-defined packages owned by the catalog service.
type CatalogReader interface {
	GetVenuePackageTemplate(ctx context.Context, venueID uuid.UUID, packageID string) (*pricing.Template, error)
}

// PurchaseOrderSync forwards booking changes to the purchase-order service.
// Calls are best effort; callers log failures and carry on.
type PurchaseOrderSync interface {
	SyncCateringLineItems(ctx context.Context, bookingID uuid.UUID, guestCount int, pkg pricing.FoodPackage) error
	ApplyVendorPayment(ctx context.Context, purchaseOrderID uuid.UUID, tx *ledger.Transaction) error
}
