package shared

import (
	"context"
	"time"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/domain/ledger"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Blackouts() BlackoutRepository
	Transactions() TransactionRepository
	Locks() LockRepository
}

// LockRepository serializes check-then-write sequences. Locks are released
// when the surrounding transaction ends.
type LockRepository interface {
	LockVenue(ctx context.Context, venueID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindActiveOverlapping returns non-cancelled, non-deleted bookings of the
	// venue whose range may touch slot. Callers apply the exact predicates.
	FindActiveOverlapping(ctx context.Context, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error)
	// ListByVenue orders by (start_time, id).
	ListByVenue(ctx context.Context, venueID uuid.UUID, includeDeleted bool, page Page) ([]*booking.Booking, error)
}

type BlackoutRepository interface {
	Create(ctx context.Context, b *blackout.BlackoutDay) error
	Update(ctx context.Context, b *blackout.BlackoutDay) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*blackout.BlackoutDay, error)
	// FindActiveFixedOverlapping: startDate <= window.End AND endDate >= window.Start
	FindActiveFixedOverlapping(ctx context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error)
	// FindActiveRecurring returns recurring rules whose template starts no later
	// than window.End; later ones cannot produce an occurrence inside it.
	FindActiveRecurring(ctx context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*blackout.BlackoutDay, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, t *ledger.Transaction) error
	Update(ctx context.Context, t *ledger.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, bookingID uuid.UUID, key string) (*ledger.Transaction, error)
	// ListByBooking returns the whole ledger of a booking.
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error)
	// ListPageByBooking orders by (occurred_at, id).
	ListPageByBooking(ctx context.Context, bookingID uuid.UUID, page Page) ([]*ledger.Transaction, error)
}

// PageKey is the sort key of the last row of the previous page.
type PageKey struct {
	At time.Time
	ID uuid.UUID
}

// Page selects rows strictly after After in list order. Limit <= 0 means
// no limit.
type Page struct {
	After *PageKey
	Limit int
}

// Follows reports whether a row keyed (at, id) sorts after p.After.
func (p Page) Follows(at time.Time, id uuid.UUID) bool {
	if p.After == nil {
		return true
	}
	at = at.Truncate(time.Microsecond)
	after := p.After.At.Truncate(time.Microsecond)
	if !at.Equal(after) {
		return at.After(after)
	}
	return id.String() > p.After.ID.String()
}
