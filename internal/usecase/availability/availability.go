// Package availability decides whether a venue can take a booking for a
// given range. Both checks run against repositories of the caller's
// transaction so the answer is consistent with what the caller writes next.
package availability

import (
	"context"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlackoutConflict struct {
	HasConflict bool
	Conflicting []*blackout.BlackoutDay
}

// Err is nil when nothing conflicts.
func (c BlackoutConflict) Err() error {
	if !c.HasConflict {
		return nil
	}
	items := make([]errs.ConflictItem, len(c.Conflicting))
	for i, b := range c.Conflicting {
		items[i] = b.ConflictItem()
	}
	return errs.NewConflict(booking.ReasonBlackoutConflict, items...)
}

// CheckConflict unions active one-off blackouts overlapping window with
// active recurring rules that have an occurrence inside it.
func CheckConflict(ctx context.Context, tx shared.Tx, venueID uuid.UUID, window interval.Closed) (BlackoutConflict, error) {
	fixed, err := tx.Blackouts().FindActiveFixedOverlapping(ctx, venueID, window)
	if err != nil {
		return BlackoutConflict{}, errs.Wrapf(err, "find blackouts for venue %s", venueID)
	}
	recurring, err := tx.Blackouts().FindActiveRecurring(ctx, venueID, window)
	if err != nil {
		return BlackoutConflict{}, errs.Wrapf(err, "find recurring blackouts for venue %s", venueID)
	}

	seen := make(map[uuid.UUID]struct{}, len(fixed)+len(recurring))
	var conflicting []*blackout.BlackoutDay
	add := func(b *blackout.BlackoutDay) {
		if _, dup := seen[b.ID()]; dup {
			return
		}
		seen[b.ID()] = struct{}{}
		conflicting = append(conflicting, b)
	}

	for _, b := range fixed {
		if b.Blocks(window) {
			add(b)
		}
	}
	for _, b := range recurring {
		if b.IsRecurring() && b.Blocks(window) {
			add(b)
		}
	}
	return BlackoutConflict{HasConflict: len(conflicting) > 0, Conflicting: conflicting}, nil
}

// SlotCheck lists the bookings a candidate slot collides with.
type SlotCheck struct {
	Available   bool
	Conflicting []*booking.Booking
}

func (s SlotCheck) Err() error {
	if s.Available {
		return nil
	}
	items := make([]errs.ConflictItem, len(s.Conflicting))
	for i, b := range s.Conflicting {
		items[i] = b.ConflictItem()
	}
	return errs.NewConflict(booking.ReasonSlotUnavailable, items...)
}

// IsAvailable loads candidates coarsely and keeps those matching one of the
// three boundary predicates of TimeSlot.ConflictsWith.
func IsAvailable(ctx context.Context, tx shared.Tx, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) (SlotCheck, error) {
	candidates, err := tx.Bookings().FindActiveOverlapping(ctx, venueID, slot, exclude)
	if err != nil {
		return SlotCheck{}, errs.Wrapf(err, "find bookings for venue %s", venueID)
	}

	var conflicting []*booking.Booking
	for _, b := range candidates {
		if exclude != nil && b.ID() == *exclude {
			continue
		}
		if !b.BlocksSlot() || b.VenueID() != venueID {
			continue
		}
		if slot.ConflictsWith(b.Slot()) {
			conflicting = append(conflicting, b)
		}
	}
	return SlotCheck{Available: len(conflicting) == 0, Conflicting: conflicting}, nil
}

// EnsureBookable runs the blackout check, then the slot check, and returns
// the first conflict as a ConflictError.
func EnsureBookable(ctx context.Context, tx shared.Tx, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) error {
	bc, err := CheckConflict(ctx, tx, venueID, slot.Closed())
	if err != nil {
		return err
	}
	if err := bc.Err(); err != nil {
		return err
	}
	sc, err := IsAvailable(ctx, tx, venueID, slot, exclude)
	if err != nil {
		return err
	}
	return sc.Err()
}
