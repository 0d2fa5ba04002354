package commands

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/availability"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const constraintItemKind = "constraint"

// translate turns repository failures into the error taxonomy, attaching
// the operation and entity to the message.
func translate(err error, notFound error, op string, id any) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return errs.Wrapf(notFound, "%s %v", op, id)
	case infra.IsKind(err, infra.KindExclusionViolated):
		name := infra.ConstraintName(err)
		if name == "" {
			name = "bookings_no_overlap"
		}
		return errs.NewConflict(booking.ReasonSlotUnavailable, errs.ConflictItem{Kind: constraintItemKind, ID: name})
	default:
		return errs.Wrapf(err, "%s %v", op, id)
	}
}

// slotConflict replaces a conflict raised by the database constraint with
// the bookings a fresh read finds on the slot. The constraint item is kept
// when the read finds nothing, e.g. because the other booking was cancelled
// in the meantime.
func slotConflict(ctx context.Context, uow shared.UnitOfWork, err error, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) error {
	var ce *errs.ConflictError
	if !errs.As(err, &ce) || !fromConstraint(ce) {
		return err
	}
	var check availability.SlotCheck
	rerr := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ierr error
		check, ierr = availability.IsAvailable(ctx, tx, venueID, slot, exclude)
		return ierr
	})
	if rerr != nil || check.Available {
		return err
	}
	return check.Err()
}

func fromConstraint(ce *errs.ConflictError) bool {
	if len(ce.Items) == 0 {
		return true
	}
	for _, it := range ce.Items {
		if it.Kind != constraintItemKind {
			return false
		}
	}
	return true
}
