package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/availability"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID, includeDeleted bool) (*BookingView, error)
	// ListBookings pages through a venue's bookings by (start_time, id).
	ListBookings(ctx context.Context, venueID uuid.UUID, includeDeleted bool, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	IsAvailable(ctx context.Context, venueID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*AvailabilityView, error)
	CheckBlackoutConflict(ctx context.Context, venueID uuid.UUID, start, end time.Time) (*BlackoutConflictView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID, includeDeleted bool) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(booking.ErrBookingNotFound, "get booking %s", id)
			}
			return err
		}
		if b.IsDeleted() && !includeDeleted {
			return errs.Wrapf(booking.ErrBookingNotFound, "get booking %s", id)
		}
		view = NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, venueID uuid.UUID, includeDeleted bool, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageOf(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	var rows []*booking.Booking
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		rows, lerr = tx.Bookings().ListByVenue(ctx, venueID, includeDeleted, page)
		if lerr != nil {
			return errs.Wrapf(lerr, "list bookings of venue %s", venueID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, func(b *booking.Booking) (time.Time, uuid.UUID) {
		return b.Slot().Start(), b.ID()
	})
	views := make([]*BookingView, len(rows))
	for i, b := range rows {
		views[i] = NewBookingView(b)
	}
	return views, next, nil
}

func (q *bookingQueriesImpl) IsAvailable(ctx context.Context, venueID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*AvailabilityView, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	view := &AvailabilityView{Available: true, Conflicts: []errs.ConflictItem{}}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		check, cerr := availability.IsAvailable(ctx, tx, venueID, slot, exclude)
		if cerr != nil {
			return cerr
		}
		view.Available = check.Available
		for _, b := range check.Conflicting {
			view.Conflicts = append(view.Conflicts, b.ConflictItem())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) CheckBlackoutConflict(ctx context.Context, venueID uuid.UUID, start, end time.Time) (*BlackoutConflictView, error) {
	if start.After(end) {
		return nil, interval.ErrInvalidInterval
	}
	window := interval.Closed{Start: start.UTC(), End: end.UTC()}
	view := &BlackoutConflictView{Conflicting: []*BlackoutView{}}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, cerr := availability.CheckConflict(ctx, tx, venueID, window)
		if cerr != nil {
			return cerr
		}
		view.HasConflict = res.HasConflict
		for _, b := range res.Conflicting {
			view.Conflicting = append(view.Conflicting, NewBlackoutView(b))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
