package repository

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/converter"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	InsertBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.Bookings) error
	UpdateBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.Bookings) error
	GetBookingByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Bookings, error)
	ListActiveBookingsOverlapping(ctx context.Context, db pgstore.DBTX, arg pgstore.ListActiveBookingsOverlappingParams) ([]pgstore.Bookings, error)
	ListBookingsByVenue(ctx context.Context, db pgstore.DBTX, arg pgstore.ListBookingsByVenueParams) ([]pgstore.Bookings, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      pgstore.DBTX
}

func NewBookingRepository(queries BookingQueries, db pgstore.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row, err := converter.BookingToInfra(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err, infra.KindDBFailure)
	}
	if err := r.queries.InsertBooking(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	row, err := converter.BookingToInfra(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err, infra.KindDBFailure)
	}
	if err := r.queries.UpdateBooking(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) FindActiveOverlapping(ctx context.Context, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveBookingsOverlapping(ctx, r.db, pgstore.ListActiveBookingsOverlappingParams{
		VenueID:   venueID,
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		ExcludeID: pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	return toBookings(rows)
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID uuid.UUID, includeDeleted bool, page shared.Page) ([]*booking.Booking, error) {
	after, afterID, limit := pageArgs(page)
	rows, err := r.queries.ListBookingsByVenue(ctx, r.db, pgstore.ListBookingsByVenueParams{
		VenueID:        venueID,
		IncludeDeleted: includeDeleted,
		AfterStart:     after,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by venue", err)
	}
	return toBookings(rows)
}

func toBooking(row pgstore.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func toBookings(rows []pgstore.Bookings) ([]*booking.Booking, error) {
	result, err := converter.BookingsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err, infra.KindDBFailure)
	}
	return result, nil
}

func pageArgs(page shared.Page) (pgtype.Timestamptz, pgtype.UUID, pgtype.Int4) {
	var (
		after   pgtype.Timestamptz
		afterID pgtype.UUID
		limit   pgtype.Int4
	)
	if page.After != nil {
		after = pgconv.TimeToPgtype(page.After.At)
		afterID = pgconv.UUIDPtrToPgtype(&page.After.ID)
	}
	if page.Limit > 0 {
		limit = pgtype.Int4{Int32: int32(page.Limit), Valid: true}
	}
	return after, afterID, limit
}
