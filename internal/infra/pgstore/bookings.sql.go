package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, venue_id, lead_id, guest_count, start_time, end_time, status,
	food_package, services, food_cost_total, total_amount, advance_amount,
	payment_status, payment_mode, notes, is_deleted, deleted_at, confirmed_at,
	cancelled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.VenueID,
		&i.LeadID,
		&i.GuestCount,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.FoodPackage,
		&i.Services,
		&i.FoodCostTotal,
		&i.TotalAmount,
		&i.AdvanceAmount,
		&i.PaymentStatus,
		&i.PaymentMode,
		&i.Notes,
		&i.IsDeleted,
		&i.DeletedAt,
		&i.ConfirmedAt,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookings(rows pgx.Rows, err error) ([]Bookings, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg Bookings) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID,
		arg.VenueID,
		arg.LeadID,
		arg.GuestCount,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.FoodPackage,
		arg.Services,
		arg.FoodCostTotal,
		arg.TotalAmount,
		arg.AdvanceAmount,
		arg.PaymentStatus,
		arg.PaymentMode,
		arg.Notes,
		arg.IsDeleted,
		arg.DeletedAt,
		arg.ConfirmedAt,
		arg.CancelledAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBooking = `UPDATE bookings SET
	guest_count = $2, start_time = $3, end_time = $4, status = $5,
	food_package = $6, services = $7, food_cost_total = $8, total_amount = $9,
	advance_amount = $10, payment_status = $11, payment_mode = $12, notes = $13,
	is_deleted = $14, deleted_at = $15, confirmed_at = $16, cancelled_at = $17,
	updated_at = $18
WHERE id = $1`

// UpdateBooking reports pgx.ErrNoRows when id does not exist.
func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg Bookings) error {
	tag, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.GuestCount,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.FoodPackage,
		arg.Services,
		arg.FoodCostTotal,
		arg.TotalAmount,
		arg.AdvanceAmount,
		arg.PaymentStatus,
		arg.PaymentMode,
		arg.Notes,
		arg.IsDeleted,
		arg.DeletedAt,
		arg.ConfirmedAt,
		arg.CancelledAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingByIDForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const listActiveBookingsOverlapping = `SELECT ` + bookingColumns + ` FROM bookings
WHERE venue_id = $1
  AND status <> 'cancelled'
  AND NOT is_deleted
  AND start_time <= $3
  AND end_time >= $2
  AND ($4::uuid IS NULL OR id <> $4::uuid)
ORDER BY start_time, id`

type ListActiveBookingsOverlappingParams struct {
	VenueID   uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	ExcludeID pgtype.UUID
}

// ListActiveBookingsOverlapping is a closed-range prefilter; adjacency is
// decided by the caller.
func (q *Queries) ListActiveBookingsOverlapping(ctx context.Context, db DBTX, arg ListActiveBookingsOverlappingParams) ([]Bookings, error) {
	return collectBookings(db.Query(ctx, listActiveBookingsOverlapping, arg.VenueID, arg.StartTime, arg.EndTime, arg.ExcludeID))
}

const listBookingsByVenue = `SELECT ` + bookingColumns + ` FROM bookings
WHERE venue_id = $1
  AND ($2::boolean OR NOT is_deleted)
  AND ($3::timestamptz IS NULL OR (start_time, id) > ($3::timestamptz, $4::uuid))
ORDER BY start_time, id
LIMIT $5`

type ListBookingsByVenueParams struct {
	VenueID        uuid.UUID
	IncludeDeleted bool
	AfterStart     pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          pgtype.Int4 // NULL lists everything
}

func (q *Queries) ListBookingsByVenue(ctx context.Context, db DBTX, arg ListBookingsByVenueParams) ([]Bookings, error) {
	return collectBookings(db.Query(ctx, listBookingsByVenue,
		arg.VenueID, arg.IncludeDeleted, arg.AfterStart, arg.AfterID, arg.Limit))
}
