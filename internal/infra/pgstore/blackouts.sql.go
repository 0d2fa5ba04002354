package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const blackoutColumns = `id, venue_id, title, description, start_date, end_date, is_active,
	recurrence_frequency, recurrence_interval, recurrence_end, created_at, updated_at`

func scanBlackout(row pgx.Row) (BlackoutDays, error) {
	var i BlackoutDays
	err := row.Scan(
		&i.ID,
		&i.VenueID,
		&i.Title,
		&i.Description,
		&i.StartDate,
		&i.EndDate,
		&i.IsActive,
		&i.RecurrenceFrequency,
		&i.RecurrenceInterval,
		&i.RecurrenceEnd,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBlackouts(rows pgx.Rows, err error) ([]BlackoutDays, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlackoutDays
	for rows.Next() {
		i, err := scanBlackout(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertBlackout = `INSERT INTO blackout_days (` + blackoutColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (q *Queries) InsertBlackout(ctx context.Context, db DBTX, arg BlackoutDays) error {
	_, err := db.Exec(ctx, insertBlackout,
		arg.ID,
		arg.VenueID,
		arg.Title,
		arg.Description,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
		arg.RecurrenceFrequency,
		arg.RecurrenceInterval,
		arg.RecurrenceEnd,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBlackout = `UPDATE blackout_days SET
	title = $2, description = $3, start_date = $4, end_date = $5, is_active = $6,
	recurrence_frequency = $7, recurrence_interval = $8, recurrence_end = $9,
	updated_at = $10
WHERE id = $1`

func (q *Queries) UpdateBlackout(ctx context.Context, db DBTX, arg BlackoutDays) error {
	tag, err := db.Exec(ctx, updateBlackout,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.StartDate,
		arg.EndDate,
		arg.IsActive,
		arg.RecurrenceFrequency,
		arg.RecurrenceInterval,
		arg.RecurrenceEnd,
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

const deleteBlackout = `DELETE FROM blackout_days WHERE id = $1`

func (q *Queries) DeleteBlackout(ctx context.Context, db DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteBlackout, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const getBlackoutByID = `SELECT ` + blackoutColumns + ` FROM blackout_days WHERE id = $1`

func (q *Queries) GetBlackoutByID(ctx context.Context, db DBTX, id uuid.UUID) (BlackoutDays, error) {
	return scanBlackout(db.QueryRow(ctx, getBlackoutByID, id))
}

type BlackoutWindowParams struct {
	VenueID     uuid.UUID
	WindowStart pgtype.Timestamptz
	WindowEnd   pgtype.Timestamptz
}

const listActiveFixedBlackoutsOverlapping = `SELECT ` + blackoutColumns + ` FROM blackout_days
WHERE venue_id = $1
  AND is_active
  AND recurrence_frequency IS NULL
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date, id`

func (q *Queries) ListActiveFixedBlackoutsOverlapping(ctx context.Context, db DBTX, arg BlackoutWindowParams) ([]BlackoutDays, error) {
	return collectBlackouts(db.Query(ctx, listActiveFixedBlackoutsOverlapping, arg.VenueID, arg.WindowStart, arg.WindowEnd))
}

const listActiveRecurringBlackouts = `SELECT ` + blackoutColumns + ` FROM blackout_days
WHERE venue_id = $1
  AND is_active
  AND recurrence_frequency IS NOT NULL
  AND start_date <= $3
  AND (recurrence_end IS NULL OR recurrence_end >= $2::timestamptz - (end_date - start_date))
ORDER BY start_date, id`

// ListActiveRecurringBlackouts drops rules that start after the window or
// whose last occurrence ends before it.
func (q *Queries) ListActiveRecurringBlackouts(ctx context.Context, db DBTX, arg BlackoutWindowParams) ([]BlackoutDays, error) {
	return collectBlackouts(db.Query(ctx, listActiveRecurringBlackouts, arg.VenueID, arg.WindowStart, arg.WindowEnd))
}

const listBlackoutsByVenue = `SELECT ` + blackoutColumns + ` FROM blackout_days
WHERE venue_id = $1
ORDER BY start_date, id`

func (q *Queries) ListBlackoutsByVenue(ctx context.Context, db DBTX, venueID uuid.UUID) ([]BlackoutDays, error) {
	return collectBlackouts(db.Query(ctx, listBlackoutsByVenue, venueID))
}
