package converter

import (
	"fmt"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BlackoutToInfra(b *blackout.BlackoutDay) pgstore.BlackoutDays {
	row := pgstore.BlackoutDays{
		ID:          b.ID(),
		VenueID:     b.VenueID(),
		Title:       b.Title(),
		Description: b.Description(),
		StartDate:   pgconv.TimeToPgtype(b.StartDate()),
		EndDate:     pgconv.TimeToPgtype(b.EndDate()),
		IsActive:    b.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if r := b.Recurrence(); r != nil {
		row.RecurrenceFrequency = pgtype.Text{String: r.Frequency().String(), Valid: true}
		row.RecurrenceInterval = pgtype.Int4{Int32: int32(r.Interval()), Valid: true} // #nosec G115 -- validated positive and small
		row.RecurrenceEnd = pgconv.TimePtrToPgtype(r.EndRecurrence())
	}
	return row
}

func BlackoutToDomain(row pgstore.BlackoutDays) (*blackout.BlackoutDay, error) {
	var recurrence *blackout.Recurrence
	if row.RecurrenceFrequency.Valid {
		r, err := blackout.NewRecurrence(
			blackout.Frequency(row.RecurrenceFrequency.String),
			int(row.RecurrenceInterval.Int32),
			pgconv.TimePtrFromPgtype(row.RecurrenceEnd),
		)
		if err != nil {
			return nil, fmt.Errorf("blackout %s: %w", row.ID, err)
		}
		recurrence = &r
	}
	return blackout.ReconstructBlackoutDay(
		row.ID, row.VenueID,
		row.Title, row.Description,
		row.StartDate.Time.UTC(), row.EndDate.Time.UTC(),
		row.IsActive,
		recurrence,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BlackoutsToDomain(rows []pgstore.BlackoutDays) ([]*blackout.BlackoutDay, error) {
	result := make([]*blackout.BlackoutDay, len(rows))
	for i, row := range rows {
		b, err := BlackoutToDomain(row)
		if err != nil {
			return nil, err
		}
		result[i] = b
	}
	return result, nil
}
