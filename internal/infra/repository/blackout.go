package repository

import (
	"context"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/converter"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlackoutQueries interface {
	InsertBlackout(ctx context.Context, db pgstore.DBTX, arg pgstore.BlackoutDays) error
	UpdateBlackout(ctx context.Context, db pgstore.DBTX, arg pgstore.BlackoutDays) error
	DeleteBlackout(ctx context.Context, db pgstore.DBTX, id uuid.UUID) error
	GetBlackoutByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.BlackoutDays, error)
	ListActiveFixedBlackoutsOverlapping(ctx context.Context, db pgstore.DBTX, arg pgstore.BlackoutWindowParams) ([]pgstore.BlackoutDays, error)
	ListActiveRecurringBlackouts(ctx context.Context, db pgstore.DBTX, arg pgstore.BlackoutWindowParams) ([]pgstore.BlackoutDays, error)
	ListBlackoutsByVenue(ctx context.Context, db pgstore.DBTX, venueID uuid.UUID) ([]pgstore.BlackoutDays, error)
}

type BlackoutRepository struct {
	queries BlackoutQueries
	db      pgstore.DBTX
}

func NewBlackoutRepository(queries BlackoutQueries, db pgstore.DBTX) *BlackoutRepository {
	return &BlackoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *blackout.BlackoutDay) error {
	if err := r.queries.InsertBlackout(ctx, r.db, converter.BlackoutToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) Update(ctx context.Context, b *blackout.BlackoutDay) error {
	if err := r.queries.UpdateBlackout(ctx, r.db, converter.BlackoutToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to update blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteBlackout(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*blackout.BlackoutDay, error) {
	row, err := r.queries.GetBlackoutByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blackout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blackout by ID", err)
	}
	b, err := converter.BlackoutToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode blackout", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BlackoutRepository) FindActiveFixedOverlapping(ctx context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error) {
	rows, err := r.queries.ListActiveFixedBlackoutsOverlapping(ctx, r.db, windowParams(venueID, window))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping blackouts", err)
	}
	return toBlackouts(rows)
}

func (r *BlackoutRepository) FindActiveRecurring(ctx context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error) {
	rows, err := r.queries.ListActiveRecurringBlackouts(ctx, r.db, windowParams(venueID, window))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recurring blackouts", err)
	}
	return toBlackouts(rows)
}

func (r *BlackoutRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*blackout.BlackoutDay, error) {
	rows, err := r.queries.ListBlackoutsByVenue(ctx, r.db, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts by venue", err)
	}
	return toBlackouts(rows)
}

func windowParams(venueID uuid.UUID, window interval.Closed) pgstore.BlackoutWindowParams {
	return pgstore.BlackoutWindowParams{
		VenueID:     venueID,
		WindowStart: pgconv.TimeToPgtype(window.Start),
		WindowEnd:   pgconv.TimeToPgtype(window.End),
	}
}

func toBlackouts(rows []pgstore.BlackoutDays) ([]*blackout.BlackoutDay, error) {
	result, err := converter.BlackoutsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode blackouts", err, infra.KindDBFailure)
	}
	return result, nil
}
