package repository

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/pgstore"

	"github.com/google/uuid"
)

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db pgstore.DBTX, key string) error
}

type LockRepository struct {
	queries LockQueries
	db      pgstore.DBTX
}

func NewLockRepository(queries LockQueries, db pgstore.DBTX) *LockRepository {
	return &LockRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LockRepository) LockVenue(ctx context.Context, venueID uuid.UUID) error {
	if err := r.queries.AcquireXactLock(ctx, r.db, "venue:"+venueID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock venue", err)
	}
	return nil
}
