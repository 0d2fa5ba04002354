package queries

import (
	"context"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlackoutQueries interface {
	GetBlackout(ctx context.Context, id uuid.UUID) (*BlackoutView, error)
	ListBlackouts(ctx context.Context, venueID uuid.UUID) ([]*BlackoutView, error)
}

type blackoutQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBlackoutQueries(uow shared.UnitOfWork) BlackoutQueries {
	return &blackoutQueriesImpl{uow: uow}
}

func (q *blackoutQueriesImpl) GetBlackout(ctx context.Context, id uuid.UUID) (*BlackoutView, error) {
	var view *BlackoutView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Blackouts().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(blackout.ErrBlackoutNotFound, "get blackout %s", id)
			}
			return err
		}
		view = NewBlackoutView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *blackoutQueriesImpl) ListBlackouts(ctx context.Context, venueID uuid.UUID) ([]*BlackoutView, error) {
	var views []*BlackoutView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Blackouts().ListByVenue(ctx, venueID)
		if err != nil {
			return errs.Wrapf(err, "list blackouts of venue %s", venueID)
		}
		views = make([]*BlackoutView, len(rows))
		for i, b := range rows {
			views[i] = NewBlackoutView(b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
