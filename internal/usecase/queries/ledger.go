package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerQueries interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	// ListTransactions pages by (occurred_at, id) and includes rows of
	// soft-deleted bookings; the ledger is kept for audit.
	ListTransactions(ctx context.Context, bookingID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
}

type ledgerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewLedgerQueries(uow shared.UnitOfWork) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow}
}

func (q *ledgerQueriesImpl) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	var view *TransactionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Transactions().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(ledger.ErrTransactionNotFound, "get transaction %s", id)
			}
			return err
		}
		view = NewTransactionView(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *ledgerQueriesImpl) ListTransactions(ctx context.Context, bookingID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageOf(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	var rows []*ledger.Transaction
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, ferr := tx.Bookings().FindByID(ctx, bookingID); ferr != nil {
			if infra.IsKind(ferr, infra.KindNotFound) {
				return errs.Wrapf(booking.ErrBookingNotFound, "list transactions of booking %s", bookingID)
			}
			return ferr
		}
		var lerr error
		rows, lerr = tx.Transactions().ListPageByBooking(ctx, bookingID, page)
		if lerr != nil {
			return errs.Wrapf(lerr, "list transactions of booking %s", bookingID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, func(t *ledger.Transaction) (time.Time, uuid.UUID) {
		return t.OccurredAt(), t.ID()
	})
	views := make([]*TransactionView, len(rows))
	for i, t := range rows {
		views[i] = NewTransactionView(t)
	}
	return views, next, nil
}
