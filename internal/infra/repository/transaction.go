package repository

import (
	"context"

	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/converter"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransactionQueries interface {
	InsertTransaction(ctx context.Context, db pgstore.DBTX, arg pgstore.Transactions) error
	UpdateTransaction(ctx context.Context, db pgstore.DBTX, arg pgstore.Transactions) error
	GetTransactionByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.Transactions, error)
	GetTransactionByIdempotencyKey(ctx context.Context, db pgstore.DBTX, bookingID uuid.UUID, key string) (pgstore.Transactions, error)
	ListTransactionsByBooking(ctx context.Context, db pgstore.DBTX, bookingID uuid.UUID) ([]pgstore.Transactions, error)
	ListTransactionsPageByBooking(ctx context.Context, db pgstore.DBTX, arg pgstore.ListTransactionsPageByBookingParams) ([]pgstore.Transactions, error)
}

type TransactionRepository struct {
	queries TransactionQueries
	db      pgstore.DBTX
}

func NewTransactionRepository(queries TransactionQueries, db pgstore.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Append(ctx context.Context, t *ledger.Transaction) error {
	if err := r.queries.InsertTransaction(ctx, r.db, converter.TransactionToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *ledger.Transaction) error {
	if err := r.queries.UpdateTransaction(ctx, r.db, converter.TransactionToInfra(t)); err != nil {
		return infra.WrapRepoErr("failed to update transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by ID", err)
	}
	return toTransaction(row)
}

func (r *TransactionRepository) FindByIdempotencyKey(ctx context.Context, bookingID uuid.UUID, key string) (*ledger.Transaction, error) {
	row, err := r.queries.GetTransactionByIdempotencyKey(ctx, r.db, bookingID, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by idempotency key", err)
	}
	return toTransaction(row)
}

func (r *TransactionRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error) {
	rows, err := r.queries.ListTransactionsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by booking", err)
	}
	result, err := converter.TransactionsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transactions", err, infra.KindDBFailure)
	}
	return result, nil
}

func (r *TransactionRepository) ListPageByBooking(ctx context.Context, bookingID uuid.UUID, page shared.Page) ([]*ledger.Transaction, error) {
	after, afterID, limit := pageArgs(page)
	rows, err := r.queries.ListTransactionsPageByBooking(ctx, r.db, pgstore.ListTransactionsPageByBookingParams{
		BookingID:     bookingID,
		AfterOccurred: after,
		AfterID:       afterID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by booking", err)
	}
	result, err := converter.TransactionsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transactions", err, infra.KindDBFailure)
	}
	return result, nil
}

func toTransaction(row pgstore.Transactions) (*ledger.Transaction, error) {
	t, err := converter.TransactionToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transaction", err, infra.KindDBFailure)
	}
	return t, nil
}
