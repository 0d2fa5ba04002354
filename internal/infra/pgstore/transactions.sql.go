package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionColumns = `id, booking_id, direction, type, amount, mode, status, notes,
	vendor_id, purchase_order_id, idempotency_key, request_hash, occurred_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (Transactions, error) {
	var i Transactions
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.Direction,
		&i.Type,
		&i.Amount,
		&i.Mode,
		&i.Status,
		&i.Notes,
		&i.VendorID,
		&i.PurchaseOrderID,
		&i.IdempotencyKey,
		&i.RequestHash,
		&i.OccurredAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertTransaction = `INSERT INTO transactions (` + transactionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (q *Queries) InsertTransaction(ctx context.Context, db DBTX, arg Transactions) error {
	_, err := db.Exec(ctx, insertTransaction,
		arg.ID,
		arg.BookingID,
		arg.Direction,
		arg.Type,
		arg.Amount,
		arg.Mode,
		arg.Status,
		arg.Notes,
		arg.VendorID,
		arg.PurchaseOrderID,
		arg.IdempotencyKey,
		arg.RequestHash,
		arg.OccurredAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

// UpdateTransaction only touches the correctable columns.
const updateTransaction = `UPDATE transactions SET
	amount = $2, mode = $3, status = $4, notes = $5, updated_at = $6
WHERE id = $1`

func (q *Queries) UpdateTransaction(ctx context.Context, db DBTX, arg Transactions) error {
	tag, err := db.Exec(ctx, updateTransaction,
		arg.ID,
		arg.Amount,
		arg.Mode,
		arg.Status,
		arg.Notes,
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

const getTransactionByID = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

func (q *Queries) GetTransactionByID(ctx context.Context, db DBTX, id uuid.UUID) (Transactions, error) {
	return scanTransaction(db.QueryRow(ctx, getTransactionByID, id))
}

const getTransactionByIdempotencyKey = `SELECT ` + transactionColumns + ` FROM transactions
WHERE booking_id = $1 AND idempotency_key = $2`

func (q *Queries) GetTransactionByIdempotencyKey(ctx context.Context, db DBTX, bookingID uuid.UUID, key string) (Transactions, error) {
	return scanTransaction(db.QueryRow(ctx, getTransactionByIdempotencyKey, bookingID, key))
}

const listTransactionsByBooking = `SELECT ` + transactionColumns + ` FROM transactions
WHERE booking_id = $1
ORDER BY occurred_at, created_at, id`

func (q *Queries) ListTransactionsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Transactions, error) {
	return collectTransactions(db.Query(ctx, listTransactionsByBooking, bookingID))
}

const listTransactionsPageByBooking = `SELECT ` + transactionColumns + ` FROM transactions
WHERE booking_id = $1
  AND ($2::timestamptz IS NULL OR (occurred_at, id) > ($2::timestamptz, $3::uuid))
ORDER BY occurred_at, id
LIMIT $4`

type ListTransactionsPageByBookingParams struct {
	BookingID     uuid.UUID
	AfterOccurred pgtype.Timestamptz
	AfterID       pgtype.UUID
	Limit         pgtype.Int4 // NULL lists everything
}

func (q *Queries) ListTransactionsPageByBooking(ctx context.Context, db DBTX, arg ListTransactionsPageByBookingParams) ([]Transactions, error) {
	return collectTransactions(db.Query(ctx, listTransactionsPageByBooking,
		arg.BookingID, arg.AfterOccurred, arg.AfterID, arg.Limit))
}

func collectTransactions(rows pgx.Rows, err error) ([]Transactions, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transactions
	for rows.Next() {
		i, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
