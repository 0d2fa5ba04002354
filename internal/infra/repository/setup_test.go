//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mockDBTX is only passed through; the Queries mocks never touch it.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the Queries mock instead.")
}

var (
	errConnection = &pgconn.PgError{Code: "08006", Message: "connection failure"}
	errUnique     = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint", ConstraintName: "transactions_booking_id_idempotency_key_key"}
	errExclusion  = &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint", ConstraintName: "bookings_no_overlap"}
	errForeignKey = &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
)
