//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CountTransactions counts ledger rows of a booking, whatever their status.
func CountTransactions(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM transactions WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

// BookingRow is the raw state of a booking row, read past the API.
type BookingRow struct {
	Status        string
	AdvanceAmount int64
	TotalAmount   int64
	PaymentStatus string
	IsDeleted     bool
}

func GetBookingRow(t *testing.T, db DBLike, id uuid.UUID) BookingRow {
	t.Helper()

	var r BookingRow
	err := db.QueryRow(context.Background(),
		"SELECT status, advance_amount, total_amount, payment_status, is_deleted FROM bookings WHERE id = $1", id).
		Scan(&r.Status, &r.AdvanceAmount, &r.TotalAmount, &r.PaymentStatus, &r.IsDeleted)
	require.NoError(t, err)
	return r
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the migration ledger.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
