//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateExclusionViolation(t *testing.T) {
	t.Run("正常系: 制約名を衝突項目に載せる", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
		err := translate(infra.WrapRepoErr("failed to create booking", pgErr), nil, "create booking", uuid.New())

		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, []errs.ConflictItem{{Kind: "constraint", ID: "bookings_no_overlap"}}, errs.ConflictItemsOf(err))
	})

	t.Run("正常系: 制約名が取れなくても項目は空にしない", func(t *testing.T) {
		err := translate(infra.NewRepoErr(infra.KindExclusionViolated, "overlap"), nil, "create booking", uuid.New())
		require.Len(t, errs.ConflictItemsOf(err), 1)
	})
}

func TestSlotConflict(t *testing.T) {
	ctx := context.Background()
	slot, err := booking.NewTimeSlot(
		time.Date(2025, 12, 20, 18, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 20, 22, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	constraintErr := translate(infra.NewRepoErr(infra.KindExclusionViolated, "overlap"), nil, "create booking", uuid.New())

	t.Run("正常系: 再読込で何も見つからなければ制約名のまま", func(t *testing.T) {
		got := slotConflict(ctx, memstore.New(), constraintErr, uuid.New(), slot, nil)
		assert.Equal(t, constraintErr, got)
	})

	t.Run("正常系: 予約を列挙済みの衝突はそのまま", func(t *testing.T) {
		listed := errs.NewConflict(booking.ReasonSlotUnavailable, errs.ConflictItem{Kind: "booking", ID: "b-1"})
		got := slotConflict(ctx, memstore.New(), listed, uuid.New(), slot, nil)
		assert.Same(t, listed, got)
	})

	t.Run("正常系: 衝突以外のエラーはそのまま", func(t *testing.T) {
		notFound := errs.Wrap(booking.ErrBookingNotFound, "load booking")
		assert.Equal(t, notFound, slotConflict(ctx, memstore.New(), notFound, uuid.New(), slot, nil))
	})
}
