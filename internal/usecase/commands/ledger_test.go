//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/ptr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func inbound(bookingID uuid.UUID, amount int64) commands.AppendTransactionRequest {
	return commands.AppendTransactionRequest{
		BookingID: bookingID,
		Amount:    money.New(amount),
		Mode:      "cash",
		Direction: ledger.DirectionInbound,
		Status:    ledger.StatusSuccess,
	}
}

func TestAppendTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 3000/3000/4000で前金・分割・全額", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })

		want := []ledger.Type{ledger.TypeAdvance, ledger.TypePartial, ledger.TypeFull}
		for i, amount := range []int64{3000, 3000, 4000} {
			f.clock.Add(time.Minute)
			res, err := f.ledger.AppendTransaction(ctx, inbound(seeded.ID, amount))
			require.NoError(t, err)
			assert.Equal(t, want[i], res.Transaction.Type())
		}

		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, int64(10000), stored.Payment().AdvanceAmount.Minor())
		assert.Equal(t, booking.PaymentPaid, stored.Payment().Status)
	})

	t.Run("正常系: 未決済の行は前金に含めない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })

		req := inbound(seeded.ID, 5000)
		req.Status = ledger.StatusPending
		res, err := f.ledger.AppendTransaction(ctx, req)
		require.NoError(t, err)

		assert.True(t, res.Booking.Payment().AdvanceAmount.IsZero())
		assert.Equal(t, booking.PaymentUnpaid, res.Booking.Payment().Status)
	})

	t.Run("正常系: 支払先への出金は前金に影響せず発注へ転送", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		poID := uuid.New()
		f.po.EXPECT().ApplyVendorPayment(gomock.Any(), poID, gomock.Any()).Return(nil).Times(1)

		res, err := f.ledger.AppendTransaction(ctx, commands.AppendTransactionRequest{
			BookingID:       seeded.ID,
			Amount:          money.New(2500),
			Mode:            "bank_transfer",
			Direction:       ledger.DirectionOutbound,
			Status:          ledger.StatusSuccess,
			VendorID:        ptr.Of(uuid.New()),
			PurchaseOrderID: &poID,
		})
		require.NoError(t, err)

		assert.Equal(t, ledger.TypeVendorPayment, res.Transaction.Type())
		assert.Equal(t, ledger.DirectionOutbound, res.Transaction.Direction())
		assert.True(t, res.Booking.Payment().AdvanceAmount.IsZero())
	})

	t.Run("正常系: 発注番号のない出金は転送しない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		req := inbound(seeded.ID, 1000)
		req.Direction = ledger.DirectionOutbound

		res, err := f.ledger.AppendTransaction(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, ledger.TypeVendorPayment, res.Transaction.Type())
	})

	t.Run("正常系: 冪等キーの再送は同じ行を返す", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		req := inbound(seeded.ID, 1000)
		req.IdempotencyKey = ptr.Of("tx-1")

		first, err := f.ledger.AppendTransaction(ctx, req)
		require.NoError(t, err)
		second, err := f.ledger.AppendTransaction(ctx, req)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.Transaction.ID(), second.Transaction.ID())
		assert.Len(t, f.store.Transactions(seeded.ID), 1)
	})

	t.Run("異常系: 同じ冪等キーで内容の違う取引は競合", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		req := inbound(seeded.ID, 3000)
		req.IdempotencyKey = ptr.Of("k")
		first, err := f.ledger.AppendTransaction(ctx, req)
		require.NoError(t, err)

		mutations := map[string]func(*commands.AppendTransactionRequest){
			"金額":  func(r *commands.AppendTransactionRequest) { r.Amount = money.New(5000) },
			"方向":  func(r *commands.AppendTransactionRequest) { r.Direction = ledger.DirectionOutbound },
			"状態":  func(r *commands.AppendTransactionRequest) { r.Status = ledger.StatusPending },
			"支払方法": func(r *commands.AppendTransactionRequest) { r.Mode = "card" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				reused := req
				mutate(&reused)

				res, err := f.ledger.AppendTransaction(ctx, reused)
				require.Error(t, err)
				assert.Nil(t, res)
				assert.Equal(t, errs.KindConflict, errs.KindOf(err))
				items := errs.ConflictItemsOf(err)
				require.Len(t, items, 1)
				assert.Equal(t, first.Transaction.ID().String(), items[0].ID)
			})
		}

		assert.Len(t, f.store.Transactions(seeded.ID), 1)
		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, int64(3000), stored.Payment().AdvanceAmount.Minor())
	})

	t.Run("異常系", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.AppendTransactionRequest)
			errIs  error
		}{
			{name: "金額0NG", mutate: func(r *commands.AppendTransactionRequest) { r.Amount = money.Zero() }, errIs: ledger.ErrNonPositiveAmount},
			{name: "支払方法なしNG", mutate: func(r *commands.AppendTransactionRequest) { r.Mode = " " }, errIs: ledger.ErrMissingMode},
			{name: "不明な方向NG", mutate: func(r *commands.AppendTransactionRequest) { r.Direction = "sideways" }, errIs: ledger.ErrInvalidDirection},
			{name: "不明な状態NG", mutate: func(r *commands.AppendTransactionRequest) { r.Status = "settled" }, errIs: ledger.ErrInvalidStatus},
			{name: "存在しない予約NG", mutate: func(r *commands.AppendTransactionRequest) { r.BookingID = uuid.New() }, errIs: booking.ErrBookingNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				seeded := f.seedBooking(t, nil)
				req := inbound(seeded.ID, 1000)
				tc.mutate(&req)

				_, err := f.ledger.AppendTransaction(ctx, req)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, f.store.Transactions(seeded.ID))
			})
		}
	})

	t.Run("異常系: 削除済み予約には記録できない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		require.NoError(t, f.bookings.DeleteBooking(ctx, seeded.ID))

		_, err := f.ledger.AppendTransaction(ctx, inbound(seeded.ID, 1000))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *builder.BookingBuilder, []uuid.UUID) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		var ids []uuid.UUID
		for _, amount := range []int64{3000, 3000, 4000} {
			f.clock.Add(time.Minute)
			res, err := f.ledger.AppendTransaction(ctx, inbound(seeded.ID, amount))
			require.NoError(t, err)
			ids = append(ids, res.Transaction.ID())
		}
		return f, seeded, ids
	}

	t.Run("正常系: 金額の訂正で前金を全件から再計算", func(t *testing.T) {
		f, seeded, ids := setup(t)

		res, err := f.ledger.UpdateTransaction(ctx, ids[1], ledger.Patch{Amount: ptr.Of(money.New(1000))})
		require.NoError(t, err)

		assert.Equal(t, int64(1000), res.Transaction.Amount().Minor())
		assert.Equal(t, int64(8000), res.Booking.Payment().AdvanceAmount.Minor())
		assert.Equal(t, booking.PaymentPartiallyPaid, res.Booking.Payment().Status)
		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, int64(8000), stored.Payment().AdvanceAmount.Minor())
	})

	t.Run("正常系: 失敗に変更した行は除外される", func(t *testing.T) {
		f, _, ids := setup(t)

		res, err := f.ledger.UpdateTransaction(ctx, ids[2], ledger.Patch{Status: ptr.Of(ledger.StatusFailed)})
		require.NoError(t, err)
		assert.Equal(t, int64(6000), res.Booking.Payment().AdvanceAmount.Minor())

		res, err = f.ledger.UpdateTransaction(ctx, ids[2], ledger.Patch{Status: ptr.Of(ledger.StatusSuccess)})
		require.NoError(t, err)
		assert.Equal(t, int64(10000), res.Booking.Payment().AdvanceAmount.Minor())
	})

	t.Run("異常系: 不正な訂正は保存されない", func(t *testing.T) {
		f, seeded, ids := setup(t)

		_, err := f.ledger.UpdateTransaction(ctx, ids[0], ledger.Patch{Amount: ptr.Of(money.New(-5))})
		assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)

		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, int64(10000), stored.Payment().AdvanceAmount.Minor())
	})

	t.Run("異常系: 存在しない取引", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.UpdateTransaction(ctx, uuid.New(), ledger.Patch{Notes: ptr.Of("x")})
		assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
	})
}
