//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/ptr"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func at(day, hour int) time.Time {
	return time.Date(2025, 12, day, hour, 0, 0, 0, time.UTC)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 作成して発注へケータリング明細を同期", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewBookingBuilder().WithSection("Dessert", 50, "Ice cream")
		f.po.EXPECT().SyncCateringLineItems(gomock.Any(), gomock.Any(), 100, gomock.Any()).Return(nil).Times(1)

		created, err := f.bookings.CreateBooking(ctx, b.BuildCreateCommand())
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, int64(55000), created.FoodCostTotal().Minor())
		assert.Equal(t, int64(55000), created.Payment().TotalAmount.Minor())
		assert.Equal(t, booking.PaymentUnpaid, created.Payment().Status)

		stored, ok := f.store.Booking(created.ID())
		require.True(t, ok)
		assert.Equal(t, created.Payment(), stored.Payment())
		assert.Contains(t, f.store.LockedVenues, b.VenueID)
	})

	t.Run("正常系: 前金は最初の台帳行として記録", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		cmd := builder.NewBookingBuilder().BuildCreateCommand()
		cmd.AdvanceAmount = money.New(10000)

		created, err := f.bookings.CreateBooking(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), created.Payment().AdvanceAmount.Minor())
		assert.Equal(t, booking.PaymentPartiallyPaid, created.Payment().Status)
		txs := f.store.Transactions(created.ID())
		require.Len(t, txs, 1)
		assert.Equal(t, ledger.TypeAdvance, txs[0].Type())
		assert.Equal(t, ledger.DirectionInbound, txs[0].Direction())
	})

	t.Run("正常系: 境界が接する予約は重複しない", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		existing := f.seedBooking(t, nil)

		next := builder.NewBookingBuilder().WithVenue(existing.VenueID).WithSlot(at(20, 22), at(20, 23))
		_, err := f.bookings.CreateBooking(ctx, next.BuildCreateCommand())
		require.NoError(t, err)

		before := builder.NewBookingBuilder().WithVenue(existing.VenueID).WithSlot(at(20, 15), at(20, 18))
		_, err = f.bookings.CreateBooking(ctx, before.BuildCreateCommand())
		require.NoError(t, err)
	})

	t.Run("正常系: キャンセル済み予約の枠は再利用できる", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		existing := f.seedBooking(t, nil)
		_, err := f.bookings.CancelBooking(ctx, existing.ID)
		require.NoError(t, err)

		_, err = f.bookings.CreateBooking(ctx, builder.NewBookingBuilder().WithVenue(existing.VenueID).BuildCreateCommand())
		require.NoError(t, err)
	})

	t.Run("正常系: 別会場とは衝突しない", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		f.seedBooking(t, nil)

		_, err := f.bookings.CreateBooking(ctx, builder.NewBookingBuilder().BuildCreateCommand())
		require.NoError(t, err)
	})

	t.Run("正常系: カタログのテンプレートを元に作成", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		b := builder.NewBookingBuilder()
		tpl := &pricing.Template{
			ID:        "gold",
			Name:      "Gold",
			PriceType: pricing.PriceTypePerGuest,
			Price:     money.New(800),
			Sections:  []pricing.Section{{Name: "Starters", PricePerPerson: money.New(100), Items: []string{"Soup"}}},
		}
		f.catalog.EXPECT().GetVenuePackageTemplate(gomock.Any(), b.VenueID, "gold").Return(tpl, nil)

		cmd := b.BuildCreateCommand()
		cmd.FoodPackage = pricing.Selection{SourcePackageID: ptr.Of("gold")}
		created, err := f.bookings.CreateBooking(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, "Gold", created.FoodPackage().Name)
		require.NotNil(t, created.FoodPackage().SourcePackageID)
		assert.Equal(t, "gold", *created.FoodPackage().SourcePackageID)
		assert.Equal(t, int64(90000), created.Payment().TotalAmount.Minor())
	})

	t.Run("異常系: 既存予約と重複", func(t *testing.T) {
		f := newFixture(t)
		existing := f.seedBooking(t, nil)

		cmd := builder.NewBookingBuilder().WithVenue(existing.VenueID).WithSlot(at(20, 20), at(20, 23)).BuildCreateCommand()
		_, err := f.bookings.CreateBooking(ctx, cmd)

		require.Error(t, err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		items := errs.ConflictItemsOf(err)
		require.Len(t, items, 1)
		assert.Equal(t, "booking", items[0].Kind)
		assert.Equal(t, existing.ID.String(), items[0].ID)
	})

	t.Run("異常系: 包含する予約も重複", func(t *testing.T) {
		f := newFixture(t)
		existing := f.seedBooking(t, nil)

		cmd := builder.NewBookingBuilder().WithVenue(existing.VenueID).WithSlot(at(20, 10), at(21, 2)).BuildCreateCommand()
		_, err := f.bookings.CreateBooking(ctx, cmd)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("異常系: ブラックアウトと衝突すると保存も同期もしない", func(t *testing.T) {
		f := newFixture(t)
		venueID := uuid.New()
		day, err := builder.NewBlackoutBuilder().WithVenue(venueID).
			WithDates(at(20, 0), at(21, 0)).BuildDomain()
		require.NoError(t, err)
		f.store.PutBlackout(day)

		cmd := builder.NewBookingBuilder().WithVenue(venueID).BuildCreateCommand()
		_, err = f.bookings.CreateBooking(ctx, cmd)

		require.Error(t, err)
		var ce *errs.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, booking.ReasonBlackoutConflict, ce.Reason)
		require.Len(t, ce.Items, 1)
		assert.Equal(t, "Christmas", ce.Items[0].Title)
		assert.Contains(t, err.Error(), "Christmas")

		assert.Empty(t, f.store.BookingsOf(venueID))
	})

	t.Run("異常系: 毎週のブラックアウトの発生日と衝突", func(t *testing.T) {
		f := newFixture(t)
		venueID := uuid.New()
		day, err := builder.NewBlackoutBuilder().WithVenue(venueID).WithTitle("Saturday maintenance").
			WithDates(at(6, 0), at(6, 23)).Recurring(blackout.FrequencyWeekly, 1).BuildDomain()
		require.NoError(t, err)
		f.store.PutBlackout(day)

		_, err = f.bookings.CreateBooking(ctx, builder.NewBookingBuilder().WithVenue(venueID).BuildCreateCommand())
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("正常系: 無効化されたブラックアウトは無視", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		venueID := uuid.New()
		day, err := builder.NewBlackoutBuilder().WithVenue(venueID).
			WithDates(at(20, 0), at(21, 0)).AsInactive().BuildDomain()
		require.NoError(t, err)
		f.store.PutBlackout(day)

		_, err = f.bookings.CreateBooking(ctx, builder.NewBookingBuilder().WithVenue(venueID).BuildCreateCommand())
		require.NoError(t, err)
	})

	t.Run("異常系: カタログにないパッケージ", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewBookingBuilder()
		f.catalog.EXPECT().GetVenuePackageTemplate(gomock.Any(), b.VenueID, "missing").
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "package not found"))

		cmd := b.BuildCreateCommand()
		cmd.FoodPackage.SourcePackageID = ptr.Of("missing")
		_, err := f.bookings.CreateBooking(ctx, cmd)

		assert.ErrorIs(t, err, pricing.ErrTemplateRequired)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("入力検証", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.CreateBookingRequest)
			errIs  error
		}{
			{
				name:   "終了が開始より前NG",
				mutate: func(r *commands.CreateBookingRequest) { r.End = r.Start.Add(-time.Hour) },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "ゲスト数0NG",
				mutate: func(r *commands.CreateBookingRequest) { r.GuestCount = 0 },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "前金が負NG",
				mutate: func(r *commands.CreateBookingRequest) { r.AdvanceAmount = money.New(-1) },
				errIs:  booking.ErrNegativeAmount,
			},
			{
				name:   "パッケージ名なしNG",
				mutate: func(r *commands.CreateBookingRequest) { r.FoodPackage.Name = nil },
				errIs:  pricing.ErrMissingPackageName,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				cmd := builder.NewBookingBuilder().BuildCreateCommand()
				tc.mutate(&cmd)

				_, err := f.bookings.CreateBooking(ctx, cmd)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, 0, f.store.Commits)
			})
		}
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ゲスト数100から150で再計算し発注を同期", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithSection("Dessert", 50) })
		f.po.EXPECT().SyncCateringLineItems(gomock.Any(), seeded.ID, 150, gomock.Any()).Return(nil).Times(1)

		updated, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{GuestCount: ptr.Of(150)})
		require.NoError(t, err)

		assert.Equal(t, 150, updated.GuestCount())
		assert.Equal(t, int64(82500), updated.FoodCostTotal().Minor())
		assert.Equal(t, int64(82500), updated.Payment().TotalAmount.Minor())
	})

	t.Run("正常系: 発注同期の失敗は更新を妨げない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		f.po.EXPECT().SyncCateringLineItems(gomock.Any(), seeded.ID, 120, gomock.Any()).
			Return(errs.New("broker unavailable")).Times(1)

		updated, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{GuestCount: ptr.Of(120)})
		require.NoError(t, err)
		assert.Equal(t, 120, updated.GuestCount())
	})

	t.Run("正常系: 前金は維持され支払状況を再判定", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		_, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(10000), PaymentMode: "cash"})
		require.NoError(t, err)

		updated, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{
			Services: &[]pricing.Service{{Name: "DJ", Price: money.New(5000)}},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(15000), updated.Payment().TotalAmount.Minor())
		assert.Equal(t, int64(10000), updated.Payment().AdvanceAmount.Minor())
		assert.Equal(t, booking.PaymentPartiallyPaid, updated.Payment().Status)
	})

	t.Run("正常系: メモだけの更新は発注を同期しない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)

		updated, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{Notes: ptr.Of("  vegetarian  ")})
		require.NoError(t, err)
		assert.Equal(t, "vegetarian", updated.Notes())
	})

	t.Run("正常系: 自分の元の枠と重なる日程変更", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)

		updated, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{End: ptr.Of(at(20, 23))})
		require.NoError(t, err)
		assert.Equal(t, at(20, 23), updated.Slot().End())
	})

	t.Run("異常系: 日程変更で他の予約と重複すると変更されない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		other := f.seedBooking(t, func(b *builder.BookingBuilder) {
			b.WithVenue(seeded.VenueID).WithSlot(at(21, 18), at(21, 22))
		})

		_, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{
			Start: ptr.Of(at(21, 12)),
			End:   ptr.Of(at(21, 19)),
			Notes: ptr.Of("moved"),
		})
		require.Error(t, err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, other.ID.String(), errs.ConflictItemsOf(err)[0].ID)

		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, at(20, 18), stored.Slot().Start())
		assert.Empty(t, stored.Notes())
	})

	t.Run("異常系: キャンセル済み予約の料金変更", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		_, err := f.bookings.CancelBooking(ctx, seeded.ID)
		require.NoError(t, err)

		_, err = f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{GuestCount: ptr.Of(120)})
		assert.ErrorIs(t, err, booking.ErrBookingCancelled)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("異常系: 削除済み予約は見つからない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		require.NoError(t, f.bookings.DeleteBooking(ctx, seeded.ID))

		_, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{Notes: ptr.Of("x")})
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})

	t.Run("異常系: 存在しない予約", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.UpdateBooking(ctx, uuid.New(), commands.UpdateBookingRequest{Notes: ptr.Of("x")})
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestBookingTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 確定からキャンセル", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)

		confirmed, err := f.bookings.ConfirmBooking(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, confirmed.Status())
		assert.NotNil(t, confirmed.ConfirmedAt())

		cancelled, err := f.bookings.CancelBooking(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
	})

	t.Run("異常系: キャンセル済みは確定できない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		_, err := f.bookings.CancelBooking(ctx, seeded.ID)
		require.NoError(t, err)

		_, err = f.bookings.ConfirmBooking(ctx, seeded.ID)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("正常系: 論理削除しても台帳は残る", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		_, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(3000), PaymentMode: "cash"})
		require.NoError(t, err)

		require.NoError(t, f.bookings.DeleteBooking(ctx, seeded.ID))

		stored, ok := f.store.Booking(seeded.ID)
		require.True(t, ok)
		assert.True(t, stored.IsDeleted())
		assert.Len(t, f.store.Transactions(seeded.ID), 1)

		_, err = f.bookings.ConfirmBooking(ctx, seeded.ID)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.ErrorIs(t, f.bookings.DeleteBooking(ctx, seeded.ID), booking.ErrBookingNotFound)
	})

	t.Run("正常系: 削除した予約を復元", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		require.NoError(t, f.bookings.DeleteBooking(ctx, seeded.ID))

		restored, err := f.bookings.RestoreBooking(ctx, seeded.ID)
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted())
		assert.Nil(t, restored.DeletedAt())
	})

	t.Run("異常系: 削除中に枠が埋まった予約は復元できない", func(t *testing.T) {
		f := newFixture(t)
		f.allowSync()
		seeded := f.seedBooking(t, nil)
		require.NoError(t, f.bookings.DeleteBooking(ctx, seeded.ID))
		_, err := f.bookings.CreateBooking(ctx, builder.NewBookingBuilder().WithVenue(seeded.VenueID).BuildCreateCommand())
		require.NoError(t, err)

		_, err = f.bookings.RestoreBooking(ctx, seeded.ID)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		stored, _ := f.store.Booking(seeded.ID)
		assert.True(t, stored.IsDeleted())
	})

	t.Run("異常系: 削除されていない予約の復元", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)

		_, err := f.bookings.RestoreBooking(ctx, seeded.ID)
		assert.ErrorIs(t, err, booking.ErrNotDeleted)
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 目標前金の差分を台帳に追記", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })

		steps := []struct {
			target   int64
			wantType ledger.Type
			wantAmt  int64
			status   booking.PaymentStatus
		}{
			{target: 3000, wantType: ledger.TypeAdvance, wantAmt: 3000, status: booking.PaymentPartiallyPaid},
			{target: 6000, wantType: ledger.TypePartial, wantAmt: 3000, status: booking.PaymentPartiallyPaid},
			{target: 10000, wantType: ledger.TypeFull, wantAmt: 4000, status: booking.PaymentPaid},
		}
		for _, s := range steps {
			res, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(s.target), PaymentMode: "card"})
			require.NoError(t, err)
			require.NotNil(t, res.Transaction)
			assert.Equal(t, s.wantType, res.Transaction.Type())
			assert.Equal(t, s.wantAmt, res.Transaction.Amount().Minor())
			assert.Equal(t, s.target, res.Booking.Payment().AdvanceAmount.Minor())
			assert.Equal(t, s.status, res.Booking.Payment().Status)
		}
		assert.Len(t, f.store.Transactions(seeded.ID), 3)
	})

	t.Run("正常系: 同じ目標なら追記せず支払方法だけ更新", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)

		res, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.Zero(), PaymentMode: "bank_transfer"})
		require.NoError(t, err)
		assert.Nil(t, res.Transaction)
		assert.Equal(t, "bank_transfer", res.Booking.Payment().Mode)
		assert.Empty(t, f.store.Transactions(seeded.ID))
	})

	t.Run("正常系: 同じ冪等キーの再送は再記録しない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		req := commands.UpdatePaymentRequest{AdvanceAmount: money.New(2000), PaymentMode: "cash", IdempotencyKey: ptr.Of("pay-1")}

		first, err := f.bookings.UpdatePayment(ctx, seeded.ID, req)
		require.NoError(t, err)
		second, err := f.bookings.UpdatePayment(ctx, seeded.ID, req)
		require.NoError(t, err)

		assert.False(t, first.Replayed)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Transaction.ID(), second.Transaction.ID())
		assert.Len(t, f.store.Transactions(seeded.ID), 1)
	})

	t.Run("異常系: 同じ冪等キーで目標や支払方法が違えば競合", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		req := commands.UpdatePaymentRequest{AdvanceAmount: money.New(3000), PaymentMode: "cash", IdempotencyKey: ptr.Of("k")}
		_, err := f.bookings.UpdatePayment(ctx, seeded.ID, req)
		require.NoError(t, err)

		for _, reused := range []commands.UpdatePaymentRequest{
			{AdvanceAmount: money.New(5000), PaymentMode: "cash", IdempotencyKey: ptr.Of("k")},
			{AdvanceAmount: money.New(3000), PaymentMode: "card", IdempotencyKey: ptr.Of("k")},
		} {
			res, err := f.bookings.UpdatePayment(ctx, seeded.ID, reused)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		}

		assert.Len(t, f.store.Transactions(seeded.ID), 1)
		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, int64(3000), stored.Payment().AdvanceAmount.Minor())
		assert.Equal(t, "cash", stored.Payment().Mode)
	})

	t.Run("異常系: 取引と支払更新で同じ冪等キーは使い回せない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, func(b *builder.BookingBuilder) { b.WithFlatPrice(10000) })
		_, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(3000), PaymentMode: "cash", IdempotencyKey: ptr.Of("shared")})
		require.NoError(t, err)

		_, err = f.ledger.AppendTransaction(ctx, commands.AppendTransactionRequest{
			BookingID:      seeded.ID,
			Amount:         money.New(3000),
			Mode:           "cash",
			Direction:      ledger.DirectionInbound,
			Status:         ledger.StatusSuccess,
			IdempotencyKey: ptr.Of("shared"),
		})
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Len(t, f.store.Transactions(seeded.ID), 1)
	})

	t.Run("異常系: 前金を減らすことはできない", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		_, err := f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(5000), PaymentMode: "cash"})
		require.NoError(t, err)

		_, err = f.bookings.UpdatePayment(ctx, seeded.ID, commands.UpdatePaymentRequest{AdvanceAmount: money.New(4000), PaymentMode: "cash"})
		assert.ErrorIs(t, err, booking.ErrAdvanceDecrease)
		assert.Len(t, f.store.Transactions(seeded.ID), 1)
	})
}

// 事前チェックの後に別トランザクションが同じ枠を確定させた場合
func TestBookingSlotTakenConcurrently(t *testing.T) {
	ctx := context.Background()

	competitor := func(t *testing.T, venueID uuid.UUID, start, end time.Time) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().WithVenue(venueID).WithSlot(start, end).BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("異常系: 登録時の制約違反は割り込んだ予約を返す", func(t *testing.T) {
		f := newFixture(t)
		cmd := builder.NewBookingBuilder().BuildCreateCommand()
		other := competitor(t, cmd.VenueID, cmd.Start.Add(time.Hour), cmd.End.Add(time.Hour))
		f.store.Interleave = func(*booking.Booking) *booking.Booking { return other }

		_, err := f.bookings.CreateBooking(ctx, cmd)
		require.Error(t, err)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		items := errs.ConflictItemsOf(err)
		require.Len(t, items, 1)
		assert.Equal(t, other.ConflictItem(), items[0])

		stored := f.store.BookingsOf(cmd.VenueID)
		require.Len(t, stored, 1)
		assert.Equal(t, other.ID(), stored[0].ID())
	})

	t.Run("異常系: 日程変更時の制約違反は割り込んだ予約を返す", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seedBooking(t, nil)
		other := competitor(t, seeded.VenueID, at(22, 18), at(22, 22))
		f.store.Interleave = func(*booking.Booking) *booking.Booking { return other }

		_, err := f.bookings.UpdateBooking(ctx, seeded.ID, commands.UpdateBookingRequest{
			Start: ptr.Of(at(22, 17)),
			End:   ptr.Of(at(22, 20)),
		})
		require.Error(t, err)
		items := errs.ConflictItemsOf(err)
		require.Len(t, items, 1)
		assert.Equal(t, other.ID().String(), items[0].ID)
		assert.Equal(t, "booking", items[0].Kind)

		stored, _ := f.store.Booking(seeded.ID)
		assert.Equal(t, at(20, 18), stored.Slot().Start())
	})
}
