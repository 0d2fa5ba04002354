//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/dbtest"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type BookingE2ETestSuite struct {
	e2e.SharedSuite
	venueID uuid.UUID
	token   string
}

func TestBookingE2ESuite(t *testing.T) {
	suite.Run(t, new(BookingE2ETestSuite))
}

func (s *BookingE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.venueID = uuid.New()
	s.token = s.JWT.ManagerToken(s.T())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	venues := s.Catalog.Database(s.Config.Catalog.Database).Collection(s.Config.Catalog.VenueCollection)
	_, err := venues.InsertOne(ctx, bson.M{
		"_id": s.venueID.String(),
		"packages": bson.A{
			bson.M{
				"id":         "gold",
				"name":       "Gold",
				"price_type": "per_guest",
				"price":      400,
				"sections": bson.A{
					bson.M{"name": "Starters", "price_per_person": 100, "items": bson.A{"Paneer Tikka"}},
				},
				"inclusions": bson.A{"Welcome drink"},
			},
		},
	})
	require.NoError(s.T(), err, "カタログの投入に失敗")
}

func (s *BookingE2ETestSuite) bookingsPath() string {
	return fmt.Sprintf("/api/venues/%s/bookings", s.venueID)
}

func slotAt(day, startHour, endHour int) (time.Time, time.Time) {
	start := time.Date(2025, 11, day, startHour, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, day, endHour, 0, 0, 0, time.UTC)
	return start, end
}

func (s *BookingE2ETestSuite) createBody(start, end time.Time) map[string]any {
	return map[string]any{
		"guest_count":  100,
		"start_time":   start,
		"end_time":     end,
		"payment_mode": "upi",
		"food_package": map[string]any{"source_package_id": "gold"},
		"services":     []map[string]any{{"name": "DJ", "price": 5000}},
	}
}

func (s *BookingE2ETestSuite) createBooking(start, end time.Time) response.BookingResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), s.createBody(start, end), s.token)
	var res response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *BookingE2ETestSuite) TestCreateBooking() {
	s.Run("正常系: カタログのパッケージから価格を計算して登録する", func() {
		start, end := slotAt(10, 18, 22)

		res := s.createBooking(start, end)

		assert.Equal(s.T(), "pending", res.Status)
		assert.Equal(s.T(), "Gold", res.FoodPackage.Name)
		assert.Equal(s.T(), int64(50000), res.FoodCostTotal)
		assert.Equal(s.T(), int64(5000), res.ServicesTotal)
		assert.Equal(s.T(), int64(55000), res.TotalAmount)
		assert.Equal(s.T(), "unpaid", res.PaymentStatus)

		row := dbtest.GetBookingRow(s.T(), s.DB, uuid.MustParse(res.ID))
		assert.Equal(s.T(), int64(55000), row.TotalAmount)
	})

	s.Run("正常系: 前受金つきの登録は台帳に記録される", func() {
		start, end := slotAt(11, 18, 22)
		body := s.createBody(start, end)
		body["advance_amount"] = 10000

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), body, s.token)

		var res response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		assert.Equal(s.T(), int64(10000), res.AdvanceAmount)
		assert.Equal(s.T(), "partially_paid", res.PaymentStatus)
		assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, uuid.MustParse(res.ID)))
	})

	s.Run("異常系: 存在しないパッケージは 400", func() {
		start, end := slotAt(12, 18, 22)
		body := s.createBody(start, end)
		body["food_package"] = map[string]any{"source_package_id": "platinum"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), body, s.token)

		body2 := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		assert.Equal(s.T(), "validation", body2.Error.Kind)
	})

	s.Run("異常系: 重なる枠は 409 で既存予約を返す", func() {
		start, end := slotAt(13, 18, 22)
		first := s.createBooking(start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(),
			s.createBody(start.Add(2*time.Hour), end.Add(2*time.Hour)), s.token)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		assert.Equal(s.T(), "conflict", body.Error.Kind)
		require.Len(s.T(), body.Detail.Conflicts, 1)
		assert.Equal(s.T(), "booking", body.Detail.Conflicts[0].Kind)
		assert.Equal(s.T(), first.ID, body.Detail.Conflicts[0].ID)
	})

	s.Run("正常系: 終了時刻ちょうどに始まる枠は登録できる", func() {
		start, end := slotAt(14, 12, 16)
		s.createBooking(start, end)

		next := s.createBooking(end, end.Add(4*time.Hour))

		assert.Equal(s.T(), "pending", next.Status)
	})
}

func (s *BookingE2ETestSuite) TestBlackoutBlocksBooking() {
	s.Run("異常系: ブラックアウトと重なる予約は 409 でタイトルを返す", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/venues/%s/blackouts", s.venueID),
			map[string]any{
				"title":      "Christmas",
				"start_date": time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC),
				"end_date":   time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC),
				"recurrence": map[string]any{"frequency": "yearly", "interval": 1},
			}, s.token)
		var blackout response.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &blackout)

		// 翌年の同じ日付も繰り返しで塞がれる
		start := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(),
			s.createBody(start, start.Add(4*time.Hour)), s.token)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		require.Len(s.T(), body.Detail.Conflicts, 1)
		assert.Equal(s.T(), "blackout", body.Detail.Conflicts[0].Kind)
		assert.Equal(s.T(), "Christmas", body.Detail.Conflicts[0].Title)
	})

	s.Run("正常系: 無効化したブラックアウトは予約を妨げない", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/venues/%s/blackouts", s.venueID),
			map[string]any{
				"title":      "Renovation",
				"start_date": time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
				"end_date":   time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC),
			}, s.token)
		var blackout response.BlackoutResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &blackout)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/blackouts/"+blackout.ID,
			map[string]any{"is_active": false}, s.token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		start, end := slotAt(20, 18, 22)
		s.createBooking(start, end)
	})
}

func (s *BookingE2ETestSuite) TestPaymentAndLedger() {
	s.Run("正常系: 冪等キーの再送は同じ取引を返す", func() {
		start, end := slotAt(15, 18, 22)
		b := s.createBooking(start, end)
		path := fmt.Sprintf("/api/bookings/%s/payment", b.ID)
		headers := map[string]string{"Idempotency-Key": "pay-1"}
		body := map[string]any{"advance_amount": 20000, "payment_mode": "card"}

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut, path, body, s.token, headers)
		var first response.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut, path, body, s.token, headers)
		var second response.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)

		require.NotNil(s.T(), first.Transaction)
		require.NotNil(s.T(), second.Transaction)
		assert.False(s.T(), first.Replayed)
		assert.True(s.T(), second.Replayed)
		assert.Equal(s.T(), first.Transaction.ID, second.Transaction.ID)
		assert.Equal(s.T(), int64(20000), second.Booking.AdvanceAmount)
		assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, uuid.MustParse(b.ID)))
	})

	s.Run("異常系: 冪等キーを別の金額で使い回すと 409", func() {
		start, end := slotAt(18, 18, 22)
		b := s.createBooking(start, end)
		path := fmt.Sprintf("/api/bookings/%s/transactions", b.ID)
		headers := map[string]string{"Idempotency-Key": "k"}

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, path,
			map[string]any{"amount": 3000, "mode": "upi", "direction": "inbound"}, s.token, headers)
		var first response.LedgerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &first)

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, path,
			map[string]any{"amount": 5000, "mode": "upi", "direction": "inbound"}, s.token, headers)
		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		assert.Equal(s.T(), "conflict", body.Error.Kind)
		require.Len(s.T(), body.Detail.Conflicts, 1)
		assert.Equal(s.T(), first.Transaction.ID, body.Detail.Conflicts[0].ID)
		assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, uuid.MustParse(b.ID)))
	})

	s.Run("正常系: 台帳への追記で支払済みに照合される", func() {
		start, end := slotAt(16, 18, 22)
		b := s.createBooking(start, end)
		path := fmt.Sprintf("/api/bookings/%s/transactions", b.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
			map[string]any{"amount": 30000, "mode": "upi", "direction": "inbound"}, s.token)
		var advance response.LedgerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &advance)
		assert.Equal(s.T(), "advance", advance.Transaction.Type)
		assert.Equal(s.T(), "partially_paid", advance.Booking.PaymentStatus)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path,
			map[string]any{"amount": 25000, "mode": "upi", "direction": "inbound"}, s.token)
		var full response.LedgerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &full)
		assert.Equal(s.T(), "full", full.Transaction.Type)
		assert.Equal(s.T(), "paid", full.Booking.PaymentStatus)
		assert.Equal(s.T(), int64(0), full.Booking.Balance)

		// 支払い取引を失敗に訂正すると再照合される
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/transactions/"+full.Transaction.ID,
			map[string]any{"status": "failed"}, s.token)
		var corrected response.LedgerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &corrected)
		assert.Equal(s.T(), int64(30000), corrected.Booking.AdvanceAmount)
		assert.Equal(s.T(), "partially_paid", corrected.Booking.PaymentStatus)

		row := dbtest.GetBookingRow(s.T(), s.DB, uuid.MustParse(b.ID))
		assert.Equal(s.T(), int64(30000), row.AdvanceAmount)
		assert.Equal(s.T(), "partially_paid", row.PaymentStatus)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, s.token)
		var txs response.TransactionListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &txs)
		require.Len(s.T(), txs.Transactions, 2)
		assert.Equal(s.T(), advance.Transaction.ID, txs.Transactions[0].ID)
		assert.Empty(s.T(), txs.NextCursor)
	})

	s.Run("正常系: 支払い先への出金は前受金に影響しない", func() {
		start, end := slotAt(17, 18, 22)
		b := s.createBooking(start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/bookings/%s/transactions", b.ID),
			map[string]any{"amount": 8000, "mode": "bank", "direction": "outbound", "vendor_id": uuid.New()}, s.token)

		var res response.LedgerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		assert.Equal(s.T(), "vendor_payment", res.Transaction.Type)
		assert.Equal(s.T(), int64(0), res.Booking.AdvanceAmount)
		assert.Equal(s.T(), "unpaid", res.Booking.PaymentStatus)
	})
}

func (s *BookingE2ETestSuite) TestLifecycle() {
	s.Run("正常系: キャンセルすると枠が空く", func() {
		start, end := slotAt(18, 18, 22)
		b := s.createBooking(start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/bookings/%s/cancel", b.ID), nil, s.token)
		var cancelled response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		assert.Equal(s.T(), "cancelled", cancelled.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/venues/%s/availability?start=%s&end=%s", s.venueID,
				start.Format(time.RFC3339), end.Format(time.RFC3339)), nil, s.token)
		var avail response.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		assert.True(s.T(), avail.Available)

		s.createBooking(start, end)
	})

	s.Run("異常系: 削除中に枠が埋まると復元は 409", func() {
		start, end := slotAt(19, 18, 22)
		b := s.createBooking(start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+b.ID, nil, s.token)
		assert.Equal(s.T(), http.StatusNoContent, w.Code)
		assert.True(s.T(), dbtest.GetBookingRow(s.T(), s.DB, uuid.MustParse(b.ID)).IsDeleted)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/"+b.ID, nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

		s.createBooking(start, end)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/bookings/%s/restore", b.ID), nil, s.token)
		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		require.Len(s.T(), body.Detail.Conflicts, 1)
		assert.Equal(s.T(), "booking", body.Detail.Conflicts[0].Kind)
	})

	s.Run("正常系: 削除した予約を復元する", func() {
		start, end := slotAt(21, 18, 22)
		b := s.createBooking(start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+b.ID, nil, s.token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/bookings/%s/restore", b.ID), nil, s.token)
		var restored response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &restored)
		assert.False(s.T(), restored.IsDeleted)
	})
}

func (s *BookingE2ETestSuite) TestListBookings() {
	s.Run("正常系: カーソルで開始時刻順にページ送りする", func() {
		var created []string
		for _, day := range []int{25, 23, 24} {
			start, end := slotAt(day, 18, 22)
			created = append(created, s.createBooking(start, end).ID)
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.bookingsPath()+"?limit=2", nil, s.token)
		var first response.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		require.Len(s.T(), first.Bookings, 2)
		assert.Equal(s.T(), created[1], first.Bookings[0].ID)
		assert.Equal(s.T(), created[2], first.Bookings[1].ID)
		require.NotEmpty(s.T(), first.NextCursor)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			s.bookingsPath()+"?limit=2&after="+url.QueryEscape(first.NextCursor), nil, s.token)
		var second response.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		require.Len(s.T(), second.Bookings, 1)
		assert.Equal(s.T(), created[0], second.Bookings[0].ID)
		assert.Empty(s.T(), second.NextCursor)
	})

	s.Run("異常系: 壊れたカーソルは 400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.bookingsPath()+"?after=not-a-cursor", nil, s.token)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid pagination cursor")
		assert.Equal(s.T(), "validation", body.Error.Kind)
	})
}

func (s *BookingE2ETestSuite) TestAuthorization() {
	start, end := slotAt(22, 18, 22)

	s.Run("正常系: 許可されたオリジンのプリフライトは冪等キーを許す", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodOptions, s.bookingsPath(), nil, "", map[string]string{
			"Origin":                         "http://localhost:3000",
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Idempotency-Key",
		})

		assert.Equal(s.T(), http.StatusNoContent, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Access-Control-Allow-Origin": "http://localhost:3000",
		})
		assert.Contains(s.T(), w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})

	s.Run("異常系: トークンなしは 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), s.createBody(start, end), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("異常系: 期限切れトークンは 401", func() {
		token := s.JWT.CreateExpiredToken(s.T(), authtest.AllPermissions...)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), s.createBody(start, end), token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("異常系: 閲覧権限だけでは登録できない", func() {
		token := s.JWT.GenerateToken(s.T(), "viewer", usecase.PermissionBookingsRead)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.bookingsPath(), s.createBody(start, end), token)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
		assert.Equal(s.T(), "permission", body.Error.Kind)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, s.bookingsPath(), nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})
}
