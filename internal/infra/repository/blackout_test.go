//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/converter"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/infra/repository"
	"venue-booking/tests/common/builder"
	repositorymock "venue-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBlackoutRepo(t *testing.T) (*repository.BlackoutRepository, *repositorymock.MockBlackoutQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockBlackoutQueries(ctrl)
	db := &mockDBTX{}
	return repository.NewBlackoutRepository(q, db), q, db
}

func TestBlackoutRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 繰り返し設定ごと復元する", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		day, err := builder.NewBlackoutBuilder().Recurring(blackout.FrequencyMonthly, 2).
			Until(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)).BuildDomain()
		require.NoError(t, err)
		q.EXPECT().GetBlackoutByID(ctx, db, day.ID()).Return(converter.BlackoutToInfra(day), nil)

		got, err := repo.FindByID(ctx, day.ID())

		require.NoError(t, err)
		assert.Equal(t, "Christmas", got.Title())
		require.NotNil(t, got.Recurrence())
		assert.Equal(t, blackout.FrequencyMonthly, got.Recurrence().Frequency())
		assert.Equal(t, 2, got.Recurrence().Interval())
	})

	t.Run("異常系: 行がなければ NotFound", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		id := uuid.New()
		q.EXPECT().GetBlackoutByID(ctx, db, id).Return(pgstore.BlackoutDays{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBlackoutRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 削除する", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		id := uuid.New()
		q.EXPECT().DeleteBlackout(ctx, db, id).Return(nil)

		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("異常系: 対象がなければ NotFound", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		id := uuid.New()
		q.EXPECT().DeleteBlackout(ctx, db, id).Return(pgx.ErrNoRows)

		err := repo.Delete(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBlackoutRepository_Windows(t *testing.T) {
	ctx := context.Background()
	venueID := uuid.New()
	window := interval.Closed{
		Start: time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 25, 12, 0, 0, 0, time.UTC),
	}
	matchWindow := func(t *testing.T) func(_ context.Context, _ pgstore.DBTX, arg pgstore.BlackoutWindowParams) {
		return func(_ context.Context, _ pgstore.DBTX, arg pgstore.BlackoutWindowParams) {
			assert.Equal(t, venueID, arg.VenueID)
			assert.True(t, arg.WindowStart.Time.Equal(window.Start))
			assert.True(t, arg.WindowEnd.Time.Equal(window.End))
		}
	}

	t.Run("正常系: 固定ブラックアウトに窓を渡す", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		day, err := builder.NewBlackoutBuilder().WithVenue(venueID).BuildDomain()
		require.NoError(t, err)
		q.EXPECT().ListActiveFixedBlackoutsOverlapping(ctx, db, gomock.Any()).
			Do(matchWindow(t)).
			Return([]pgstore.BlackoutDays{converter.BlackoutToInfra(day)}, nil)

		got, err := repo.FindActiveFixedOverlapping(ctx, venueID, window)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, day.ID(), got[0].ID())
	})

	t.Run("異常系: 繰り返しの検索失敗は DB 障害", func(t *testing.T) {
		repo, q, db := newBlackoutRepo(t)
		q.EXPECT().ListActiveRecurringBlackouts(ctx, db, gomock.Any()).
			Do(matchWindow(t)).
			Return(nil, errConnection)

		_, err := repo.FindActiveRecurring(ctx, venueID, window)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
