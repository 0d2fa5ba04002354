//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/memstore"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store     *memstore.Store
	clock     *clock.MockClock
	catalog   *commandsmock.MockCatalogReader
	po        *commandsmock.MockPurchaseOrderSync
	bookings  commands.BookingCommands
	ledger    commands.LedgerCommands
	blackouts commands.BlackoutCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:   memstore.New(),
		clock:   clock.NewMockClock(baseTime),
		catalog: commandsmock.NewMockCatalogReader(ctrl),
		po:      commandsmock.NewMockPurchaseOrderSync(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewTestConfig()

	f.bookings = commands.NewBookingCommands(f.store, f.catalog, f.po, pricing.NewDefaultEngine(), f.clock, logger, cfg)
	f.ledger = commands.NewLedgerCommands(f.store, f.po, f.clock, logger, cfg)
	f.blackouts = commands.NewBlackoutCommands(f.store, f.clock)
	return f
}

// allowSync accepts any number of catering syncs.
func (f *fixture) allowSync() {
	f.po.EXPECT().SyncCateringLineItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) seedBooking(t *testing.T, mutate func(*builder.BookingBuilder)) *builder.BookingBuilder {
	t.Helper()
	b := builder.NewBookingBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	domain, err := b.BuildDomain()
	require.NoError(t, err)
	f.store.PutBooking(domain)
	b.ID = domain.ID()
	return b
}
