//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Writes inside Within are discarded when the callback fails.
package memstore

import (
	"context"
	"sort"
	"sync"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/interval"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/infra"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	bookings     map[uuid.UUID]booking.Booking
	blackouts    map[uuid.UUID]blackout.BlackoutDay
	transactions map[uuid.UUID]ledger.Transaction
	order        []uuid.UUID // transaction insertion order

	LockedVenues []uuid.UUID
	Commits      int
	Rollbacks    int

	// Interleave, when set, runs once before the next booking write as if
	// another transaction had committed the returned booking first. That
	// booking survives a rollback of the current transaction.
	Interleave func(writing *booking.Booking) *booking.Booking
	concurrent []booking.Booking
}

func New() *Store {
	return &Store{
		bookings:     map[uuid.UUID]booking.Booking{},
		blackouts:    map[uuid.UUID]blackout.BlackoutDay{},
		transactions: map[uuid.UUID]ledger.Transaction{},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(snap)
		for _, b := range s.concurrent {
			s.bookings[b.ID()] = b
		}
		s.concurrent = nil
		s.Rollbacks++
		return err
	}
	s.concurrent = nil
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	err := fn(ctx, &memTx{s: s})
	s.restore(snap)
	return err
}

// Seed helpers write directly, outside any transaction.

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = *b
}

func (s *Store) PutBlackout(b *blackout.BlackoutDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blackouts[b.ID()] = *b
}

func (s *Store) PutTransaction(t *ledger.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[t.ID()]; !ok {
		s.order = append(s.order, t.ID())
	}
	s.transactions[t.ID()] = *t
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) BookingsOf(venueID uuid.UUID) []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, _ := bookingRepo{s}.ListByVenue(context.Background(), venueID, true, shared.Page{})
	return out
}

func (s *Store) Blackout(id uuid.UUID) (*blackout.BlackoutDay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blackouts[id]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) Transactions(bookingID uuid.UUID) []*ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTransactions(bookingID)
}

type snapshot struct {
	bookings     map[uuid.UUID]booking.Booking
	blackouts    map[uuid.UUID]blackout.BlackoutDay
	transactions map[uuid.UUID]ledger.Transaction
	order        []uuid.UUID
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		bookings:     make(map[uuid.UUID]booking.Booking, len(s.bookings)),
		blackouts:    make(map[uuid.UUID]blackout.BlackoutDay, len(s.blackouts)),
		transactions: make(map[uuid.UUID]ledger.Transaction, len(s.transactions)),
		order:        append([]uuid.UUID(nil), s.order...),
	}
	for k, v := range s.bookings {
		snap.bookings[k] = v
	}
	for k, v := range s.blackouts {
		snap.blackouts[k] = v
	}
	for k, v := range s.transactions {
		snap.transactions[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.bookings = snap.bookings
	s.blackouts = snap.blackouts
	s.transactions = snap.transactions
	s.order = snap.order
}

func (s *Store) listTransactions(bookingID uuid.UUID) []*ledger.Transaction {
	var out []*ledger.Transaction
	for _, id := range s.order {
		t := s.transactions[id]
		if t.BookingID() == bookingID {
			out = append(out, &t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt().Before(out[j].OccurredAt())
	})
	return out
}

type memTx struct {
	s *Store
}

func (tx *memTx) Bookings() shared.BookingRepository         { return bookingRepo{tx.s} }
func (tx *memTx) Blackouts() shared.BlackoutRepository       { return blackoutRepo{tx.s} }
func (tx *memTx) Transactions() shared.TransactionRepository { return transactionRepo{tx.s} }
func (tx *memTx) Locks() shared.LockRepository               { return lockRepo{tx.s} }

type lockRepo struct{ s *Store }

func (r lockRepo) LockVenue(_ context.Context, venueID uuid.UUID) error {
	r.s.LockedVenues = append(r.s.LockedVenues, venueID)
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking already exists")
	}
	if err := r.checkOverlap(b); err != nil {
		return err
	}
	r.s.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	if err := r.checkOverlap(b); err != nil {
		return err
	}
	r.s.bookings[b.ID()] = *b
	return nil
}

// checkOverlap mirrors the bookings_no_overlap exclusion constraint:
// active bookings of one venue may not share any instant of [start, end).
func (r bookingRepo) checkOverlap(b *booking.Booking) error {
	if hook := r.s.Interleave; hook != nil {
		r.s.Interleave = nil
		if other := hook(b); other != nil {
			r.s.concurrent = append(r.s.concurrent, *other)
			r.s.bookings[other.ID()] = *other
		}
	}
	if !b.BlocksSlot() {
		return nil
	}
	for _, other := range r.s.bookings {
		if other.ID() == b.ID() || other.VenueID() != b.VenueID() || !other.BlocksSlot() {
			continue
		}
		if other.Slot().Start().Before(b.Slot().End()) && b.Slot().Start().Before(other.Slot().End()) {
			return infra.NewRepoErr(infra.KindExclusionViolated, "bookings_no_overlap")
		}
	}
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return &b, nil
}

func (r bookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) FindActiveOverlapping(_ context.Context, venueID uuid.UUID, slot booking.TimeSlot, exclude *uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.VenueID() != venueID || !b.BlocksSlot() {
			continue
		}
		if exclude != nil && b.ID() == *exclude {
			continue
		}
		if b.Slot().Start().After(slot.End()) || b.Slot().End().Before(slot.Start()) {
			continue
		}
		b := b
		out = append(out, &b)
	}
	return sortBookings(out), nil
}

func (r bookingRepo) ListByVenue(_ context.Context, venueID uuid.UUID, includeDeleted bool, page shared.Page) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.VenueID() != venueID || (b.IsDeleted() && !includeDeleted) {
			continue
		}
		if !page.Follows(b.Slot().Start(), b.ID()) {
			continue
		}
		b := b
		out = append(out, &b)
	}
	return limit(sortBookings(out), page.Limit), nil
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func sortBookings(bs []*booking.Booking) []*booking.Booking {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].Slot().Start().Equal(bs[j].Slot().Start()) {
			return bs[i].Slot().Start().Before(bs[j].Slot().Start())
		}
		return bs[i].ID().String() < bs[j].ID().String()
	})
	return bs
}

type blackoutRepo struct{ s *Store }

func (r blackoutRepo) Create(_ context.Context, b *blackout.BlackoutDay) error {
	r.s.blackouts[b.ID()] = *b
	return nil
}

func (r blackoutRepo) Update(_ context.Context, b *blackout.BlackoutDay) error {
	if _, ok := r.s.blackouts[b.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "blackout not found")
	}
	r.s.blackouts[b.ID()] = *b
	return nil
}

func (r blackoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.blackouts[id]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "blackout not found")
	}
	delete(r.s.blackouts, id)
	return nil
}

func (r blackoutRepo) FindByID(_ context.Context, id uuid.UUID) (*blackout.BlackoutDay, error) {
	b, ok := r.s.blackouts[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "blackout not found")
	}
	return &b, nil
}

func (r blackoutRepo) FindActiveFixedOverlapping(_ context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error) {
	return r.filter(venueID, func(b blackout.BlackoutDay) bool {
		return !b.IsRecurring() &&
			!b.StartDate().After(window.End) &&
			!b.EndDate().Before(window.Start)
	}), nil
}

func (r blackoutRepo) FindActiveRecurring(_ context.Context, venueID uuid.UUID, window interval.Closed) ([]*blackout.BlackoutDay, error) {
	return r.filter(venueID, func(b blackout.BlackoutDay) bool {
		return b.IsRecurring() && !b.StartDate().After(window.End)
	}), nil
}

func (r blackoutRepo) ListByVenue(_ context.Context, venueID uuid.UUID) ([]*blackout.BlackoutDay, error) {
	var out []*blackout.BlackoutDay
	for _, b := range r.s.blackouts {
		if b.VenueID() == venueID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate().Before(out[j].StartDate()) })
	return out, nil
}

func (r blackoutRepo) filter(venueID uuid.UUID, keep func(blackout.BlackoutDay) bool) []*blackout.BlackoutDay {
	var out []*blackout.BlackoutDay
	for _, b := range r.s.blackouts {
		if b.VenueID() != venueID || !b.IsActive() || !keep(b) {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate().Before(out[j].StartDate()) })
	return out
}

type transactionRepo struct{ s *Store }

func (r transactionRepo) Append(_ context.Context, t *ledger.Transaction) error {
	if _, ok := r.s.bookings[t.BookingID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "booking does not exist")
	}
	if key := t.IdempotencyKey(); key != nil {
		for _, existing := range r.s.transactions {
			if existing.BookingID() == t.BookingID() && existing.IdempotencyKey() != nil && *existing.IdempotencyKey() == *key {
				return infra.NewRepoErr(infra.KindDuplicateKey, "idempotency key already used")
			}
		}
	}
	r.s.transactions[t.ID()] = *t
	r.s.order = append(r.s.order, t.ID())
	return nil
}

func (r transactionRepo) Update(_ context.Context, t *ledger.Transaction) error {
	if _, ok := r.s.transactions[t.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "transaction not found")
	}
	r.s.transactions[t.ID()] = *t
	return nil
}

func (r transactionRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "transaction not found")
	}
	return &t, nil
}

func (r transactionRepo) FindByIdempotencyKey(_ context.Context, bookingID uuid.UUID, key string) (*ledger.Transaction, error) {
	for _, id := range r.s.order {
		t := r.s.transactions[id]
		if t.BookingID() == bookingID && t.IdempotencyKey() != nil && *t.IdempotencyKey() == key {
			return &t, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "transaction not found")
}

func (r transactionRepo) ListByBooking(_ context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error) {
	return r.s.listTransactions(bookingID), nil
}

func (r transactionRepo) ListPageByBooking(_ context.Context, bookingID uuid.UUID, page shared.Page) ([]*ledger.Transaction, error) {
	var out []*ledger.Transaction
	for _, t := range r.s.listTransactions(bookingID) {
		if page.Follows(t.OccurredAt(), t.ID()) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].OccurredAt().Equal(out[j].OccurredAt()) {
			return out[i].OccurredAt().Before(out[j].OccurredAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return limit(out, page.Limit), nil
}
