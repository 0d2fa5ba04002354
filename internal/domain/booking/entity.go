package booking

import (
	"slices"
	"strings"
	"time"

	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	venueID       uuid.UUID
	leadID        *uuid.UUID
	guestCount    int
	slot          TimeSlot
	status        Status
	foodPackage   pricing.FoodPackage
	services      []pricing.Service
	foodCostTotal money.Money
	payment       Payment
	notes         string
	isDeleted     bool
	deletedAt     *time.Time
	confirmedAt   *time.Time
	cancelledAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type NewParams struct {
	VenueID     uuid.UUID
	LeadID      *uuid.UUID
	GuestCount  int
	Slot        TimeSlot
	PaymentMode string
	Notes       string
}

// NewBooking starts a pending, unpaid booking priced by quote. An initial
// advance is recorded through the ledger afterwards, never here.
func NewBooking(p NewParams, quote pricing.Quote, now time.Time) (*Booking, error) {
	if p.GuestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if p.VenueID == uuid.Nil {
		return nil, errs.Validation("venue id is required")
	}
	return &Booking{
		id:            uuid.New(),
		venueID:       p.VenueID,
		leadID:        p.LeadID,
		guestCount:    p.GuestCount,
		slot:          p.Slot,
		status:        StatusPending,
		foodPackage:   quote.Package,
		services:      slices.Clone(quote.Services),
		foodCostTotal: quote.Totals.FoodCostTotal,
		payment:       newPayment(quote.Totals.TotalAmount, money.Zero(), strings.TrimSpace(p.PaymentMode)),
		notes:         strings.TrimSpace(p.Notes),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Snapshot carries persisted state back into the aggregate.
type Snapshot struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	LeadID        *uuid.UUID
	GuestCount    int
	Slot          TimeSlot
	Status        Status
	FoodPackage   pricing.FoodPackage
	Services      []pricing.Service
	FoodCostTotal money.Money
	TotalAmount   money.Money
	AdvanceAmount money.Money
	PaymentMode   string
	Notes         string
	IsDeleted     bool
	DeletedAt     *time.Time
	ConfirmedAt   *time.Time
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:            s.ID,
		venueID:       s.VenueID,
		leadID:        s.LeadID,
		guestCount:    s.GuestCount,
		slot:          s.Slot,
		status:        s.Status,
		foodPackage:   s.FoodPackage,
		services:      s.Services,
		foodCostTotal: s.FoodCostTotal,
		payment:       newPayment(s.TotalAmount, s.AdvanceAmount, s.PaymentMode),
		notes:         s.Notes,
		isDeleted:     s.IsDeleted,
		deletedAt:     s.DeletedAt,
		confirmedAt:   s.ConfirmedAt,
		cancelledAt:   s.CancelledAt,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (b *Booking) ensureMutable() error {
	if b.isDeleted {
		return ErrBookingNotFound
	}
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	return nil
}

func (b *Booking) Reschedule(slot TimeSlot, now time.Time) error {
	if err := b.ensureMutable(); err != nil {
		return err
	}
	b.slot = slot
	b.updatedAt = now
	return nil
}

// ApplyQuote replaces the priced configuration. The advance is kept and the
// payment status is re-derived against the new total.
func (b *Booking) ApplyQuote(guestCount int, quote pricing.Quote, now time.Time) error {
	if err := b.ensureMutable(); err != nil {
		return err
	}
	if guestCount < 1 {
		return ErrInvalidGuestCount
	}
	b.guestCount = guestCount
	b.foodPackage = quote.Package
	b.services = slices.Clone(quote.Services)
	b.foodCostTotal = quote.Totals.FoodCostTotal
	b.payment = newPayment(quote.Totals.TotalAmount, b.payment.AdvanceAmount, b.payment.Mode)
	b.updatedAt = now
	return nil
}

func (b *Booking) UpdateNotes(notes string, now time.Time) error {
	if b.isDeleted {
		return ErrBookingNotFound
	}
	b.notes = strings.TrimSpace(notes)
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	if b.isDeleted {
		return ErrBookingNotFound
	}
	if b.status != StatusPending {
		return errs.Wrapf(ErrInvalidTransition, "cannot confirm a %s booking", b.status)
	}
	b.status = StatusConfirmed
	b.confirmedAt = &now
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.isDeleted {
		return ErrBookingNotFound
	}
	if b.status == StatusCancelled {
		return errs.Wrap(ErrInvalidTransition, "booking is already cancelled")
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

// SoftDelete only flips the flag; ledger rows and purchase orders stay.
func (b *Booking) SoftDelete(now time.Time) error {
	if b.isDeleted {
		return ErrBookingNotFound
	}
	b.isDeleted = true
	b.deletedAt = &now
	b.updatedAt = now
	return nil
}

func (b *Booking) Restore(now time.Time) error {
	if !b.isDeleted {
		return ErrNotDeleted
	}
	b.isDeleted = false
	b.deletedAt = nil
	b.updatedAt = now
	return nil
}

// ApplyLedgerTotals writes back the reconciled sum of settled inbound rows.
func (b *Booking) ApplyLedgerTotals(advance money.Money, now time.Time) {
	b.payment = newPayment(b.payment.TotalAmount, advance, b.payment.Mode)
	b.updatedAt = now
}

func (b *Booking) SetPaymentMode(mode string, now time.Time) {
	mode = strings.TrimSpace(mode)
	if mode == "" || mode == b.payment.Mode {
		return
	}
	b.payment.Mode = mode
	b.updatedAt = now
}

// AdvanceDelta turns a target advance into the amount still to be recorded.
// A target below the current advance is refused.
func (b *Booking) AdvanceDelta(target money.Money) (money.Money, error) {
	if target.IsNegative() {
		return money.Zero(), ErrNegativeAmount
	}
	delta := target.Sub(b.payment.AdvanceAmount)
	if delta.IsNegative() {
		return money.Zero(), ErrAdvanceDecrease
	}
	return delta, nil
}

// BlocksSlot reports whether this booking occupies a range other bookings
// must not overlap.
func (b *Booking) BlocksSlot() bool {
	return !b.isDeleted && b.status != StatusCancelled
}

func (b *Booking) ConflictItem() errs.ConflictItem {
	return errs.ConflictItem{
		Kind:  "booking",
		ID:    b.id.String(),
		Range: b.slot.String(),
	}
}

func (b *Booking) ServicesTotal() money.Money {
	return b.payment.TotalAmount.Sub(b.foodCostTotal)
}

func (b *Booking) Services() []pricing.Service {
	return slices.Clone(b.services)
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) VenueID() uuid.UUID               { return b.venueID }
func (b *Booking) LeadID() *uuid.UUID               { return b.leadID }
func (b *Booking) GuestCount() int                  { return b.guestCount }
func (b *Booking) Slot() TimeSlot                   { return b.slot }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) FoodPackage() pricing.FoodPackage { return b.foodPackage }
func (b *Booking) FoodCostTotal() money.Money       { return b.foodCostTotal }
func (b *Booking) Payment() Payment                 { return b.payment }
func (b *Booking) Notes() string                    { return b.notes }
func (b *Booking) IsDeleted() bool                  { return b.isDeleted }
func (b *Booking) DeletedAt() *time.Time            { return b.deletedAt }
func (b *Booking) ConfirmedAt() *time.Time          { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time          { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
