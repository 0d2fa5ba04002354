package booking

import (
	"venue-booking/internal/domain/money"
	"venue-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound   = errs.NotFound("booking not found")
	ErrInvalidGuestCount = errs.Validation("guest count must be at least 1")
	ErrInvalidTransition = errs.Validation("booking status transition is not allowed")
	ErrBookingCancelled  = errs.Validation("booking is cancelled")
	ErrNotDeleted        = errs.Validation("booking is not deleted")
	ErrAdvanceDecrease   = errs.Validation("advance amount cannot be reduced here; record a correction on the ledger")
	ErrNegativeAmount    = errs.Validation("amount cannot be negative")
)

// Conflict reasons.
const (
	ReasonSlotUnavailable  = "slot overlaps an existing booking"
	ReasonBlackoutConflict = "slot overlaps a venue blackout"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// DerivePaymentStatus is the only way a payment status is produced.
func DerivePaymentStatus(advance, total money.Money) PaymentStatus {
	switch {
	case !advance.IsPositive():
		return PaymentUnpaid
	case advance.GreaterOrEqual(total):
		return PaymentPaid
	default:
		return PaymentPartiallyPaid
	}
}

type Payment struct {
	TotalAmount   money.Money
	AdvanceAmount money.Money
	Status        PaymentStatus
	Mode          string
}

func newPayment(total, advance money.Money, mode string) Payment {
	return Payment{
		TotalAmount:   total,
		AdvanceAmount: advance,
		Status:        DerivePaymentStatus(advance, total),
		Mode:          mode,
	}
}

// Balance is what remains to be paid; never negative.
func (p Payment) Balance() money.Money {
	b := p.TotalAmount.Sub(p.AdvanceAmount)
	if b.IsNegative() {
		return money.Zero()
	}
	return b
}
