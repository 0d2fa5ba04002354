package ledger

import (
	"venue-booking/internal/domain/money"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reconcile sums every settled inbound row of bookingID from scratch.
// Callers pass the complete ledger of the booking; the result replaces the
// booking's advance amount.
func Reconcile(bookingID uuid.UUID, txs []*Transaction) (money.Money, error) {
	sum := money.Zero()
	for _, t := range txs {
		if t.bookingID != bookingID {
			return money.Zero(), errs.Wrapf(ErrForeignTransaction, "transaction %s", t.id)
		}
		switch t.flow.(type) {
		case Inbound:
			if !t.status.Settled() {
				continue
			}
			if !t.amount.IsPositive() {
				return money.Zero(), errs.Wrapf(ErrCorruptAmount, "transaction %s", t.id)
			}
			var ok bool
			if sum, ok = sum.AddChecked(t.amount); !ok {
				return money.Zero(), errs.Wrapf(ErrSumOverflow, "booking %s", bookingID)
			}
		case Outbound:
		default:
			return money.Zero(), errs.Wrapf(ErrInvalidDirection, "transaction %s", t.id)
		}
	}
	return sum, nil
}

// SettledBefore is the running inbound total used to classify a new payment.
func SettledBefore(bookingID uuid.UUID, txs []*Transaction) (money.Money, error) {
	return Reconcile(bookingID, txs)
}
