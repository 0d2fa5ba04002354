package ledger

import (
	"venue-booking/internal/domain/money"

	"github.com/google/uuid"
)

// Flow is the direction-specific part of a transaction. Only Inbound and
// Outbound implement it.
type Flow interface {
	Direction() Direction
	Type() Type
	sealed()
}

// Inbound is a customer payment towards the booking total.
type Inbound struct {
	kind Type
}

func (Inbound) Direction() Direction { return DirectionInbound }
func (i Inbound) Type() Type         { return i.kind }
func (Inbound) sealed()              {}

// Outbound pays a vendor and never touches the booking's own payment fields.
type Outbound struct {
	VendorID        *uuid.UUID
	PurchaseOrderID *uuid.UUID
}

func (Outbound) Direction() Direction { return DirectionOutbound }
func (Outbound) Type() Type           { return TypeVendorPayment }
func (Outbound) sealed()              {}

// Classify derives the inbound type from the settled total before this
// payment. A first payment that already reaches the total is full.
func Classify(settledBefore, amount, total money.Money) Type {
	after := settledBefore.Add(amount)
	switch {
	case after.GreaterOrEqual(total):
		return TypeFull
	case settledBefore.IsZero():
		return TypeAdvance
	default:
		return TypePartial
	}
}

// RestoreFlow rebuilds a flow from its stored columns.
func RestoreFlow(direction Direction, typ Type, vendorID, purchaseOrderID *uuid.UUID) (Flow, error) {
	switch direction {
	case DirectionInbound:
		switch typ {
		case TypeAdvance, TypePartial, TypeFull:
			return Inbound{kind: typ}, nil
		}
		return nil, ErrInvalidDirection
	case DirectionOutbound:
		return Outbound{VendorID: vendorID, PurchaseOrderID: purchaseOrderID}, nil
	default:
		return nil, ErrInvalidDirection
	}
}
