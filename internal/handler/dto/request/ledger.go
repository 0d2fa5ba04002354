package request

import (
	"time"

	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type AppendTransactionRequest struct {
	Amount          int64      `json:"amount" binding:"required,gt=0"`
	Mode            string     `json:"mode" binding:"required,max=50"`
	Direction       string     `json:"direction" binding:"required,oneof=inbound outbound"`
	Status          string     `json:"status" binding:"omitempty,oneof=success failed pending"`
	Notes           string     `json:"notes" binding:"max=2000"`
	VendorID        *uuid.UUID `json:"vendor_id"`
	PurchaseOrderID *uuid.UUID `json:"purchase_order_id"`
	OccurredAt      *time.Time `json:"occurred_at"`
}

type UpdateTransactionRequest struct {
	Amount *int64  `json:"amount" binding:"omitempty,gt=0"`
	Mode   *string `json:"mode" binding:"omitempty,max=50"`
	Status *string `json:"status" binding:"omitempty,oneof=success failed pending"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

// ToCommand defaults a missing status to success.
func (r *AppendTransactionRequest) ToCommand(bookingID uuid.UUID, idempotencyKey string) commands.AppendTransactionRequest {
	status := ledger.StatusSuccess
	if r.Status != "" {
		status = ledger.Status(r.Status)
	}
	cmd := commands.AppendTransactionRequest{
		BookingID:       bookingID,
		Amount:          money.New(r.Amount),
		Mode:            r.Mode,
		Direction:       ledger.Direction(r.Direction),
		Status:          status,
		Notes:           r.Notes,
		VendorID:        r.VendorID,
		PurchaseOrderID: r.PurchaseOrderID,
		OccurredAt:      r.OccurredAt,
	}
	if idempotencyKey != "" {
		cmd.IdempotencyKey = &idempotencyKey
	}
	return cmd
}

func (r *UpdateTransactionRequest) ToPatch() ledger.Patch {
	p := ledger.Patch{
		Amount: moneyPtr(r.Amount),
		Mode:   r.Mode,
		Notes:  r.Notes,
	}
	if r.Status != nil {
		s := ledger.Status(*r.Status)
		p.Status = &s
	}
	return p
}
