package response

import (
	"venue-booking/internal/usecase/queries"
)

type TransactionResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"booking_id"`
	Direction       string  `json:"direction"`
	Type            string  `json:"type"`
	Amount          int64   `json:"amount"`
	Mode            string  `json:"mode"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
	VendorID        *string `json:"vendor_id,omitempty"`
	PurchaseOrderID *string `json:"purchase_order_id,omitempty"`
	IdempotencyKey  *string `json:"idempotency_key,omitempty"`
	OccurredAt      string  `json:"occurred_at"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

type LedgerResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Booking     *BookingResponse     `json:"booking"`
	Replayed    bool                 `json:"replayed"`
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	res := &TransactionResponse{}
	copyInto(res, v)
	return res
}

func FromTransactionViews(views []*queries.TransactionView) []*TransactionResponse {
	res := make([]*TransactionResponse, len(views))
	for i, v := range views {
		res[i] = FromTransactionView(v)
	}
	return res
}

func FromTransactionPage(views []*queries.TransactionView, next *queries.Cursor) *TransactionListResponse {
	res := &TransactionListResponse{Transactions: FromTransactionViews(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
