package ledger

import (
	"strings"
	"time"

	"venue-booking/internal/domain/money"

	"github.com/google/uuid"
)

type Transaction struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	flow           Flow
	amount         money.Money
	mode           string
	status         Status
	notes          string
	idempotencyKey *string
	requestHash    string
	occurredAt     time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type Entry struct {
	BookingID      uuid.UUID
	Amount         money.Money
	Mode           string
	Status         Status
	Notes          string
	IdempotencyKey *string
	// RequestHash fingerprints the request that carried IdempotencyKey.
	RequestHash string
	OccurredAt  time.Time
}

func (e Entry) validate() error {
	if !e.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if strings.TrimSpace(e.Mode) == "" {
		return ErrMissingMode
	}
	if !e.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// NewInbound classifies the payment against what was settled before it.
func NewInbound(e Entry, settledBefore, total money.Money, now time.Time) (*Transaction, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return newTransaction(e, Inbound{kind: Classify(settledBefore, e.Amount, total)}, now), nil
}

func NewOutbound(e Entry, vendorID, purchaseOrderID *uuid.UUID, now time.Time) (*Transaction, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return newTransaction(e, Outbound{VendorID: vendorID, PurchaseOrderID: purchaseOrderID}, now), nil
}

func newTransaction(e Entry, flow Flow, now time.Time) *Transaction {
	occurred := e.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}
	var key *string
	var hash string
	if e.IdempotencyKey != nil && strings.TrimSpace(*e.IdempotencyKey) != "" {
		k := strings.TrimSpace(*e.IdempotencyKey)
		key = &k
		hash = e.RequestHash
	}
	return &Transaction{
		id:             uuid.New(),
		bookingID:      e.BookingID,
		flow:           flow,
		amount:         e.Amount,
		mode:           strings.TrimSpace(e.Mode),
		status:         e.Status,
		notes:          strings.TrimSpace(e.Notes),
		idempotencyKey: key,
		requestHash:    hash,
		occurredAt:     occurred,
		createdAt:      now,
		updatedAt:      now,
	}
}

func Reconstruct(
	id, bookingID uuid.UUID,
	flow Flow,
	amount money.Money,
	mode string,
	status Status,
	notes string,
	idempotencyKey *string,
	requestHash string,
	occurredAt, createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:             id,
		bookingID:      bookingID,
		flow:           flow,
		amount:         amount,
		mode:           mode,
		status:         status,
		notes:          notes,
		idempotencyKey: idempotencyKey,
		requestHash:    requestHash,
		occurredAt:     occurredAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Patch corrects a recorded row. Nil fields are left alone.
type Patch struct {
	Amount *money.Money
	Mode   *string
	Status *Status
	Notes  *string
}

func (t *Transaction) Apply(p Patch, now time.Time) error {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if p.Status != nil && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	if p.Mode != nil && strings.TrimSpace(*p.Mode) == "" {
		return ErrMissingMode
	}
	if p.Amount != nil {
		t.amount = *p.Amount
	}
	if p.Mode != nil {
		t.mode = strings.TrimSpace(*p.Mode)
	}
	if p.Status != nil {
		t.status = *p.Status
	}
	if p.Notes != nil {
		t.notes = strings.TrimSpace(*p.Notes)
	}
	t.updatedAt = now
	return nil
}

// MatchesRequest reports whether a keyed row was recorded for the request
// with the given fingerprint. Rows stored without a fingerprint match any.
func (t *Transaction) MatchesRequest(hash string) bool {
	return t.requestHash == "" || t.requestHash == hash
}

func (t *Transaction) IsSettledInbound() bool {
	_, inbound := t.flow.(Inbound)
	return inbound && t.status.Settled()
}

// PurchaseOrderID is set only for outbound rows linked to a purchase order.
func (t *Transaction) PurchaseOrderID() *uuid.UUID {
	if o, ok := t.flow.(Outbound); ok {
		return o.PurchaseOrderID
	}
	return nil
}

func (t *Transaction) VendorID() *uuid.UUID {
	if o, ok := t.flow.(Outbound); ok {
		return o.VendorID
	}
	return nil
}

func (t *Transaction) ID() uuid.UUID           { return t.id }
func (t *Transaction) BookingID() uuid.UUID    { return t.bookingID }
func (t *Transaction) Flow() Flow              { return t.flow }
func (t *Transaction) Direction() Direction    { return t.flow.Direction() }
func (t *Transaction) Type() Type              { return t.flow.Type() }
func (t *Transaction) Amount() money.Money     { return t.amount }
func (t *Transaction) Mode() string            { return t.mode }
func (t *Transaction) Status() Status          { return t.status }
func (t *Transaction) Notes() string           { return t.notes }
func (t *Transaction) IdempotencyKey() *string { return t.idempotencyKey }
func (t *Transaction) RequestHash() string      { return t.requestHash }
func (t *Transaction) OccurredAt() time.Time   { return t.occurredAt }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time    { return t.updatedAt }
