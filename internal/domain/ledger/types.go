package ledger

import "venue-booking/internal/pkg/errs"

var (
	ErrNonPositiveAmount   = errs.Validation("transaction amount must be greater than zero")
	ErrInvalidStatus       = errs.Validation("transaction status must be success, failed or pending")
	ErrInvalidDirection    = errs.Validation("transaction direction must be inbound or outbound")
	ErrMissingMode         = errs.Validation("payment mode is required")
	ErrTransactionNotFound = errs.NotFound("transaction not found")
	ErrForeignTransaction  = errs.ReconciliationInvariant("ledger contains a transaction of another booking")
	ErrCorruptAmount       = errs.ReconciliationInvariant("ledger contains a settled row with a non-positive amount")
	ErrSumOverflow         = errs.ReconciliationInvariant("ledger sum exceeds the supported range")
)

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

func (d Direction) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

type Type string

const (
	TypeAdvance       Type = "advance"
	TypePartial       Type = "partial"
	TypeFull          Type = "full"
	TypeVendorPayment Type = "vendor_payment"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusPending:
		return true
	default:
		return false
	}
}

func (s Status) Settled() bool {
	return s == StatusSuccess
}
