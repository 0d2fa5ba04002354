package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppendTransactionRequest struct {
	BookingID       uuid.UUID
	Amount          money.Money
	Mode            string
	Direction       ledger.Direction
	Status          ledger.Status
	Notes           string
	VendorID        *uuid.UUID
	PurchaseOrderID *uuid.UUID
	IdempotencyKey  *string
	OccurredAt      *time.Time
}

type LedgerResult struct {
	Transaction *ledger.Transaction
	Booking     *booking.Booking
	Replayed    bool
}

type LedgerCommands interface {
	AppendTransaction(ctx context.Context, req AppendTransactionRequest) (*LedgerResult, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch ledger.Patch) (*LedgerResult, error)
}

type ledgerCommandsImpl struct {
	uow    shared.UnitOfWork
	po     poNotifier
	clock  clock.Clock
	logger *slog.Logger
}

func NewLedgerCommands(uow shared.UnitOfWork, po PurchaseOrderSync, clk clock.Clock, logger *slog.Logger, cfg config.Config) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:    uow,
		po:     poNotifier{sync: po, timeout: cfg.PurchaseOrder.Timeout, logger: logger},
		clock:  clk,
		logger: logger,
	}
}

// AppendTransaction records a row under the booking's row lock. Settled
// inbound rows trigger a full reconciliation; outbound rows leave the
// booking's payment alone and are forwarded to the purchase order.
func (uc *ledgerCommandsImpl) AppendTransaction(ctx context.Context, req AppendTransactionRequest) (*LedgerResult, error) {
	if !req.Direction.IsValid() {
		return nil, ledger.ErrInvalidDirection
	}
	var result LedgerResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, req.BookingID)
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "append transaction to booking", req.BookingID)
		}
		if b.IsDeleted() {
			return errs.Wrapf(booking.ErrBookingNotFound, "append transaction to booking %s", req.BookingID)
		}

		hash := req.fingerprint()
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			prior, ferr := findByKey(ctx, tx, req.BookingID, *req.IdempotencyKey, hash)
			if ferr != nil {
				return ferr
			}
			if prior != nil {
				result = LedgerResult{Transaction: prior, Booking: b, Replayed: true}
				return nil
			}
		}

		now := uc.clock.Now()
		entry := ledger.Entry{
			BookingID:      req.BookingID,
			Amount:         req.Amount,
			Mode:           req.Mode,
			Status:         req.Status,
			Notes:          req.Notes,
			IdempotencyKey: req.IdempotencyKey,
			RequestHash:    hash,
		}
		if req.OccurredAt != nil {
			entry.OccurredAt = *req.OccurredAt
		}

		switch req.Direction {
		case ledger.DirectionInbound:
			t, _, ierr := recordInbound(ctx, tx, b, entry, now)
			if ierr != nil {
				return ierr
			}
			result = LedgerResult{Transaction: t, Booking: b}
		case ledger.DirectionOutbound:
			t, oerr := ledger.NewOutbound(entry, req.VendorID, req.PurchaseOrderID, now)
			if oerr != nil {
				return oerr
			}
			if oerr = tx.Transactions().Append(ctx, t); oerr != nil {
				return translate(oerr, nil, "append transaction to booking", req.BookingID)
			}
			result = LedgerResult{Transaction: t, Booking: b}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		uc.logger.InfoContext(ctx, "transaction recorded",
			"booking_id", req.BookingID.String(),
			"transaction_id", result.Transaction.ID().String(),
			"type", string(result.Transaction.Type()),
			"advance_amount", result.Booking.Payment().AdvanceAmount.Minor())
		uc.po.vendorPayment(ctx, result.Transaction)
	}
	return &result, nil
}

// UpdateTransaction corrects one row in place and recomputes the booking's
// advance from every settled inbound row, never by applying a delta.
func (uc *ledgerCommandsImpl) UpdateTransaction(ctx context.Context, id uuid.UUID, patch ledger.Patch) (*LedgerResult, error) {
	var result LedgerResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, derr := tx.Transactions().FindByID(ctx, id)
		if derr != nil {
			return translate(derr, ledger.ErrTransactionNotFound, "update transaction", id)
		}
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, t.BookingID())
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "update transaction of booking", t.BookingID())
		}
		if b.IsDeleted() {
			return errs.Wrapf(booking.ErrBookingNotFound, "update transaction of booking %s", t.BookingID())
		}
		// Re-read under the booking lock so a concurrent correction is not lost.
		if t, derr = tx.Transactions().FindByID(ctx, id); derr != nil {
			return translate(derr, ledger.ErrTransactionNotFound, "update transaction", id)
		}

		now := uc.clock.Now()
		if derr = t.Apply(patch, now); derr != nil {
			return derr
		}
		if derr = tx.Transactions().Update(ctx, t); derr != nil {
			return translate(derr, ledger.ErrTransactionNotFound, "update transaction", id)
		}
		if derr = reconcile(ctx, tx, b, now); derr != nil {
			return derr
		}
		result = LedgerResult{Transaction: t, Booking: b}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Transaction.Direction() == ledger.DirectionOutbound {
		uc.po.vendorPayment(ctx, result.Transaction)
	}
	return &result, nil
}

// recordInbound classifies, appends and reconciles inside the caller's
// transaction. The booking row must already be locked.
func recordInbound(ctx context.Context, tx shared.Tx, b *booking.Booking, e ledger.Entry, now time.Time) (*ledger.Transaction, money.Money, error) {
	existing, err := tx.Transactions().ListByBooking(ctx, b.ID())
	if err != nil {
		return nil, money.Zero(), errs.Wrapf(err, "list transactions of booking %s", b.ID())
	}
	before, err := ledger.SettledBefore(b.ID(), existing)
	if err != nil {
		return nil, money.Zero(), err
	}
	t, err := ledger.NewInbound(e, before, b.Payment().TotalAmount, now)
	if err != nil {
		return nil, money.Zero(), err
	}
	if err = tx.Transactions().Append(ctx, t); err != nil {
		return nil, money.Zero(), translate(err, nil, "append transaction to booking", b.ID())
	}

	advance, err := ledger.Reconcile(b.ID(), append(existing, t))
	if err != nil {
		return nil, money.Zero(), err
	}
	b.ApplyLedgerTotals(advance, now)
	if err = tx.Bookings().Update(ctx, b); err != nil {
		return nil, money.Zero(), translate(err, booking.ErrBookingNotFound, "reconcile booking", b.ID())
	}
	return t, advance, nil
}

func reconcile(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	all, err := tx.Transactions().ListByBooking(ctx, b.ID())
	if err != nil {
		return errs.Wrapf(err, "list transactions of booking %s", b.ID())
	}
	advance, err := ledger.Reconcile(b.ID(), all)
	if err != nil {
		return err
	}
	b.ApplyLedgerTotals(advance, now)
	if err = tx.Bookings().Update(ctx, b); err != nil {
		return translate(err, booking.ErrBookingNotFound, "reconcile booking", b.ID())
	}
	return nil
}

// findByKey returns the row already recorded under key, or nil when the key
// is new. A key reused for a request with another fingerprint is a conflict.
func findByKey(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, key, hash string) (*ledger.Transaction, error) {
	t, err := tx.Transactions().FindByIdempotencyKey(ctx, bookingID, strings.TrimSpace(key))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrapf(err, "find transaction by idempotency key for booking %s", bookingID)
	}
	if !t.MatchesRequest(hash) {
		return nil, errs.NewConflict("idempotency key was already used for a different request", errs.ConflictItem{
			Kind:  "transaction",
			ID:    t.ID().String(),
			Title: "Idempotency-Key " + strings.TrimSpace(key),
			Range: t.OccurredAt().UTC().Format(time.RFC3339),
		})
	}
	return t, nil
}

func (r AppendTransactionRequest) fingerprint() string {
	return requestHash("transaction",
		string(r.Direction),
		strconv.FormatInt(r.Amount.Minor(), 10),
		string(r.Status),
		strings.TrimSpace(r.Mode),
		uuidOrEmpty(r.VendorID),
		uuidOrEmpty(r.PurchaseOrderID))
}

func requestHash(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(hash[:])
}

func uuidOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
