package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/availability"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VenueID     uuid.UUID
	LeadID      *uuid.UUID
	GuestCount  int
	Start       time.Time
	End         time.Time
	FoodPackage pricing.Selection
	Services    []pricing.Service
	PaymentMode string
	Notes       string
	// AdvanceAmount, when positive, is recorded as the first ledger entry.
	AdvanceAmount money.Money
}

// UpdateBookingRequest: nil fields are left unchanged.
type UpdateBookingRequest struct {
	GuestCount  *int
	Start       *time.Time
	End         *time.Time
	FoodPackage *pricing.Selection
	Services    *[]pricing.Service
	Notes       *string
	PaymentMode *string
}

func (r UpdateBookingRequest) repricing() bool {
	return r.GuestCount != nil || r.FoodPackage != nil || r.Services != nil
}

type UpdatePaymentRequest struct {
	AdvanceAmount  money.Money
	PaymentMode    string
	IdempotencyKey *string
}

func (r UpdatePaymentRequest) fingerprint() string {
	return requestHash("payment", strconv.FormatInt(r.AdvanceAmount.Minor(), 10), strings.TrimSpace(r.PaymentMode))
}

type PaymentResult struct {
	Booking     *booking.Booking
	Transaction *ledger.Transaction // nil when nothing new was recorded
	Replayed    bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*booking.Booking, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	RestoreBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*PaymentResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog CatalogReader
	engine  pricing.Engine
	po      poNotifier
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog CatalogReader,
	po PurchaseOrderSync,
	engine pricing.Engine,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		catalog: catalog,
		engine:  engine,
		po:      poNotifier{sync: po, timeout: cfg.PurchaseOrder.Timeout, logger: logger},
		clock:   clk,
		logger:  logger,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if req.AdvanceAmount.IsNegative() {
		return nil, booking.ErrNegativeAmount
	}
	pkg, err := uc.resolvePackage(ctx, req.VenueID, req.FoodPackage)
	if err != nil {
		return nil, err
	}
	quote, err := uc.quote(pkg, req.GuestCount, req.Services)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if lerr := tx.Locks().LockVenue(ctx, req.VenueID); lerr != nil {
			return errs.Wrapf(lerr, "lock venue %s", req.VenueID)
		}
		if cerr := availability.EnsureBookable(ctx, tx, req.VenueID, slot, nil); cerr != nil {
			return cerr
		}

		now := uc.clock.Now()
		b, derr := booking.NewBooking(booking.NewParams{
			VenueID:     req.VenueID,
			LeadID:      req.LeadID,
			GuestCount:  req.GuestCount,
			Slot:        slot,
			PaymentMode: req.PaymentMode,
			Notes:       req.Notes,
		}, quote, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return translate(derr, nil, "create booking", b.ID())
		}

		if req.AdvanceAmount.IsPositive() {
			if _, _, derr = recordInbound(ctx, tx, b, ledger.Entry{
				BookingID: b.ID(),
				Amount:    req.AdvanceAmount,
				Mode:      req.PaymentMode,
				Status:    ledger.StatusSuccess,
				Notes:     "advance at booking",
			}, now); derr != nil {
				return derr
			}
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, slotConflict(ctx, uc.uow, err, req.VenueID, slot, nil)
	}

	uc.logger.InfoContext(ctx, "booking created",
		"booking_id", created.ID().String(),
		"venue_id", created.VenueID().String(),
		"total_amount", created.Payment().TotalAmount.Minor())
	uc.po.syncCatering(ctx, created)
	return created, nil
}

func (uc *bookingCommandsImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*booking.Booking, error) {
	// The package template lives in another store; fetch it before opening
	// the write transaction so the row lock is not held across that call.
	var pkg *pricing.FoodPackage
	if req.FoodPackage != nil {
		current, err := uc.load(ctx, id)
		if err != nil {
			return nil, err
		}
		resolved, err := uc.resolvePackage(ctx, current.VenueID(), *req.FoodPackage)
		if err != nil {
			return nil, err
		}
		pkg = &resolved
	}

	var (
		updated      *booking.Booking
		guestChanged bool
		moved        *booking.TimeSlot
		venueID      uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "update booking", id)
		}
		if b.IsDeleted() {
			return errs.Wrapf(booking.ErrBookingNotFound, "update booking %s", id)
		}
		now := uc.clock.Now()

		if req.Start != nil || req.End != nil {
			start, end := b.Slot().Start(), b.Slot().End()
			if req.Start != nil {
				start = *req.Start
			}
			if req.End != nil {
				end = *req.End
			}
			slot, serr := booking.NewTimeSlot(start, end)
			if serr != nil {
				return serr
			}
			if !slot.Equal(b.Slot()) {
				moved, venueID = &slot, b.VenueID()
				if serr = uc.reschedule(ctx, tx, b, slot, now); serr != nil {
					return serr
				}
			}
		}

		if req.repricing() {
			guests := b.GuestCount()
			if req.GuestCount != nil {
				guests = *req.GuestCount
			}
			food := b.FoodPackage()
			if pkg != nil {
				food = *pkg
			}
			services := b.Services()
			if req.Services != nil {
				services = *req.Services
			}
			quote, qerr := uc.quote(food, guests, services)
			if qerr != nil {
				return qerr
			}
			guestChanged = guests != b.GuestCount()
			if qerr = b.ApplyQuote(guests, quote, now); qerr != nil {
				return qerr
			}
		}

		if req.Notes != nil {
			if derr = b.UpdateNotes(*req.Notes, now); derr != nil {
				return derr
			}
		}
		if req.PaymentMode != nil {
			b.SetPaymentMode(*req.PaymentMode, now)
		}

		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "update booking", id)
		}
		updated = b
		return nil
	})
	if err != nil {
		if moved != nil {
			return nil, slotConflict(ctx, uc.uow, err, venueID, *moved, &id)
		}
		return nil, err
	}

	if guestChanged {
		uc.po.syncCatering(ctx, updated)
	}
	return updated, nil
}

func (uc *bookingCommandsImpl) reschedule(ctx context.Context, tx shared.Tx, b *booking.Booking, slot booking.TimeSlot, now time.Time) error {
	if err := tx.Locks().LockVenue(ctx, b.VenueID()); err != nil {
		return errs.Wrapf(err, "lock venue %s", b.VenueID())
	}
	exclude := b.ID()
	if err := availability.EnsureBookable(ctx, tx, b.VenueID(), slot, &exclude); err != nil {
		return err
	}
	return b.Reschedule(slot, now)
}

func (uc *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, id, "confirm booking", func(b *booking.Booking, now time.Time) error {
		return b.Confirm(now)
	})
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, id, "cancel booking", func(b *booking.Booking, now time.Time) error {
		return b.Cancel(now)
	})
}

func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	b, err := uc.transition(ctx, id, "delete booking", func(b *booking.Booking, now time.Time) error {
		return b.SoftDelete(now)
	})
	if err != nil {
		return err
	}
	uc.logger.InfoContext(ctx, "booking soft-deleted", "booking_id", b.ID().String())
	return nil
}

func (uc *bookingCommandsImpl) RestoreBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var restored, restoring *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "restore booking", id)
		}
		restoring = b
		if derr = b.Restore(uc.clock.Now()); derr != nil {
			return derr
		}
		// A restored booking occupies its slot again unless it was cancelled.
		if b.BlocksSlot() {
			if derr = tx.Locks().LockVenue(ctx, b.VenueID()); derr != nil {
				return errs.Wrapf(derr, "lock venue %s", b.VenueID())
			}
			exclude := b.ID()
			check, cerr := availability.IsAvailable(ctx, tx, b.VenueID(), b.Slot(), &exclude)
			if cerr != nil {
				return cerr
			}
			if cerr = check.Err(); cerr != nil {
				return cerr
			}
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "restore booking", id)
		}
		restored = b
		return nil
	})
	if err != nil {
		if restoring != nil {
			return nil, slotConflict(ctx, uc.uow, err, restoring.VenueID(), restoring.Slot(), &id)
		}
		return nil, err
	}
	return restored, nil
}

// UpdatePayment turns a target advance into an appended ledger entry for the
// difference. Lower targets are refused; corrections go through the ledger.
func (uc *bookingCommandsImpl) UpdatePayment(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*PaymentResult, error) {
	var result PaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, "update payment", id)
		}
		if b.IsDeleted() {
			return errs.Wrapf(booking.ErrBookingNotFound, "update payment %s", id)
		}
		now := uc.clock.Now()

		hash := req.fingerprint()
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			prior, ferr := findByKey(ctx, tx, id, *req.IdempotencyKey, hash)
			if ferr != nil {
				return ferr
			}
			if prior != nil {
				result = PaymentResult{Booking: b, Transaction: prior, Replayed: true}
				return nil
			}
		}

		delta, derr := b.AdvanceDelta(req.AdvanceAmount)
		if derr != nil {
			return derr
		}
		b.SetPaymentMode(req.PaymentMode, now)

		if delta.IsZero() {
			if derr = tx.Bookings().Update(ctx, b); derr != nil {
				return translate(derr, booking.ErrBookingNotFound, "update payment", id)
			}
			result = PaymentResult{Booking: b}
			return nil
		}

		mode := req.PaymentMode
		if mode == "" {
			mode = b.Payment().Mode
		}
		t, _, derr := recordInbound(ctx, tx, b, ledger.Entry{
			BookingID:      id,
			Amount:         delta,
			Mode:           mode,
			Status:         ledger.StatusSuccess,
			IdempotencyKey: req.IdempotencyKey,
			RequestHash:    hash,
		}, now)
		if derr != nil {
			return derr
		}
		result = PaymentResult{Booking: b, Transaction: t}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *bookingCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	op string,
	apply func(b *booking.Booking, now time.Time) error,
) (*booking.Booking, error) {
	var out *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return translate(derr, booking.ErrBookingNotFound, op, id)
		}
		if derr = apply(b, uc.clock.Now()); derr != nil {
			return errs.Wrapf(derr, "%s %s", op, id)
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return translate(derr, booking.ErrBookingNotFound, op, id)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *bookingCommandsImpl) load(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b *booking.Booking
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Bookings().FindByID(ctx, id)
		if ferr != nil {
			return translate(ferr, booking.ErrBookingNotFound, "load booking", id)
		}
		if found.IsDeleted() {
			return errs.Wrapf(booking.ErrBookingNotFound, "load booking %s", id)
		}
		b = found
		return nil
	})
	return b, err
}

// resolvePackage merges the selection over the venue's template, if any.
func (uc *bookingCommandsImpl) resolvePackage(ctx context.Context, venueID uuid.UUID, sel pricing.Selection) (pricing.FoodPackage, error) {
	var tpl *pricing.Template
	if sel.SourcePackageID != nil {
		t, err := uc.catalog.GetVenuePackageTemplate(ctx, venueID, *sel.SourcePackageID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return pricing.FoodPackage{}, errs.Wrapf(pricing.ErrTemplateRequired, "package %s of venue %s", *sel.SourcePackageID, venueID)
			}
			return pricing.FoodPackage{}, errs.Wrapf(err, "load package %s of venue %s", *sel.SourcePackageID, venueID)
		}
		tpl = t
	}
	return uc.engine.RecalculateFoodPackage(sel, tpl)
}

func (uc *bookingCommandsImpl) quote(pkg pricing.FoodPackage, guests int, services []pricing.Service) (pricing.Quote, error) {
	if guests < 1 {
		return pricing.Quote{}, booking.ErrInvalidGuestCount
	}
	totals, err := uc.engine.ComputeTotals(pkg, guests, services)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Quote{Package: pkg, Services: services, Totals: totals}, nil
}
