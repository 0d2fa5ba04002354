package commands

import (
	"context"
	"time"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecurrenceInput struct {
	Frequency     string
	Interval      int
	EndRecurrence *time.Time
}

func (r RecurrenceInput) toDomain() (*blackout.Recurrence, error) {
	rec, err := blackout.NewRecurrence(blackout.Frequency(r.Frequency), r.Interval, r.EndRecurrence)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

type CreateBlackoutRequest struct {
	VenueID     uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Recurrence  *RecurrenceInput
}

// UpdateBlackoutRequest: nil fields are left unchanged. ClearRecurrence turns
// a recurring rule into a one-off window.
type UpdateBlackoutRequest struct {
	Title           *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Recurrence      *RecurrenceInput
	ClearRecurrence bool
	IsActive        *bool
}

type BlackoutCommands interface {
	CreateBlackout(ctx context.Context, req CreateBlackoutRequest) (*blackout.BlackoutDay, error)
	UpdateBlackout(ctx context.Context, id uuid.UUID, req UpdateBlackoutRequest) (*blackout.BlackoutDay, error)
	DeleteBlackout(ctx context.Context, id uuid.UUID) error
}

type blackoutCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlackoutCommands(uow shared.UnitOfWork, clk clock.Clock) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow, clock: clk}
}

func (uc *blackoutCommandsImpl) CreateBlackout(ctx context.Context, req CreateBlackoutRequest) (*blackout.BlackoutDay, error) {
	var rec *blackout.Recurrence
	if req.Recurrence != nil {
		r, err := req.Recurrence.toDomain()
		if err != nil {
			return nil, err
		}
		rec = r
	}
	day, err := blackout.NewBlackoutDay(req.VenueID, req.Title, req.Description, req.StartDate, req.EndDate, rec, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Blackouts().Create(ctx, day); cerr != nil {
			return translate(cerr, nil, "create blackout", day.ID())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (uc *blackoutCommandsImpl) UpdateBlackout(ctx context.Context, id uuid.UUID, req UpdateBlackoutRequest) (*blackout.BlackoutDay, error) {
	var rec *blackout.Recurrence
	if req.Recurrence != nil {
		r, err := req.Recurrence.toDomain()
		if err != nil {
			return nil, err
		}
		rec = r
	}

	var out *blackout.BlackoutDay
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		day, derr := tx.Blackouts().FindByID(ctx, id)
		if derr != nil {
			return translate(derr, blackout.ErrBlackoutNotFound, "update blackout", id)
		}
		now := uc.clock.Now()

		if req.Title != nil || req.Description != nil {
			title, desc := day.Title(), day.Description()
			if req.Title != nil {
				title = *req.Title
			}
			if req.Description != nil {
				desc = *req.Description
			}
			if derr = day.Rename(title, desc, now); derr != nil {
				return derr
			}
		}

		// Drop the old rule first so its end date cannot reject the new window.
		if rec != nil || req.ClearRecurrence {
			if derr = day.SetRecurrence(nil, now); derr != nil {
				return derr
			}
		}
		if req.StartDate != nil || req.EndDate != nil {
			start, end := day.StartDate(), day.EndDate()
			if req.StartDate != nil {
				start = *req.StartDate
			}
			if req.EndDate != nil {
				end = *req.EndDate
			}
			if derr = day.Reschedule(start, end, now); derr != nil {
				return derr
			}
		}
		if rec != nil {
			if derr = day.SetRecurrence(rec, now); derr != nil {
				return derr
			}
		}

		if req.IsActive != nil {
			if *req.IsActive {
				day.Activate(now)
			} else {
				day.Deactivate(now)
			}
		}

		if derr = tx.Blackouts().Update(ctx, day); derr != nil {
			return translate(derr, blackout.ErrBlackoutNotFound, "update blackout", id)
		}
		out = day
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *blackoutCommandsImpl) DeleteBlackout(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Blackouts().Delete(ctx, id); derr != nil {
			return translate(derr, blackout.ErrBlackoutNotFound, "delete blackout", id)
		}
		return nil
	})
}
