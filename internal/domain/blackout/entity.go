package blackout

import (
	"strings"
	"time"

	"venue-booking/internal/domain/interval"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BlackoutDay struct {
	id          uuid.UUID
	venueID     uuid.UUID
	title       string
	description string
	window      interval.Closed
	isActive    bool
	recurrence  *Recurrence
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBlackoutDay(
	venueID uuid.UUID,
	title, description string,
	startDate, endDate time.Time,
	recurrence *Recurrence,
	now time.Time,
) (*BlackoutDay, error) {
	b := &BlackoutDay{
		id:          uuid.New(),
		venueID:     venueID,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}
	if err := b.Rename(title, b.description, now); err != nil {
		return nil, err
	}
	if err := b.Reschedule(startDate, endDate, now); err != nil {
		return nil, err
	}
	if err := b.SetRecurrence(recurrence, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBlackoutDay(
	id, venueID uuid.UUID,
	title, description string,
	startDate, endDate time.Time,
	isActive bool,
	recurrence *Recurrence,
	createdAt, updatedAt time.Time,
) *BlackoutDay {
	return &BlackoutDay{
		id:          id,
		venueID:     venueID,
		title:       title,
		description: description,
		window:      interval.Closed{Start: startDate, End: endDate},
		isActive:    isActive,
		recurrence:  recurrence,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *BlackoutDay) Rename(title, description string, now time.Time) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return errs.Validationf("blackout title exceeds %d characters", MaxTitleLength)
	}
	b.title = t
	b.description = strings.TrimSpace(description)
	b.updatedAt = now
	return nil
}

func (b *BlackoutDay) Reschedule(startDate, endDate time.Time, now time.Time) error {
	if startDate.After(endDate) {
		return ErrInvalidWindow
	}
	if b.recurrence != nil && b.recurrence.endRecurrence != nil && b.recurrence.endRecurrence.Before(startDate) {
		return ErrRecurrenceEndTooEarly
	}
	b.window = interval.Closed{Start: startDate, End: endDate}
	b.updatedAt = now
	return nil
}

// SetRecurrence with nil turns the blackout into a one-off window.
func (b *BlackoutDay) SetRecurrence(r *Recurrence, now time.Time) error {
	if r != nil && r.endRecurrence != nil && r.endRecurrence.Before(b.window.Start) {
		return ErrRecurrenceEndTooEarly
	}
	if r == nil {
		b.recurrence = nil
	} else {
		rc := *r
		b.recurrence = &rc
	}
	b.updatedAt = now
	return nil
}

func (b *BlackoutDay) Activate(now time.Time) {
	b.isActive = true
	b.updatedAt = now
}

func (b *BlackoutDay) Deactivate(now time.Time) {
	b.isActive = false
	b.updatedAt = now
}

// Blocks reports whether this blackout forbids anything inside window.
func (b *BlackoutDay) Blocks(window interval.Closed) bool {
	if !b.isActive {
		return false
	}
	if b.recurrence == nil {
		return b.window.Overlaps(window)
	}
	return b.recurrence.Intersects(b.window, window)
}

func (b *BlackoutDay) FormattedRange() string {
	return b.window.Start.Format(DateLayout) + " to " + b.window.End.Format(DateLayout)
}

func (b *BlackoutDay) ConflictItem() errs.ConflictItem {
	return errs.ConflictItem{
		Kind:  "blackout",
		ID:    b.id.String(),
		Title: b.title,
		Range: b.FormattedRange(),
	}
}

func (b *BlackoutDay) IsRecurring() bool { return b.recurrence != nil }

func (b *BlackoutDay) Recurrence() *Recurrence {
	if b.recurrence == nil {
		return nil
	}
	r := *b.recurrence
	return &r
}

func (b *BlackoutDay) ID() uuid.UUID           { return b.id }
func (b *BlackoutDay) VenueID() uuid.UUID      { return b.venueID }
func (b *BlackoutDay) Title() string           { return b.title }
func (b *BlackoutDay) Description() string     { return b.description }
func (b *BlackoutDay) StartDate() time.Time    { return b.window.Start }
func (b *BlackoutDay) EndDate() time.Time      { return b.window.End }
func (b *BlackoutDay) Window() interval.Closed { return b.window }
func (b *BlackoutDay) IsActive() bool          { return b.isActive }
func (b *BlackoutDay) CreatedAt() time.Time    { return b.createdAt }
func (b *BlackoutDay) UpdatedAt() time.Time    { return b.updatedAt }
