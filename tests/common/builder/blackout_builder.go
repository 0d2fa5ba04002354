//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/blackout"

	"github.com/google/uuid"
)

type BlackoutBuilder struct {
	VenueID       uuid.UUID
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	Frequency     blackout.Frequency
	Interval      int
	EndRecurrence *time.Time
	IsActive      bool
	Now           time.Time
}

func NewBlackoutBuilder() *BlackoutBuilder {
	return &BlackoutBuilder{
		VenueID:     uuid.New(),
		Title:       "Christmas",
		Description: "Venue closed",
		StartDate:   time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		Now:         time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BlackoutBuilder) With(mutate func(*BlackoutBuilder)) *BlackoutBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BlackoutBuilder) BuildRecurrence() (*blackout.Recurrence, error) {
	if b.Frequency == "" {
		return nil, nil
	}
	r, err := blackout.NewRecurrence(b.Frequency, b.Interval, b.EndRecurrence)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (b *BlackoutBuilder) BuildDomain() (*blackout.BlackoutDay, error) {
	rec, err := b.BuildRecurrence()
	if err != nil {
		return nil, err
	}
	day, err := blackout.NewBlackoutDay(b.VenueID, b.Title, b.Description, b.StartDate, b.EndDate, rec, b.Now)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		day.Deactivate(b.Now)
	}
	return day, nil
}

// Fluent builder methods
func (b *BlackoutBuilder) WithVenue(venueID uuid.UUID) *BlackoutBuilder {
	b.VenueID = venueID
	return b
}

func (b *BlackoutBuilder) WithTitle(title string) *BlackoutBuilder {
	b.Title = title
	return b
}

func (b *BlackoutBuilder) WithDates(start, end time.Time) *BlackoutBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BlackoutBuilder) Recurring(freq blackout.Frequency, every int) *BlackoutBuilder {
	b.Frequency = freq
	b.Interval = every
	return b
}

func (b *BlackoutBuilder) Until(end time.Time) *BlackoutBuilder {
	b.EndRecurrence = &end
	return b
}

func (b *BlackoutBuilder) AsInactive() *BlackoutBuilder {
	b.IsActive = false
	return b
}
