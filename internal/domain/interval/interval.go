// Package interval holds the overlap predicates shared by slot availability
// and blackout conflict checks.
package interval

import (
	"time"

	"venue-booking/internal/pkg/errs"
)

var ErrInvalidInterval = errs.Validation("start time must be before end time")

// Closed is [Start, End]. Blackout windows use closed semantics.
type Closed struct {
	Start time.Time
	End   time.Time
}

func (c Closed) Overlaps(other Closed) bool {
	return !c.Start.After(other.End) && !c.End.Before(other.Start)
}

func (c Closed) Duration() time.Duration {
	return c.End.Sub(c.Start)
}

// HalfOpen is [Start, End). Back-to-back half-open ranges never conflict.
type HalfOpen struct {
	Start time.Time
	End   time.Time
}

func NewHalfOpen(start, end time.Time) (HalfOpen, error) {
	if !start.Before(end) {
		return HalfOpen{}, ErrInvalidInterval
	}
	return HalfOpen{Start: start, End: end}, nil
}

// StartsDuring: existing.Start <= h.Start < existing.End
func (h HalfOpen) StartsDuring(existing HalfOpen) bool {
	return !existing.Start.After(h.Start) && h.Start.Before(existing.End)
}

// EndsDuring: existing.Start < h.End <= existing.End
func (h HalfOpen) EndsDuring(existing HalfOpen) bool {
	return existing.Start.Before(h.End) && !h.End.After(existing.End)
}

// Contains: h.Start <= existing.Start && h.End >= existing.End
func (h HalfOpen) Contains(existing HalfOpen) bool {
	return !h.Start.After(existing.Start) && !h.End.Before(existing.End)
}

// ConflictsWith keeps the three boundary rules separate; each side's
// inclusivity differs and touching endpoints must stay legal.
func (h HalfOpen) ConflictsWith(existing HalfOpen) bool {
	return h.StartsDuring(existing) || h.EndsDuring(existing) || h.Contains(existing)
}

func (h HalfOpen) Duration() time.Duration {
	return h.End.Sub(h.Start)
}

func (h HalfOpen) Closed() Closed {
	return Closed{Start: h.Start, End: h.End}
}
