package booking

import (
	"fmt"
	"time"

	"venue-booking/internal/domain/interval"
)

// TimeSlot is the half-open event range [start, end).
type TimeSlot struct {
	span interval.HalfOpen
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	span, err := interval.NewHalfOpen(start.UTC(), end.UTC())
	if err != nil {
		return TimeSlot{}, err
	}
	return TimeSlot{span: span}, nil
}

func (ts TimeSlot) Start() time.Time          { return ts.span.Start }
func (ts TimeSlot) End() time.Time            { return ts.span.End }
func (ts TimeSlot) Span() interval.HalfOpen   { return ts.span }
func (ts TimeSlot) Duration() time.Duration   { return ts.span.Duration() }
func (ts TimeSlot) Equal(other TimeSlot) bool { return ts.Start().Equal(other.Start()) && ts.End().Equal(other.End()) }

// Closed is the window used against blackout dates.
func (ts TimeSlot) Closed() interval.Closed {
	return ts.span.Closed()
}

func (ts TimeSlot) ConflictsWith(other TimeSlot) bool {
	return ts.span.ConflictsWith(other.span)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.Start().Format(time.RFC3339), ts.End().Format(time.RFC3339))
}

func (ts TimeSlot) String() string {
	return ts.Start().Format(time.RFC3339) + " to " + ts.End().Format(time.RFC3339)
}
