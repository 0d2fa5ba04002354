package blackout

import (
	"math"
	"time"

	"venue-booking/internal/domain/interval"
)

type Recurrence struct {
	frequency     Frequency
	interval      int
	endRecurrence *time.Time
}

func NewRecurrence(frequency Frequency, every int, endRecurrence *time.Time) (Recurrence, error) {
	if !frequency.IsValid() {
		return Recurrence{}, ErrInvalidFrequency
	}
	if every < 1 || every > math.MaxInt32 {
		return Recurrence{}, ErrInvalidInterval
	}
	var end *time.Time
	if endRecurrence != nil {
		e := *endRecurrence
		end = &e
	}
	return Recurrence{frequency: frequency, interval: every, endRecurrence: end}, nil
}

func (r Recurrence) Frequency() Frequency { return r.frequency }
func (r Recurrence) Interval() int        { return r.interval }

func (r Recurrence) EndRecurrence() *time.Time {
	if r.endRecurrence == nil {
		return nil
	}
	e := *r.endRecurrence
	return &e
}

// occurrenceStart is always derived from the template start so month-end
// normalisation never accumulates across steps.
func (r Recurrence) occurrenceStart(s0 time.Time, n int) time.Time {
	switch r.frequency {
	case FrequencyWeekly:
		return s0.AddDate(0, 0, 7*r.interval*n)
	case FrequencyMonthly:
		return s0.AddDate(0, r.interval*n, 0)
	case FrequencyYearly:
		return s0.AddDate(r.interval*n, 0, 0)
	default:
		return s0
	}
}

// firstCandidate returns an occurrence index whose end cannot yet have reached
// window.Start, so scanning from it skips nothing that could intersect.
func (r Recurrence) firstCandidate(template, window interval.Closed) int {
	if !window.Start.After(template.End) {
		return 0
	}
	var n int
	switch r.frequency {
	case FrequencyWeekly:
		n = int(daysBetween(template.End, window.Start) / (7 * int64(r.interval)))
	case FrequencyMonthly:
		n = monthsBetween(template.End, window.Start) / r.interval
	case FrequencyYearly:
		n = (window.Start.Year() - template.End.Year()) / r.interval
	}
	// one step of slack for DST shifts and month-length normalisation
	n--
	if n < 0 {
		return 0
	}
	return n
}

// daysBetween counts whole days without going through time.Duration, which
// saturates past roughly 292 years.
func daysBetween(from, to time.Time) int64 {
	return (to.Unix() - from.Unix()) / (24 * 60 * 60)
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// Intersects reports whether any occurrence of template, repeated by r,
// overlaps window. It stops at the first hit and never looks past window.End.
func (r Recurrence) Intersects(template, window interval.Closed) bool {
	hit, _ := r.scan(template, window)
	return hit
}

func (r Recurrence) scan(template, window interval.Closed) (bool, int) {
	duration := template.Duration()
	steps := 0
	for n := r.firstCandidate(template, window); ; n++ {
		start := r.occurrenceStart(template.Start, n)
		if start.After(window.End) {
			return false, steps
		}
		if r.endRecurrence != nil && start.After(*r.endRecurrence) {
			return false, steps
		}
		steps++
		occurrence := interval.Closed{Start: start, End: start.Add(duration)}
		if occurrence.Overlaps(window) {
			return true, steps
		}
	}
}
