package blackout

import "venue-booking/internal/pkg/errs"

var (
	ErrEmptyTitle            = errs.Validation("blackout title cannot be empty")
	ErrInvalidWindow         = errs.Validation("blackout start date must not be after end date")
	ErrInvalidFrequency      = errs.Validation("recurrence frequency must be weekly, monthly or yearly")
	ErrInvalidInterval       = errs.Validation("recurrence interval must be a positive integer")
	ErrRecurrenceEndTooEarly = errs.Validation("recurrence end must not be before the blackout start date")
	ErrBlackoutNotFound      = errs.NotFound("blackout not found")
)

const MaxTitleLength = 200

type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// DateLayout is used when naming a blackout's range in conflict messages.
const DateLayout = "2006-01-02"
