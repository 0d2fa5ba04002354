package response

import (
	"venue-booking/internal/usecase/queries"
)

type BlackoutResponse struct {
	ID          string              `json:"id"`
	VenueID     string              `json:"venue_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	IsActive    bool                `json:"is_active"`
	Recurrence  *RecurrenceResponse `json:"recurrence,omitempty"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

type RecurrenceResponse struct {
	Frequency     string  `json:"frequency"`
	Interval      int     `json:"interval"`
	EndRecurrence *string `json:"end_recurrence,omitempty"`
}

type BlackoutConflictResponse struct {
	HasConflict bool                `json:"has_conflict"`
	Conflicting []*BlackoutResponse `json:"conflicting"`
}

func FromBlackoutView(v *queries.BlackoutView) *BlackoutResponse {
	res := &BlackoutResponse{}
	copyInto(res, v)
	res.Recurrence = nil
	if r := v.Recurrence; r != nil {
		res.Recurrence = &RecurrenceResponse{Frequency: r.Frequency, Interval: r.Interval}
		if r.EndRecurrence != nil {
			end := formatTime(*r.EndRecurrence)
			res.Recurrence.EndRecurrence = &end
		}
	}
	return res
}

func FromBlackoutViews(views []*queries.BlackoutView) []*BlackoutResponse {
	res := make([]*BlackoutResponse, len(views))
	for i, v := range views {
		res[i] = FromBlackoutView(v)
	}
	return res
}

func FromBlackoutConflictView(v *queries.BlackoutConflictView) *BlackoutConflictResponse {
	return &BlackoutConflictResponse{
		HasConflict: v.HasConflict,
		Conflicting: FromBlackoutViews(v.Conflicting),
	}
}
