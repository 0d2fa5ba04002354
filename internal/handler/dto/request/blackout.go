package request

import (
	"time"

	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecurrenceRequest struct {
	Frequency     string     `json:"frequency" binding:"required,oneof=weekly monthly yearly"`
	Interval      int        `json:"interval" binding:"required,min=1"`
	EndRecurrence *time.Time `json:"end_recurrence"`
}

type CreateBlackoutRequest struct {
	Title       string             `json:"title" binding:"required,max=200"`
	Description string             `json:"description" binding:"max=2000"`
	StartDate   time.Time          `json:"start_date" binding:"required"`
	EndDate     time.Time          `json:"end_date" binding:"required"`
	Recurrence  *RecurrenceRequest `json:"recurrence"`
}

type UpdateBlackoutRequest struct {
	Title           *string            `json:"title" binding:"omitempty,max=200"`
	Description     *string            `json:"description" binding:"omitempty,max=2000"`
	StartDate       *time.Time         `json:"start_date"`
	EndDate         *time.Time         `json:"end_date"`
	Recurrence      *RecurrenceRequest `json:"recurrence"`
	ClearRecurrence bool               `json:"clear_recurrence"`
	IsActive        *bool              `json:"is_active"`
}

func (r *CreateBlackoutRequest) ToCommand(venueID uuid.UUID) commands.CreateBlackoutRequest {
	return commands.CreateBlackoutRequest{
		VenueID:     venueID,
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Recurrence:  r.Recurrence.toInput(),
	}
}

func (r *UpdateBlackoutRequest) ToCommand() commands.UpdateBlackoutRequest {
	return commands.UpdateBlackoutRequest{
		Title:           r.Title,
		Description:     r.Description,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Recurrence:      r.Recurrence.toInput(),
		ClearRecurrence: r.ClearRecurrence,
		IsActive:        r.IsActive,
	}
}

func (r *RecurrenceRequest) toInput() *commands.RecurrenceInput {
	if r == nil {
		return nil
	}
	return &commands.RecurrenceInput{
		Frequency:     r.Frequency,
		Interval:      r.Interval,
		EndRecurrence: r.EndRecurrence,
	}
}
