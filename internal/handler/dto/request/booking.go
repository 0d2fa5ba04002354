package request

import (
	"time"

	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// SectionRequest overrides or adds one section of the package. Amounts are
// minor currency units.
type SectionRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	PricePerPerson *int64   `json:"price_per_person" binding:"omitempty,min=0"`
	Items          []string `json:"items"`
	Remove         bool     `json:"remove"`
}

type FoodPackageRequest struct {
	SourcePackageID  *string          `json:"source_package_id"`
	Name             *string          `json:"name" binding:"omitempty,max=200"`
	PriceType        *string          `json:"price_type" binding:"omitempty,oneof=per_guest flat"`
	Price            *int64           `json:"price" binding:"omitempty,min=0"`
	Sections         []SectionRequest `json:"sections" binding:"omitempty,dive"`
	AddInclusions    []string         `json:"add_inclusions"`
	RemoveInclusions []string         `json:"remove_inclusions"`
}

type ServiceRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Price int64  `json:"price" binding:"min=0"`
}

type CreateBookingRequest struct {
	LeadID        *uuid.UUID         `json:"lead_id"`
	GuestCount    int                `json:"guest_count" binding:"required,min=1"`
	StartTime     time.Time          `json:"start_time" binding:"required"`
	EndTime       time.Time          `json:"end_time" binding:"required"`
	FoodPackage   FoodPackageRequest `json:"food_package"`
	Services      []ServiceRequest   `json:"services" binding:"omitempty,dive"`
	PaymentMode   string             `json:"payment_mode" binding:"max=50"`
	Notes         string             `json:"notes" binding:"max=2000"`
	AdvanceAmount int64              `json:"advance_amount" binding:"min=0"`
}

type UpdateBookingRequest struct {
	GuestCount  *int                `json:"guest_count" binding:"omitempty,min=1"`
	StartTime   *time.Time          `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	FoodPackage *FoodPackageRequest `json:"food_package"`
	Services    *[]ServiceRequest   `json:"services"`
	PaymentMode *string             `json:"payment_mode" binding:"omitempty,max=50"`
	Notes       *string             `json:"notes" binding:"omitempty,max=2000"`
}

type UpdatePaymentRequest struct {
	AdvanceAmount int64  `json:"advance_amount" binding:"min=0"`
	PaymentMode   string `json:"payment_mode" binding:"required,max=50"`
}

func (r *CreateBookingRequest) ToCommand(venueID uuid.UUID) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		VenueID:       venueID,
		LeadID:        r.LeadID,
		GuestCount:    r.GuestCount,
		Start:         r.StartTime,
		End:           r.EndTime,
		FoodPackage:   r.FoodPackage.ToSelection(),
		Services:      toServices(r.Services),
		PaymentMode:   r.PaymentMode,
		Notes:         r.Notes,
		AdvanceAmount: money.New(r.AdvanceAmount),
	}
}

func (r *UpdateBookingRequest) ToCommand() commands.UpdateBookingRequest {
	cmd := commands.UpdateBookingRequest{
		GuestCount:  r.GuestCount,
		Start:       r.StartTime,
		End:         r.EndTime,
		Notes:       r.Notes,
		PaymentMode: r.PaymentMode,
	}
	if r.FoodPackage != nil {
		sel := r.FoodPackage.ToSelection()
		cmd.FoodPackage = &sel
	}
	if r.Services != nil {
		services := toServices(*r.Services)
		cmd.Services = &services
	}
	return cmd
}

func (r *UpdatePaymentRequest) ToCommand(idempotencyKey string) commands.UpdatePaymentRequest {
	cmd := commands.UpdatePaymentRequest{
		AdvanceAmount: money.New(r.AdvanceAmount),
		PaymentMode:   r.PaymentMode,
	}
	if idempotencyKey != "" {
		cmd.IdempotencyKey = &idempotencyKey
	}
	return cmd
}

func (r FoodPackageRequest) ToSelection() pricing.Selection {
	sel := pricing.Selection{
		SourcePackageID:  r.SourcePackageID,
		Name:             r.Name,
		Price:            moneyPtr(r.Price),
		AddInclusions:    r.AddInclusions,
		RemoveInclusions: r.RemoveInclusions,
	}
	if r.PriceType != nil {
		pt := pricing.PriceType(*r.PriceType)
		sel.PriceType = &pt
	}
	if len(r.Sections) > 0 {
		sel.Sections = make([]pricing.SectionOverride, len(r.Sections))
		for i, s := range r.Sections {
			sel.Sections[i] = pricing.SectionOverride{
				Name:           s.Name,
				PricePerPerson: moneyPtr(s.PricePerPerson),
				Items:          s.Items,
				Remove:         s.Remove,
			}
		}
	}
	return sel
}

func toServices(in []ServiceRequest) []pricing.Service {
	out := make([]pricing.Service, len(in))
	for i, s := range in {
		out[i] = pricing.Service{Name: s.Name, Price: money.New(s.Price)}
	}
	return out
}

func moneyPtr(v *int64) *money.Money {
	if v == nil {
		return nil
	}
	m := money.New(*v)
	return &m
}
