package response

import (
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID            string              `json:"id"`
	VenueID       string              `json:"venue_id"`
	LeadID        *string             `json:"lead_id,omitempty"`
	GuestCount    int                 `json:"guest_count"`
	StartTime     string              `json:"start_time"`
	EndTime       string              `json:"end_time"`
	Status        string              `json:"status"`
	FoodPackage   FoodPackageResponse `json:"food_package"`
	Services      []ServiceResponse   `json:"services"`
	FoodCostTotal int64               `json:"food_cost_total"`
	ServicesTotal int64               `json:"services_total"`
	TotalAmount   int64               `json:"total_amount"`
	AdvanceAmount int64               `json:"advance_amount"`
	Balance       int64               `json:"balance"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMode   string              `json:"payment_mode"`
	Notes         string              `json:"notes"`
	IsDeleted     bool                `json:"is_deleted"`
	DeletedAt     *string             `json:"deleted_at,omitempty"`
	ConfirmedAt   *string             `json:"confirmed_at,omitempty"`
	CancelledAt   *string             `json:"cancelled_at,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

type FoodPackageResponse struct {
	SourcePackageID *string           `json:"source_package_id,omitempty"`
	Name            string            `json:"name"`
	PriceType       string            `json:"price_type"`
	Price           int64             `json:"price"`
	Sections        []SectionResponse `json:"sections"`
	Inclusions      []string          `json:"inclusions"`
}

type SectionResponse struct {
	Name           string   `json:"name"`
	PricePerPerson int64    `json:"price_per_person"`
	Items          []string `json:"items"`
}

type ServiceResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type AvailabilityResponse struct {
	Available bool                `json:"available"`
	Conflicts []errs.ConflictItem `json:"conflicts"`
}

type PaymentResponse struct {
	Booking     *BookingResponse     `json:"booking"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Replayed    bool                 `json:"replayed"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	copyInto(res, v)
	if res.Services == nil {
		res.Services = []ServiceResponse{}
	}
	return res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingPage(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Bookings: FromBookingViews(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{Available: v.Available, Conflicts: v.Conflicts}
}
