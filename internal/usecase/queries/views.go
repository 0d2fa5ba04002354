package queries

import (
	"time"

	"venue-booking/internal/domain/blackout"
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	VenueID       uuid.UUID       `json:"venue_id"`
	LeadID        *uuid.UUID      `json:"lead_id,omitempty"`
	GuestCount    int             `json:"guest_count"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	Status        string          `json:"status"`
	FoodPackage   FoodPackageView `json:"food_package"`
	Services      []ServiceView   `json:"services"`
	FoodCostTotal int64           `json:"food_cost_total"`
	ServicesTotal int64           `json:"services_total"`
	TotalAmount   int64           `json:"total_amount"`
	AdvanceAmount int64           `json:"advance_amount"`
	Balance       int64           `json:"balance"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMode   string          `json:"payment_mode"`
	Notes         string          `json:"notes"`
	IsDeleted     bool            `json:"is_deleted"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	ConfirmedAt   *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type FoodPackageView struct {
	SourcePackageID *string       `json:"source_package_id,omitempty"`
	Name            string        `json:"name"`
	PriceType       string        `json:"price_type"`
	Price           int64         `json:"price"`
	Sections        []SectionView `json:"sections"`
	Inclusions      []string      `json:"inclusions"`
}

type SectionView struct {
	Name           string   `json:"name"`
	PricePerPerson int64    `json:"price_per_person"`
	Items          []string `json:"items"`
}

type ServiceView struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type BlackoutView struct {
	ID          uuid.UUID       `json:"id"`
	VenueID     uuid.UUID       `json:"venue_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	Recurrence  *RecurrenceView `json:"recurrence,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RecurrenceView struct {
	Frequency     string     `json:"frequency"`
	Interval      int        `json:"interval"`
	EndRecurrence *time.Time `json:"end_recurrence,omitempty"`
}

type TransactionView struct {
	ID              uuid.UUID  `json:"id"`
	BookingID       uuid.UUID  `json:"booking_id"`
	Direction       string     `json:"direction"`
	Type            string     `json:"type"`
	Amount          int64      `json:"amount"`
	Mode            string     `json:"mode"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	VendorID        *uuid.UUID `json:"vendor_id,omitempty"`
	PurchaseOrderID *uuid.UUID `json:"purchase_order_id,omitempty"`
	IdempotencyKey  *string    `json:"idempotency_key,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AvailabilityView struct {
	Available bool                `json:"available"`
	Conflicts []errs.ConflictItem `json:"conflicts"`
}

type BlackoutConflictView struct {
	HasConflict bool            `json:"has_conflict"`
	Conflicting []*BlackoutView `json:"conflicting"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	p := b.Payment()
	services := b.Services()
	sv := make([]ServiceView, len(services))
	for i, s := range services {
		sv[i] = ServiceView{Name: s.Name, Price: s.Price.Minor()}
	}
	return &BookingView{
		ID:            b.ID(),
		VenueID:       b.VenueID(),
		LeadID:        b.LeadID(),
		GuestCount:    b.GuestCount(),
		StartTime:     b.Slot().Start(),
		EndTime:       b.Slot().End(),
		Status:        b.Status().String(),
		FoodPackage:   newFoodPackageView(b.FoodPackage()),
		Services:      sv,
		FoodCostTotal: b.FoodCostTotal().Minor(),
		ServicesTotal: b.ServicesTotal().Minor(),
		TotalAmount:   p.TotalAmount.Minor(),
		AdvanceAmount: p.AdvanceAmount.Minor(),
		Balance:       p.Balance().Minor(),
		PaymentStatus: p.Status.String(),
		PaymentMode:   p.Mode,
		Notes:         b.Notes(),
		IsDeleted:     b.IsDeleted(),
		DeletedAt:     b.DeletedAt(),
		ConfirmedAt:   b.ConfirmedAt(),
		CancelledAt:   b.CancelledAt(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func newFoodPackageView(pkg pricing.FoodPackage) FoodPackageView {
	sections := make([]SectionView, len(pkg.Sections))
	for i, s := range pkg.Sections {
		sections[i] = SectionView{Name: s.Name, PricePerPerson: s.PricePerPerson.Minor(), Items: s.Items}
	}
	return FoodPackageView{
		SourcePackageID: pkg.SourcePackageID,
		Name:            pkg.Name,
		PriceType:       pkg.PriceType.String(),
		Price:           pkg.Price.Minor(),
		Sections:        sections,
		Inclusions:      pkg.Inclusions,
	}
}

func NewBlackoutView(b *blackout.BlackoutDay) *BlackoutView {
	v := &BlackoutView{
		ID:          b.ID(),
		VenueID:     b.VenueID(),
		Title:       b.Title(),
		Description: b.Description(),
		StartDate:   b.StartDate(),
		EndDate:     b.EndDate(),
		IsActive:    b.IsActive(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
	if r := b.Recurrence(); r != nil {
		v.Recurrence = &RecurrenceView{
			Frequency:     r.Frequency().String(),
			Interval:      r.Interval(),
			EndRecurrence: r.EndRecurrence(),
		}
	}
	return v
}

func NewTransactionView(t *ledger.Transaction) *TransactionView {
	return &TransactionView{
		ID:              t.ID(),
		BookingID:       t.BookingID(),
		Direction:       string(t.Direction()),
		Type:            string(t.Type()),
		Amount:          t.Amount().Minor(),
		Mode:            t.Mode(),
		Status:          string(t.Status()),
		Notes:           t.Notes(),
		VendorID:        t.VendorID(),
		PurchaseOrderID: t.PurchaseOrderID(),
		IdempotencyKey:  t.IdempotencyKey(),
		OccurredAt:      t.OccurredAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
