//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID // set once the booking is built and stored
	VenueID     uuid.UUID
	LeadID      *uuid.UUID
	GuestCount  int
	Start       time.Time
	End         time.Time
	PackageName string
	PriceType   pricing.PriceType
	Price       int64
	Sections    []pricing.Section
	Inclusions  []string
	Services    []pricing.Service
	PaymentMode string
	Notes       string
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		VenueID:     uuid.New(),
		GuestCount:  100,
		Start:       time.Date(2025, 12, 20, 18, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 12, 20, 22, 0, 0, 0, time.UTC),
		PackageName: "Silver",
		PriceType:   pricing.PriceTypePerGuest,
		Price:       500,
		Inclusions:  []string{"Welcome drink"},
		PaymentMode: "cash",
		Now:         time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSlot() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(b.Start, b.End)
}

func (b *BookingBuilder) BuildPackage() pricing.FoodPackage {
	return pricing.FoodPackage{
		Name:       b.PackageName,
		PriceType:  b.PriceType,
		Price:      money.New(b.Price),
		Sections:   b.Sections,
		Inclusions: b.Inclusions,
	}
}

func (b *BookingBuilder) BuildQuote() (pricing.Quote, error) {
	pkg := b.BuildPackage()
	totals, err := pricing.ComputeTotals(pkg, b.GuestCount, b.Services)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Quote{Package: pkg, Services: b.Services, Totals: totals}, nil
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	quote, err := b.BuildQuote()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewParams{
		VenueID:     b.VenueID,
		LeadID:      b.LeadID,
		GuestCount:  b.GuestCount,
		Slot:        slot,
		PaymentMode: b.PaymentMode,
		Notes:       b.Notes,
	}, quote, b.Now)
}

func (b *BookingBuilder) BuildSelection() pricing.Selection {
	name := b.PackageName
	priceType := b.PriceType
	price := money.New(b.Price)
	sel := pricing.Selection{
		Name:          &name,
		PriceType:     &priceType,
		Price:         &price,
		AddInclusions: b.Inclusions,
	}
	for _, s := range b.Sections {
		perPerson := s.PricePerPerson
		sel.Sections = append(sel.Sections, pricing.SectionOverride{
			Name:           s.Name,
			PricePerPerson: &perPerson,
			Items:          s.Items,
		})
	}
	return sel
}

func (b *BookingBuilder) BuildCreateCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		VenueID:     b.VenueID,
		LeadID:      b.LeadID,
		GuestCount:  b.GuestCount,
		Start:       b.Start,
		End:         b.End,
		FoodPackage: b.BuildSelection(),
		Services:    b.Services,
		PaymentMode: b.PaymentMode,
		Notes:       b.Notes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	name := b.PackageName
	priceType := string(b.PriceType)
	price := b.Price
	dto := request.CreateBookingRequest{
		LeadID:     b.LeadID,
		GuestCount: b.GuestCount,
		StartTime:  b.Start,
		EndTime:    b.End,
		FoodPackage: request.FoodPackageRequest{
			Name:          &name,
			PriceType:     &priceType,
			Price:         &price,
			AddInclusions: b.Inclusions,
		},
		PaymentMode: b.PaymentMode,
		Notes:       b.Notes,
	}
	for _, s := range b.Sections {
		perPerson := s.PricePerPerson.Minor()
		dto.FoodPackage.Sections = append(dto.FoodPackage.Sections, request.SectionRequest{
			Name:           s.Name,
			PricePerPerson: &perPerson,
			Items:          s.Items,
		})
	}
	for _, svc := range b.Services {
		dto.Services = append(dto.Services, request.ServiceRequest{Name: svc.Name, Price: svc.Price.Minor()})
	}
	return dto
}

// Fluent builder methods
func (b *BookingBuilder) WithVenue(venueID uuid.UUID) *BookingBuilder {
	b.VenueID = venueID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.GuestCount = n
	return b
}

func (b *BookingBuilder) WithFlatPrice(price int64) *BookingBuilder {
	b.PriceType = pricing.PriceTypeFlat
	b.Price = price
	return b
}

func (b *BookingBuilder) WithSection(name string, perPerson int64, items ...string) *BookingBuilder {
	b.Sections = append(b.Sections, pricing.Section{Name: name, PricePerPerson: money.New(perPerson), Items: items})
	return b
}

func (b *BookingBuilder) WithService(name string, price int64) *BookingBuilder {
	b.Services = append(b.Services, pricing.Service{Name: name, Price: money.New(price)})
	return b
}
