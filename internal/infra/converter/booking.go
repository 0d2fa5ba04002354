package converter

import (
	"encoding/json"
	"fmt"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"
)

// JSONB shapes of the package snapshot. Amounts are minor units.
type foodPackageRecord struct {
	SourcePackageID *string         `json:"source_package_id,omitempty"`
	Name            string          `json:"name"`
	PriceType       string          `json:"price_type"`
	Price           int64           `json:"price"`
	Sections        []sectionRecord `json:"sections"`
	Inclusions      []string        `json:"inclusions"`
}

type sectionRecord struct {
	Name           string   `json:"name"`
	PricePerPerson int64    `json:"price_per_person"`
	Items          []string `json:"items"`
}

type serviceRecord struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func BookingToInfra(b *booking.Booking) (pgstore.Bookings, error) {
	pkg, err := json.Marshal(foodPackageToRecord(b.FoodPackage()))
	if err != nil {
		return pgstore.Bookings{}, fmt.Errorf("encode food package: %w", err)
	}
	services := b.Services()
	records := make([]serviceRecord, len(services))
	for i, s := range services {
		records[i] = serviceRecord{Name: s.Name, Price: s.Price.Minor()}
	}
	svc, err := json.Marshal(records)
	if err != nil {
		return pgstore.Bookings{}, fmt.Errorf("encode services: %w", err)
	}

	p := b.Payment()
	return pgstore.Bookings{
		ID:            b.ID(),
		VenueID:       b.VenueID(),
		LeadID:        pgconv.UUIDPtrToPgtype(b.LeadID()),
		GuestCount:    int32(b.GuestCount()), // #nosec G115 -- guest counts are small
		StartTime:     pgconv.TimeToPgtype(b.Slot().Start()),
		EndTime:       pgconv.TimeToPgtype(b.Slot().End()),
		Status:        b.Status().String(),
		FoodPackage:   pkg,
		Services:      svc,
		FoodCostTotal: b.FoodCostTotal().Minor(),
		TotalAmount:   p.TotalAmount.Minor(),
		AdvanceAmount: p.AdvanceAmount.Minor(),
		PaymentStatus: p.Status.String(),
		PaymentMode:   p.Mode,
		Notes:         b.Notes(),
		IsDeleted:     b.IsDeleted(),
		DeletedAt:     pgconv.TimePtrToPgtype(b.DeletedAt()),
		ConfirmedAt:   pgconv.TimePtrToPgtype(b.ConfirmedAt()),
		CancelledAt:   pgconv.TimePtrToPgtype(b.CancelledAt()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToDomain(row pgstore.Bookings) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	var pkg foodPackageRecord
	if err := json.Unmarshal(row.FoodPackage, &pkg); err != nil {
		return nil, fmt.Errorf("decode food package of booking %s: %w", row.ID, err)
	}
	var svc []serviceRecord
	if len(row.Services) > 0 {
		if err := json.Unmarshal(row.Services, &svc); err != nil {
			return nil, fmt.Errorf("decode services of booking %s: %w", row.ID, err)
		}
	}
	services := make([]pricing.Service, len(svc))
	for i, s := range svc {
		services[i] = pricing.Service{Name: s.Name, Price: money.New(s.Price)}
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:            row.ID,
		VenueID:       row.VenueID,
		LeadID:        pgconv.UUIDPtrFromPgtype(row.LeadID),
		GuestCount:    int(row.GuestCount),
		Slot:          slot,
		Status:        booking.Status(row.Status),
		FoodPackage:   foodPackageFromRecord(pkg),
		Services:      services,
		FoodCostTotal: money.New(row.FoodCostTotal),
		TotalAmount:   money.New(row.TotalAmount),
		AdvanceAmount: money.New(row.AdvanceAmount),
		PaymentMode:   row.PaymentMode,
		Notes:         row.Notes,
		IsDeleted:     row.IsDeleted,
		DeletedAt:     pgconv.TimePtrFromPgtype(row.DeletedAt),
		ConfirmedAt:   pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BookingsToDomain(rows []pgstore.Bookings) ([]*booking.Booking, error) {
	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		b, err := BookingToDomain(row)
		if err != nil {
			return nil, err
		}
		result[i] = b
	}
	return result, nil
}

func foodPackageToRecord(pkg pricing.FoodPackage) foodPackageRecord {
	sections := make([]sectionRecord, len(pkg.Sections))
	for i, s := range pkg.Sections {
		sections[i] = sectionRecord{Name: s.Name, PricePerPerson: s.PricePerPerson.Minor(), Items: s.Items}
	}
	return foodPackageRecord{
		SourcePackageID: pkg.SourcePackageID,
		Name:            pkg.Name,
		PriceType:       pkg.PriceType.String(),
		Price:           pkg.Price.Minor(),
		Sections:        sections,
		Inclusions:      pkg.Inclusions,
	}
}

func foodPackageFromRecord(r foodPackageRecord) pricing.FoodPackage {
	sections := make([]pricing.Section, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = pricing.Section{Name: s.Name, PricePerPerson: money.New(s.PricePerPerson), Items: s.Items}
	}
	return pricing.FoodPackage{
		SourcePackageID: r.SourcePackageID,
		Name:            r.Name,
		PriceType:       pricing.PriceType(r.PriceType),
		Price:           money.New(r.Price),
		Sections:        sections,
		Inclusions:      r.Inclusions,
	}
}
