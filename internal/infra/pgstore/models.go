package pgstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	LeadID        pgtype.UUID
	GuestCount    int32
	StartTime     pgtype.Timestamptz
	EndTime       pgtype.Timestamptz
	Status        string
	FoodPackage   []byte
	Services      []byte
	FoodCostTotal int64
	TotalAmount   int64
	AdvanceAmount int64
	PaymentStatus string
	PaymentMode   string
	Notes         string
	IsDeleted     bool
	DeletedAt     pgtype.Timestamptz
	ConfirmedAt   pgtype.Timestamptz
	CancelledAt   pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type BlackoutDays struct {
	ID                  uuid.UUID
	VenueID             uuid.UUID
	Title               string
	Description         string
	StartDate           pgtype.Timestamptz
	EndDate             pgtype.Timestamptz
	IsActive            bool
	RecurrenceFrequency pgtype.Text
	RecurrenceInterval  pgtype.Int4
	RecurrenceEnd       pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type Transactions struct {
	ID              uuid.UUID
	BookingID       uuid.UUID
	Direction       string
	Type            string
	Amount          int64
	Mode            string
	Status          string
	Notes           string
	VendorID        pgtype.UUID
	PurchaseOrderID pgtype.UUID
	IdempotencyKey  pgtype.Text
	RequestHash     string
	OccurredAt      pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}
