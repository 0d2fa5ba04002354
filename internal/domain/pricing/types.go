package pricing

import (
	"venue-booking/internal/domain/money"
	"venue-booking/internal/pkg/errs"
)

var (
	ErrMissingPackageName  = errs.Validation("food package name is required")
	ErrInvalidPriceType    = errs.Validation("food package price type must be per_guest or flat")
	ErrNegativePrice       = errs.Validation("price cannot be negative")
	ErrMissingSectionName  = errs.Validation("food package section name is required")
	ErrMissingSectionPrice = errs.Validation("food package section price is required for sections not in the template")
	ErrTemplateMismatch    = errs.Validation("food package template does not match the selected package")
	ErrTemplateRequired    = errs.Validation("food package template is required for the selected package")
	ErrMissingServiceName  = errs.Validation("service name is required")
	ErrNegativeGuestCount  = errs.Validation("guest count cannot be negative")
	ErrAmountOverflow      = errs.Validation("computed amount exceeds the supported range")
)

type PriceType string

const (
	PriceTypePerGuest PriceType = "per_guest"
	PriceTypeFlat     PriceType = "flat"
)

func (p PriceType) IsValid() bool {
	switch p {
	case PriceTypePerGuest, PriceTypeFlat:
		return true
	default:
		return false
	}
}

func (p PriceType) String() string {
	return string(p)
}

type Section struct {
	Name           string
	PricePerPerson money.Money
	Items          []string
}

// FoodPackage is the normalized snapshot stored on a booking.
type FoodPackage struct {
	SourcePackageID *string
	Name            string
	PriceType       PriceType
	Price           money.Money
	Sections        []Section
	Inclusions      []string
}

// Template is a venue-defined package as supplied by the catalog.
type Template struct {
	ID         string
	Name       string
	PriceType  PriceType
	Price      money.Money
	Sections   []Section
	Inclusions []string
}

// SectionOverride changes one section of the template. Nil fields keep the
// template value; a nil Items keeps the template items, an empty one clears them.
type SectionOverride struct {
	Name           string
	PricePerPerson *money.Money
	Items          []string
	Remove         bool
}

// Selection is what the caller asked for at booking time.
type Selection struct {
	SourcePackageID  *string
	Name             *string
	PriceType        *PriceType
	Price            *money.Money
	Sections         []SectionOverride
	AddInclusions    []string
	RemoveInclusions []string
}

type Service struct {
	Name  string
	Price money.Money
}

type Totals struct {
	FoodCostTotal money.Money
	ServicesTotal money.Money
	TotalAmount   money.Money
}

// Quote is a normalized package plus the totals derived from it.
type Quote struct {
	Package  FoodPackage
	Services []Service
	Totals   Totals
}
