package pricing

import (
	"strings"

	"venue-booking/internal/domain/money"
)

// Engine is injected into the booking use cases so pricing rules can be
// swapped per deployment.
type Engine interface {
	RecalculateFoodPackage(sel Selection, tpl *Template) (FoodPackage, error)
	ComputeTotals(pkg FoodPackage, guestCount int, services []Service) (Totals, error)
}

type DefaultEngine struct{}

func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{}
}

func (e *DefaultEngine) RecalculateFoodPackage(sel Selection, tpl *Template) (FoodPackage, error) {
	return RecalculateFoodPackage(sel, tpl)
}

func (e *DefaultEngine) ComputeTotals(pkg FoodPackage, guestCount int, services []Service) (Totals, error) {
	return ComputeTotals(pkg, guestCount, services)
}

// ComputeTotals prices sections per person; PriceType only decides whether the
// package-level price is multiplied by the guest count. Services are flat.
func ComputeTotals(pkg FoodPackage, guestCount int, services []Service) (Totals, error) {
	if guestCount < 0 {
		return Totals{}, ErrNegativeGuestCount
	}
	guests := int64(guestCount)

	food := money.Zero()
	for _, s := range pkg.Sections {
		if s.PricePerPerson.IsNegative() {
			return Totals{}, ErrNegativePrice
		}
		cost, ok := s.PricePerPerson.MulChecked(guests)
		if !ok {
			return Totals{}, ErrAmountOverflow
		}
		if food, ok = food.AddChecked(cost); !ok {
			return Totals{}, ErrAmountOverflow
		}
	}

	if pkg.Price.IsNegative() {
		return Totals{}, ErrNegativePrice
	}
	packageCost := pkg.Price
	if pkg.PriceType == PriceTypePerGuest {
		var ok bool
		if packageCost, ok = pkg.Price.MulChecked(guests); !ok {
			return Totals{}, ErrAmountOverflow
		}
	}
	food, ok := food.AddChecked(packageCost)
	if !ok {
		return Totals{}, ErrAmountOverflow
	}

	servicesTotal := money.Zero()
	for _, svc := range services {
		if err := svc.Validate(); err != nil {
			return Totals{}, err
		}
		if servicesTotal, ok = servicesTotal.AddChecked(svc.Price); !ok {
			return Totals{}, ErrAmountOverflow
		}
	}

	total, ok := food.AddChecked(servicesTotal)
	if !ok {
		return Totals{}, ErrAmountOverflow
	}

	return Totals{
		FoodCostTotal: food,
		ServicesTotal: servicesTotal,
		TotalAmount:   total,
	}, nil
}

func (s Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingServiceName
	}
	if s.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
