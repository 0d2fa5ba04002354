package pricing

import (
	"slices"
	"strings"

	"venue-booking/internal/domain/money"
)

// RecalculateFoodPackage merges a selection over an optional template. Each
// field has its own rule; the template is never replaced wholesale.
func RecalculateFoodPackage(sel Selection, tpl *Template) (FoodPackage, error) {
	if sel.SourcePackageID != nil && tpl == nil {
		return FoodPackage{}, ErrTemplateRequired
	}
	if tpl != nil && (sel.SourcePackageID == nil || *sel.SourcePackageID != tpl.ID) {
		return FoodPackage{}, ErrTemplateMismatch
	}

	var base Template
	if tpl != nil {
		base = *tpl
	} else {
		base.PriceType = PriceTypePerGuest
	}

	pkg := FoodPackage{
		Name:      mergeString(sel.Name, base.Name),
		PriceType: mergePriceType(sel.PriceType, base.PriceType),
		Price:     mergeMoney(sel.Price, base.Price),
	}
	if tpl != nil {
		id := tpl.ID
		pkg.SourcePackageID = &id
	}

	sections, err := mergeSections(base.Sections, sel.Sections)
	if err != nil {
		return FoodPackage{}, err
	}
	pkg.Sections = sections
	pkg.Inclusions = mergeInclusions(base.Inclusions, sel.AddInclusions, sel.RemoveInclusions)

	if err := pkg.Validate(); err != nil {
		return FoodPackage{}, err
	}
	return pkg, nil
}

func (p FoodPackage) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingPackageName
	}
	if !p.PriceType.IsValid() {
		return ErrInvalidPriceType
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	for _, s := range p.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return ErrMissingSectionName
		}
		if s.PricePerPerson.IsNegative() {
			return ErrNegativePrice
		}
	}
	return nil
}

func mergeString(override *string, base string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return strings.TrimSpace(*override)
	}
	return base
}

func mergePriceType(override *PriceType, base PriceType) PriceType {
	if override != nil {
		return *override
	}
	return base
}

func mergeMoney(override *money.Money, base money.Money) money.Money {
	if override != nil {
		return *override
	}
	return base
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func mergeSections(base []Section, overrides []SectionOverride) ([]Section, error) {
	out := make([]Section, 0, len(base)+len(overrides))
	for _, s := range base {
		out = append(out, Section{
			Name:           s.Name,
			PricePerPerson: s.PricePerPerson,
			Items:          slices.Clone(s.Items),
		})
	}

	for _, o := range overrides {
		if strings.TrimSpace(o.Name) == "" {
			return nil, ErrMissingSectionName
		}
		idx := slices.IndexFunc(out, func(s Section) bool { return sameName(s.Name, o.Name) })

		if o.Remove {
			if idx >= 0 {
				out = slices.Delete(out, idx, idx+1)
			}
			continue
		}

		if idx < 0 {
			if o.PricePerPerson == nil {
				return nil, ErrMissingSectionPrice
			}
			items := slices.Clone(o.Items)
			if items == nil {
				items = []string{}
			}
			out = append(out, Section{
				Name:           strings.TrimSpace(o.Name),
				PricePerPerson: *o.PricePerPerson,
				Items:          items,
			})
			continue
		}

		if o.PricePerPerson != nil {
			out[idx].PricePerPerson = *o.PricePerPerson
		}
		if o.Items != nil {
			out[idx].Items = slices.Clone(o.Items)
		}
	}
	return out, nil
}

func mergeInclusions(base, add, remove []string) []string {
	out := make([]string, 0, len(base)+len(add))
	contains := func(list []string, v string) bool {
		return slices.ContainsFunc(list, func(x string) bool { return sameName(x, v) })
	}
	for _, inc := range base {
		if contains(remove, inc) || contains(out, inc) {
			continue
		}
		out = append(out, inc)
	}
	for _, inc := range add {
		inc = strings.TrimSpace(inc)
		if inc == "" || contains(out, inc) {
			continue
		}
		out = append(out, inc)
	}
	return out
}
