//go:build unit

package pricing_test

import (
	"testing"

	"venue-booking/internal/domain/money"
	"venue-booking/internal/domain/pricing"
	"venue-booking/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b money.Money) bool { return a.Minor() == b.Minor() }),
	cmpopts.EquateEmpty(),
}

func goldTemplate() *pricing.Template {
	return &pricing.Template{
		ID:        "gold",
		Name:      "Gold",
		PriceType: pricing.PriceTypePerGuest,
		Price:     money.New(200),
		Sections: []pricing.Section{
			{Name: "Starters", PricePerPerson: money.New(100), Items: []string{"Soup", "Salad"}},
			{Name: "Mains", PricePerPerson: money.New(300), Items: []string{"Curry", "Rice"}},
			{Name: "Desserts", PricePerPerson: money.New(80), Items: []string{"Ice cream"}},
		},
		Inclusions: []string{"Welcome drink", "DJ", "Decor"},
	}
}

func TestRecalculateFoodPackage(t *testing.T) {
	t.Run("上書きなしはテンプレートのまま", func(t *testing.T) {
		tpl := goldTemplate()
		actual, err := pricing.RecalculateFoodPackage(pricing.Selection{SourcePackageID: ptr.Of("gold")}, tpl)
		require.NoError(t, err)

		expected := pricing.FoodPackage{
			SourcePackageID: ptr.Of("gold"),
			Name:            tpl.Name,
			PriceType:       tpl.PriceType,
			Price:           tpl.Price,
			Sections:        tpl.Sections,
			Inclusions:      tpl.Inclusions,
		}
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("FoodPackage mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("フィールド単位で上書き", func(t *testing.T) {
		tpl := goldTemplate()
		sel := pricing.Selection{
			SourcePackageID: ptr.Of("gold"),
			Sections: []pricing.SectionOverride{
				{Name: " mains ", PricePerPerson: ptr.Of(money.New(350))},
				{Name: "Starters", Items: []string{"Soup"}},
				{Name: "desserts", Remove: true},
				{Name: "Live counter", PricePerPerson: ptr.Of(money.New(120)), Items: []string{"Dosa"}},
			},
			AddInclusions:    []string{"Photo booth", "dj"},
			RemoveInclusions: []string{"decor"},
		}

		actual, err := pricing.RecalculateFoodPackage(sel, tpl)
		require.NoError(t, err)

		expected := pricing.FoodPackage{
			SourcePackageID: ptr.Of("gold"),
			Name:            "Gold",
			PriceType:       pricing.PriceTypePerGuest,
			Price:           money.New(200),
			Sections: []pricing.Section{
				{Name: "Starters", PricePerPerson: money.New(100), Items: []string{"Soup"}},
				{Name: "Mains", PricePerPerson: money.New(350), Items: []string{"Curry", "Rice"}},
				{Name: "Live counter", PricePerPerson: money.New(120), Items: []string{"Dosa"}},
			},
			Inclusions: []string{"Welcome drink", "DJ", "Photo booth"},
		}
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("FoodPackage mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("テンプレートを変更しない", func(t *testing.T) {
		tpl := goldTemplate()
		_, err := pricing.RecalculateFoodPackage(pricing.Selection{
			SourcePackageID: ptr.Of("gold"),
			Sections:        []pricing.SectionOverride{{Name: "Mains", Items: []string{"Biryani"}}},
		}, tpl)
		require.NoError(t, err)

		if diff := cmp.Diff(goldTemplate(), tpl, cmpOpts...); diff != "" {
			t.Errorf("template mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("テンプレートなしのカスタムパッケージ", func(t *testing.T) {
		actual, err := pricing.RecalculateFoodPackage(pricing.Selection{
			Name:     ptr.Of("Custom"),
			Price:    ptr.Of(money.New(450)),
			Sections: []pricing.SectionOverride{{Name: "Buffet", PricePerPerson: ptr.Of(money.New(50))}},
		}, nil)
		require.NoError(t, err)

		require.Nil(t, actual.SourcePackageID)
		require.Equal(t, pricing.PriceTypePerGuest, actual.PriceType)
		require.Len(t, actual.Sections, 1)
	})

	t.Run("入力検証", func(t *testing.T) {
		cases := []struct {
			name  string
			sel   pricing.Selection
			tpl   *pricing.Template
			errIs error
		}{
			{
				name:  "名前なしNG",
				sel:   pricing.Selection{Price: ptr.Of(money.New(100))},
				errIs: pricing.ErrMissingPackageName,
			},
			{
				name:  "負の価格NG",
				sel:   pricing.Selection{Name: ptr.Of("X"), Price: ptr.Of(money.New(-1))},
				errIs: pricing.ErrNegativePrice,
			},
			{
				name:  "不正な価格種別NG",
				sel:   pricing.Selection{Name: ptr.Of("X"), PriceType: ptr.Of(pricing.PriceType("hourly"))},
				errIs: pricing.ErrInvalidPriceType,
			},
			{
				name: "新規セクションに価格なしNG",
				sel: pricing.Selection{
					SourcePackageID: ptr.Of("gold"),
					Sections:        []pricing.SectionOverride{{Name: "Snacks"}},
				},
				tpl:   goldTemplate(),
				errIs: pricing.ErrMissingSectionPrice,
			},
			{
				name:  "テンプレート不一致NG",
				sel:   pricing.Selection{SourcePackageID: ptr.Of("silver")},
				tpl:   goldTemplate(),
				errIs: pricing.ErrTemplateMismatch,
			},
			{
				name:  "テンプレート未取得NG",
				sel:   pricing.Selection{SourcePackageID: ptr.Of("gold")},
				errIs: pricing.ErrTemplateRequired,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := pricing.RecalculateFoodPackage(c.sel, c.tpl)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
