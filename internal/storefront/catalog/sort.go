package catalog

import (
	"slices"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortNameAsc    SortKey = "name_asc"
	SortNameDesc   SortKey = "name_desc"
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
)

// Sort returns a sorted copy of products. Ties keep their input order and an
// unknown key returns the copy unchanged.
func Sort(products []model.Product, key SortKey) []model.Product {
	out := slices.Clone(products)

	var cmp func(a, b model.Product) int
	switch key {
	case SortPriceAsc:
		cmp = func(a, b model.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		cmp = func(a, b model.Product) int { return b.Price.Cmp(a.Price) }
	case SortNameAsc, SortNameDesc:
		// Collators are not safe for concurrent use.
		col := collate.New(language.English)
		if key == SortNameAsc {
			cmp = func(a, b model.Product) int { return col.CompareString(a.Title, b.Title) }
		} else {
			cmp = func(a, b model.Product) int { return col.CompareString(b.Title, a.Title) }
		}
	case SortPopularity:
		cmp = func(a, b model.Product) int { return b.PurchaseCount - a.PurchaseCount }
	case SortNewest:
		cmp = func(a, b model.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}
