// Package catalog filters, sorts, searches and loads product documents.
package catalog

import (
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

// PriceRange bounds the product base price, both ends inclusive.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Criteria selects products. Zero-valued fields are ignored.
type Criteria struct {
	Category    string
	Brand       string
	PriceRange  *PriceRange
	InStock     *bool
	ProductType model.ProductType
}

func (c Criteria) match(p *model.Product) bool {
	if c.Category != "" && !p.HasCategory(c.Category) {
		return false
	}
	if c.Brand != "" && p.Brand != c.Brand {
		return false
	}
	if r := c.PriceRange; r != nil && (p.Price.LessThan(r.Min) || p.Price.GreaterThan(r.Max)) {
		return false
	}
	if c.InStock != nil && p.Inventory.InStock != *c.InStock {
		return false
	}
	if c.ProductType != "" && p.Type != c.ProductType {
		return false
	}
	return true
}

// Filter returns the products matching c, in their original order.
func Filter(products []model.Product, c Criteria) []model.Product {
	out := make([]model.Product, 0, len(products))
	for i := range products {
		if c.match(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
