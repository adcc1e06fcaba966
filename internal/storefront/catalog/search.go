package catalog

import (
	"strings"

	"github.com/jarco-storefront/core/internal/storefront/model"
)

// DefaultMaxResults caps Search when limit is not positive.
const DefaultMaxResults = 10

// Search returns up to limit products whose title, category, brand or type
// contains query, ignoring case. A non-empty category must also match one of
// the product's categories, ignoring case. An empty query matches everything.
func Search(products []model.Product, query, category string, limit int) []model.Product {
	if limit <= 0 {
		limit = DefaultMaxResults
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var matched []model.Product
	for _, p := range products {
		if category != "" && !hasCategoryFold(p, category) {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}

		matched = append(matched, p)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

func matchesQuery(p model.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(string(p.Type), q) {
		return true
	}
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

func hasCategoryFold(p model.Product, category string) bool {
	for _, c := range p.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
