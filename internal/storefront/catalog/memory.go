package catalog

import (
	"context"
	"fmt"

	errx "github.com/jarco-storefront/core/internal/core/error"
	"github.com/jarco-storefront/core/internal/storefront/model"
)

// MemoryRepository serves a fixed product list.
type MemoryRepository struct {
	order []string
	byID  map[string]model.Product
}

// NewMemoryRepository indexes products by ID. A later duplicate ID replaces
// the earlier document but keeps its position.
func NewMemoryRepository(products []model.Product) *MemoryRepository {
	r := &MemoryRepository{byID: make(map[string]model.Product, len(products))}
	for _, p := range products {
		if _, ok := r.byID[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.byID[p.ID] = p
	}
	return r
}

// Get returns a copy of the product. The copy shares attribute blocks with
// the stored document, which callers must treat as read-only.
func (r *MemoryRepository) Get(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errx.NotFound(fmt.Errorf("%w: %s", model.ErrProductNotFound, id), "product not found")
	}
	return &p, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ model.ProductRepository = (*MemoryRepository)(nil)
