package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/jarco-storefront/core/internal/storefront/variant"
	logx "github.com/jarco-storefront/core/pkg/logger"
)

// Load decodes a JSON array of product documents. Products whose variant tree
// fails variant.Validate are kept and logged.
func Load(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	for i := range products {
		if err := variant.Validate(&products[i]); err != nil {
			logx.Warn().Err(err).Str("productID", products[i].ID).Msg("product has a malformed variant tree")
		}
	}
	return products, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog fixture: %w", err)
	}
	defer f.Close()
	return Load(f)
}
