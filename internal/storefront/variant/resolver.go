// Package variant resolves price and stock for a variant selection by walking a
// product's variant tree (color → storage → battery grade for iPhones,
// color → size for sneakers).
package variant

import (
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

// Status is the outcome of walking a variant tree.
type Status int

const (
	// NotFound means the product or selection is absent, or some level of the
	// selection has no matching entry.
	NotFound Status = iota
	// OutOfStock means the full path matched but its quantity is not positive.
	OutOfStock
	// Resolved means the full path matched and is purchasable.
	Resolved
)

func (s Status) String() string {
	switch s {
	case OutOfStock:
		return "out_of_stock"
	case Resolved:
		return "resolved"
	default:
		return "not_found"
	}
}

// Resolution is the result of Resolve.
//
// Price is always the lenient price: the base price plus the adjustments of
// every level that matched before the first miss. Depth counts matched levels.
type Resolution struct {
	Status   Status
	Price    decimal.Decimal
	Quantity int
	Depth    int
}

// InStock reports whether the selection is purchasable.
func (r Resolution) InStock() bool {
	return r.Status == Resolved
}

// Resolve walks p's variant tree following sel. Matching is exact and the first
// entry with a given key wins when the source data carries duplicates.
func Resolve(p *model.Product, sel *model.SelectedVariant) Resolution {
	if p == nil {
		return Resolution{Status: NotFound, Price: decimal.Zero}
	}
	if sel.IsZero() {
		return Resolution{Status: NotFound, Price: p.Price}
	}

	switch p.Type {
	case model.ProductTypeIPhone:
		return resolveIPhone(p, sel)
	case model.ProductTypeSneaker:
		return resolveSneaker(p, sel)
	default:
		return resolveFlat(p)
	}
}

// ResolveStock reports whether sel names a purchasable variant of p.
func ResolveStock(p *model.Product, sel *model.SelectedVariant) bool {
	return Resolve(p, sel).InStock()
}

// ResolvePrice returns p's price with the adjustments along the matched part of sel.
func ResolvePrice(p *model.Product, sel *model.SelectedVariant) decimal.Decimal {
	return Resolve(p, sel).Price
}

func resolveIPhone(p *model.Product, sel *model.SelectedVariant) Resolution {
	res := Resolution{Status: NotFound, Price: p.Price}
	if p.IPhone == nil {
		return res
	}

	color := findIPhoneColor(p.IPhone.ColorVariants, sel.Color)
	if color == nil {
		return res
	}
	res.Price = res.Price.Add(color.PriceAdjustment)
	res.Depth++

	storage := findStorage(color.StorageOptions, sel.Storage)
	if storage == nil {
		return res
	}
	res.Price = res.Price.Add(storage.StoragePriceAdjustment)
	res.Depth++

	grade := findGrade(storage.BatteryGrades, sel.BatteryGrade)
	if grade == nil {
		return res
	}
	res.Price = res.Price.Add(grade.PriceAdjustment)
	res.Depth++

	return leaf(res, grade.Quantity)
}

func resolveSneaker(p *model.Product, sel *model.SelectedVariant) Resolution {
	res := Resolution{Status: NotFound, Price: p.Price}
	if p.Sneaker == nil {
		return res
	}

	color := findSneakerColor(p.Sneaker.ColorVariants, sel.Color)
	if color == nil {
		return res
	}
	res.Price = res.Price.Add(color.PriceAdjustment)
	res.Depth++

	size := findSize(color.SizeOptions, sel.Size)
	if size == nil {
		return res
	}
	res.Price = res.Price.Add(size.SizePriceAdjustment)
	res.Depth++

	return leaf(res, size.Quantity)
}

// resolveFlat handles product types without a variant tree: stock comes from
// the product's own inventory flag and the price is never adjusted.
func resolveFlat(p *model.Product) Resolution {
	res := Resolution{Status: OutOfStock, Price: p.Price, Quantity: p.Inventory.Quantity}
	if p.Inventory.InStock {
		res.Status = Resolved
	}
	return res
}

func leaf(res Resolution, quantity int) Resolution {
	res.Quantity = quantity
	if quantity > 0 {
		res.Status = Resolved
	} else {
		res.Status = OutOfStock
	}
	return res
}

func findIPhoneColor(vs []model.IPhoneColorVariant, color string) *model.IPhoneColorVariant {
	for i := range vs {
		if vs[i].Color == color {
			return &vs[i]
		}
	}
	return nil
}

func findStorage(opts []model.StorageOption, capacity string) *model.StorageOption {
	for i := range opts {
		if opts[i].Capacity == capacity {
			return &opts[i]
		}
	}
	return nil
}

func findGrade(grades []model.BatteryGrade, grade string) *model.BatteryGrade {
	for i := range grades {
		if grades[i].Grade == grade {
			return &grades[i]
		}
	}
	return nil
}

func findSneakerColor(vs []model.SneakerColorVariant, name string) *model.SneakerColorVariant {
	for i := range vs {
		if vs[i].ColorName == name {
			return &vs[i]
		}
	}
	return nil
}

func findSize(opts []model.SizeOption, size string) *model.SizeOption {
	for i := range opts {
		if opts[i].Size == size {
			return &opts[i]
		}
	}
	return nil
}
