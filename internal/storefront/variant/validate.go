package variant

import (
	"errors"
	"fmt"

	"github.com/jarco-storefront/core/internal/storefront/model"
)

var (
	ErrDuplicateKey     = errors.New("duplicate variant key")
	ErrNegativeQuantity = errors.New("negative variant quantity")
)

// Validate checks the invariants the resolver assumes but does not enforce:
// unique keys within every variant array and non-negative leaf quantities.
// All violations are returned joined; each wraps ErrDuplicateKey or
// ErrNegativeQuantity.
func Validate(p *model.Product) error {
	if p == nil {
		return nil
	}

	var errs []error
	dup := func(path, key string) {
		errs = append(errs, fmt.Errorf("%w: %s %q", ErrDuplicateKey, path, key))
	}
	neg := func(path string, q int) {
		errs = append(errs, fmt.Errorf("%w: %s has %d", ErrNegativeQuantity, path, q))
	}

	switch p.Type {
	case model.ProductTypeIPhone:
		if p.IPhone == nil {
			break
		}
		colors := map[string]bool{}
		for _, cv := range p.IPhone.ColorVariants {
			if colors[cv.Color] {
				dup("color", cv.Color)
			}
			colors[cv.Color] = true

			capacities := map[string]bool{}
			for _, so := range cv.StorageOptions {
				if capacities[so.Capacity] {
					dup(cv.Color+"/capacity", so.Capacity)
				}
				capacities[so.Capacity] = true

				grades := map[string]bool{}
				for _, bg := range so.BatteryGrades {
					path := cv.Color + "/" + so.Capacity + "/" + bg.Grade
					if grades[bg.Grade] {
						dup(cv.Color+"/"+so.Capacity+"/grade", bg.Grade)
					}
					grades[bg.Grade] = true
					if bg.Quantity < 0 {
						neg(path, bg.Quantity)
					}
				}
			}
		}

	case model.ProductTypeSneaker:
		if p.Sneaker == nil {
			break
		}
		colors := map[string]bool{}
		for _, cv := range p.Sneaker.ColorVariants {
			if colors[cv.ColorName] {
				dup("colorName", cv.ColorName)
			}
			colors[cv.ColorName] = true

			sizes := map[string]bool{}
			for _, so := range cv.SizeOptions {
				if sizes[so.Size] {
					dup(cv.ColorName+"/size", so.Size)
				}
				sizes[so.Size] = true
				if so.Quantity < 0 {
					neg(cv.ColorName+"/"+so.Size, so.Quantity)
				}
			}
		}

	default:
		if p.Inventory.Quantity < 0 {
			neg("inventory", p.Inventory.Quantity)
		}
	}

	return errors.Join(errs...)
}
