package variant

import (
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

// ColorOption is the top level of a normalized variant listing. Storage is set
// for iPhones and Sizes for sneakers.
type ColorOption struct {
	Name            string          `json:"name"`
	ColorCode       string          `json:"colorCode,omitempty"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	Images          []string        `json:"images"`
	Storage         []StorageChoice `json:"storageOptions,omitempty"`
	Sizes           []SizeChoice    `json:"sizes,omitempty"`
}

type StorageChoice struct {
	Capacity        string          `json:"capacity"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	BatteryGrades   []GradeChoice   `json:"batteryGrades"`
}

type GradeChoice struct {
	Grade            string          `json:"grade"`
	HealthPercentage int             `json:"healthPercentage,omitempty"`
	PriceAdjustment  decimal.Decimal `json:"priceAdjustment"`
	Quantity         int             `json:"quantity"`
}

type SizeChoice struct {
	Size            string          `json:"size"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	Quantity        int             `json:"quantity"`
}

// Options flattens p's variant tree into a uniform listing for selectors.
// It returns nil for a nil product or a type without a variant tree, and an
// empty slice when the tree block is missing.
func Options(p *model.Product) []ColorOption {
	if p == nil {
		return nil
	}

	switch p.Type {
	case model.ProductTypeIPhone:
		if p.IPhone == nil {
			return []ColorOption{}
		}
		out := make([]ColorOption, 0, len(p.IPhone.ColorVariants))
		for _, cv := range p.IPhone.ColorVariants {
			opt := ColorOption{
				Name:            cv.Color,
				PriceAdjustment: cv.PriceAdjustment,
				Images:          nonNil(cv.Images),
				Storage:         make([]StorageChoice, 0, len(cv.StorageOptions)),
			}
			for _, so := range cv.StorageOptions {
				sc := StorageChoice{
					Capacity:        so.Capacity,
					PriceAdjustment: so.StoragePriceAdjustment,
					BatteryGrades:   make([]GradeChoice, 0, len(so.BatteryGrades)),
				}
				for _, bg := range so.BatteryGrades {
					sc.BatteryGrades = append(sc.BatteryGrades, GradeChoice{
						Grade:            bg.Grade,
						HealthPercentage: bg.HealthPercentage,
						PriceAdjustment:  bg.PriceAdjustment,
						Quantity:         bg.Quantity,
					})
				}
				opt.Storage = append(opt.Storage, sc)
			}
			out = append(out, opt)
		}
		return out

	case model.ProductTypeSneaker:
		if p.Sneaker == nil {
			return []ColorOption{}
		}
		out := make([]ColorOption, 0, len(p.Sneaker.ColorVariants))
		for _, cv := range p.Sneaker.ColorVariants {
			opt := ColorOption{
				Name:            cv.ColorName,
				ColorCode:       cv.ColorCode,
				PriceAdjustment: cv.PriceAdjustment,
				Images:          nonNil(cv.Images),
				Sizes:           make([]SizeChoice, 0, len(cv.SizeOptions)),
			}
			for _, so := range cv.SizeOptions {
				opt.Sizes = append(opt.Sizes, SizeChoice{
					Size:            so.Size,
					PriceAdjustment: so.SizePriceAdjustment,
					Quantity:        so.Quantity,
				})
			}
			out = append(out, opt)
		}
		return out

	default:
		return nil
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
