package variant

import (
	"testing"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func singlePathIPhone(base, colorAdj, storageAdj, gradeAdj int64, qty int) *model.Product {
	return &model.Product{
		Type:  model.ProductTypeIPhone,
		Price: decimal.NewFromInt(base),
		IPhone: &model.IPhoneAttributes{
			ColorVariants: []model.IPhoneColorVariant{{
				Color:           "midnight",
				PriceAdjustment: decimal.NewFromInt(colorAdj),
				StorageOptions: []model.StorageOption{{
					Capacity:               "128gb",
					StoragePriceAdjustment: decimal.NewFromInt(storageAdj),
					BatteryGrades: []model.BatteryGrade{{
						Grade:           "grade_b",
						PriceAdjustment: decimal.NewFromInt(gradeAdj),
						Quantity:        qty,
					}},
				}},
			}},
		},
	}
}

// Property: a fully matched iPhone path costs base + color + storage + grade adjustments.
func TestResolvePriceSumsMatchedAdjustments(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	adj := gen.Int64Range(-5000, 5000)
	properties.Property("price is base plus every adjustment on the path", prop.ForAll(
		func(base, c, s, g int64) bool {
			p := singlePathIPhone(base, c, s, g, 1)
			sel := &model.SelectedVariant{Color: "midnight", Storage: "128gb", BatteryGrade: "grade_b"}
			return ResolvePrice(p, sel).Equal(decimal.NewFromInt(base + c + s + g))
		},
		gen.Int64Range(0, 100000), adj, adj, adj,
	))

	properties.TestingRun(t)
}

// Property: a selection that leaves the tree at any level is never in stock.
func TestResolveStockFalseOffTree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Known keys are lowercase words; generated ones carry an "x-" prefix so
	// they can never collide.
	absent := gen.Identifier().Map(func(s string) string { return "x-" + s })

	properties.Property("unknown color, storage or grade is out of stock", prop.ForAll(
		func(level int, key string, qty int) bool {
			p := singlePathIPhone(1000, 0, 0, 0, qty)
			sel := &model.SelectedVariant{Color: "midnight", Storage: "128gb", BatteryGrade: "grade_b"}
			switch level {
			case 0:
				sel.Color = key
			case 1:
				sel.Storage = key
			default:
				sel.BatteryGrade = key
			}
			return !ResolveStock(p, sel)
		},
		gen.IntRange(0, 2), absent, gen.IntRange(0, 50),
	))

	properties.Property("sneaker off-tree selection is out of stock", prop.ForAll(
		func(key string, onColor bool) bool {
			p := sneakerFixture()
			sel := &model.SelectedVariant{Color: "Chicago", Size: "9"}
			if onColor {
				sel.Color = key
			} else {
				sel.Size = key
			}
			return !ResolveStock(p, sel)
		},
		absent, gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: without a selection the price is the base price.
func TestResolvePriceWithoutSelection(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("nil selection returns base price", prop.ForAll(
		func(base int64, kind int) bool {
			types := []model.ProductType{model.ProductTypeIPhone, model.ProductTypeSneaker, model.ProductTypeAccessory}
			p := singlePathIPhone(base, 100, 200, 300, 1)
			p.Type = types[kind]
			return ResolvePrice(p, nil).Equal(p.Price)
		},
		gen.Int64Range(0, 1_000_000), gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}
