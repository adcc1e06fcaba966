package catalog

import (
	"time"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

func zar(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 8, 0, 0, 0, time.UTC) }

// SeedProducts is a small demo catalog used when no fixture is configured.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:            "prod-iphone-13",
			Title:         "iPhone 13 Pro",
			Slug:          "iphone-13-pro",
			Type:          model.ProductTypeIPhone,
			Price:         zar(8999),
			Brand:         "Apple",
			Categories:    []string{"Smartphones", "Pre-owned"},
			PurchaseCount: 42,
			Status:        "active",
			CreatedAt:     day(2026, time.March, 2),
			Inventory:     model.Inventory{InStock: true},
			IPhone: &model.IPhoneAttributes{
				Model:     "iPhone 13 Pro",
				Condition: "refurbished",
				Network:   "unlocked",
				ColorVariants: []model.IPhoneColorVariant{
					{
						Color: "graphite",
						StorageOptions: []model.StorageOption{
							{
								Capacity: "128gb",
								BatteryGrades: []model.BatteryGrade{
									{Grade: "grade_a", HealthPercentage: 95, PriceAdjustment: zar(500), Quantity: 3},
									{Grade: "grade_b", HealthPercentage: 87, Quantity: 1},
								},
							},
							{
								Capacity:               "256gb",
								StoragePriceAdjustment: zar(1200),
								BatteryGrades: []model.BatteryGrade{
									{Grade: "grade_a", HealthPercentage: 96, PriceAdjustment: zar(500), Quantity: 0},
								},
							},
						},
					},
					{
						Color:           "sierra_blue",
						PriceAdjustment: zar(300),
						StorageOptions: []model.StorageOption{
							{
								Capacity: "128gb",
								BatteryGrades: []model.BatteryGrade{
									{Grade: "grade_a", HealthPercentage: 92, PriceAdjustment: zar(500), Quantity: 2},
								},
							},
						},
					},
				},
			},
		},
		{
			ID:            "prod-af1",
			Title:         "Air Force 1 '07",
			Slug:          "air-force-1-07",
			Type:          model.ProductTypeSneaker,
			Price:         zar(1899),
			Brand:         "Nike",
			Categories:    []string{"Sneakers"},
			PurchaseCount: 87,
			Status:        "active",
			CreatedAt:     day(2026, time.June, 18),
			Inventory:     model.Inventory{InStock: true},
			Sneaker: &model.SneakerAttributes{
				Model:     "Air Force 1",
				StyleCode: "CW2288-111",
				Gender:    "unisex",
				ColorVariants: []model.SneakerColorVariant{
					{
						ColorName: "Triple White",
						ColorCode: "#FFFFFF",
						SizeOptions: []model.SizeOption{
							{Size: "UK 8", Quantity: 4},
							{Size: "UK 9", Quantity: 2},
							{Size: "UK 12", SizePriceAdjustment: zar(100), Quantity: 1},
						},
					},
					{
						ColorName:       "Black",
						ColorCode:       "#000000",
						PriceAdjustment: zar(150),
						SizeOptions: []model.SizeOption{
							{Size: "UK 9", Quantity: 0},
						},
					},
				},
			},
		},
		{
			ID:            "prod-samba",
			Title:         "Samba OG",
			Slug:          "samba-og",
			Type:          model.ProductTypeSneaker,
			Price:         zar(2199),
			Brand:         "Adidas",
			Categories:    []string{"Sneakers"},
			PurchaseCount: 64,
			Status:        "active",
			CreatedAt:     day(2026, time.August, 1),
			Inventory:     model.Inventory{InStock: true},
			Sneaker: &model.SneakerAttributes{
				Model: "Samba",
				ColorVariants: []model.SneakerColorVariant{
					{
						ColorName: "Cloud White",
						SizeOptions: []model.SizeOption{
							{Size: "UK 7", Quantity: 2},
							{Size: "UK 8", Quantity: 5},
						},
					},
				},
			},
		},
		{
			ID:            "prod-magsafe-case",
			Title:         "MagSafe Clear Case",
			Slug:          "magsafe-clear-case",
			Type:          model.ProductTypeAccessory,
			Price:         zar(349),
			Brand:         "Apple",
			Categories:    []string{"Accessories", "Cases"},
			PurchaseCount: 120,
			Status:        "active",
			CreatedAt:     day(2026, time.January, 20),
			Inventory:     model.Inventory{TrackQuantity: true, Quantity: 30, InStock: true},
			Accessory: &model.AccessoryAttributes{
				Type:          "case",
				Compatibility: []string{"iPhone 13", "iPhone 13 Pro"},
				Color:         "clear",
				Material:      "polycarbonate",
			},
		},
		{
			ID:            "prod-usb-c-cable",
			Title:         "USB-C Charge Cable (1 m)",
			Slug:          "usb-c-charge-cable-1-m",
			Type:          model.ProductTypeAccessory,
			Price:         zar(199),
			Brand:         "Apple",
			Categories:    []string{"Accessories", "Chargers"},
			PurchaseCount: 15,
			Status:        "active",
			CreatedAt:     day(2026, time.September, 9),
			Inventory:     model.Inventory{TrackQuantity: true, Quantity: 0},
			Accessory: &model.AccessoryAttributes{
				Type:     "cable",
				Material: "woven",
			},
		},
	}
}
