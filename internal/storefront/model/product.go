package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType tags which attribute block of a Product carries its variant tree.
type ProductType string

const (
	ProductTypeIPhone    ProductType = "iphone"
	ProductTypeSneaker   ProductType = "sneaker"
	ProductTypeAccessory ProductType = "accessory"
)

// HasVariantTree reports whether products of this type are priced per variant.
func (t ProductType) HasVariantTree() bool {
	return t == ProductTypeIPhone || t == ProductTypeSneaker
}

// Product mirrors the CMS product document as returned by the product detail query.
// Only the attribute block matching Type is consulted.
type Product struct {
	ID             string           `json:"_id"`
	Title          string           `json:"title"`
	Slug           string           `json:"slug,omitempty"`
	Type           ProductType      `json:"productType"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	Brand          string           `json:"brand,omitempty"`
	Categories     []string         `json:"categories,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	PurchaseCount  int              `json:"purchaseCount,omitempty"`
	Status         string           `json:"status,omitempty"`
	CreatedAt      time.Time        `json:"_createdAt"`
	Inventory      Inventory        `json:"inventory"`

	IPhone    *IPhoneAttributes    `json:"iphone,omitempty"`
	Sneaker   *SneakerAttributes   `json:"sneaker,omitempty"`
	Accessory *AccessoryAttributes `json:"accessory,omitempty"`
}

// Inventory is the product-level stock block, used for products without a variant tree.
type Inventory struct {
	TrackQuantity  bool `json:"trackQuantity"`
	Quantity       int  `json:"quantity"`
	AllowBackorder bool `json:"allowBackorder"`
	InStock        bool `json:"inStock"`
}

// HasCategory reports whether title is one of the product's category titles.
func (p *Product) HasCategory(title string) bool {
	for _, c := range p.Categories {
		if c == title {
			return true
		}
	}
	return false
}

type IPhoneAttributes struct {
	Model         string               `json:"model,omitempty"`
	Condition     string               `json:"condition,omitempty"`
	Network       string               `json:"network,omitempty"`
	ColorVariants []IPhoneColorVariant `json:"colorVariants"`
}

type IPhoneColorVariant struct {
	Color           string          `json:"color"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	Images          []string        `json:"images,omitempty"`
	StorageOptions  []StorageOption `json:"storageOptions"`
}

type StorageOption struct {
	Capacity               string          `json:"capacity"`
	StoragePriceAdjustment decimal.Decimal `json:"storagePriceAdjustment"`
	BatteryGrades          []BatteryGrade  `json:"batteryGrades"`
}

type BatteryGrade struct {
	Grade            string          `json:"grade"`
	HealthPercentage int             `json:"healthPercentage,omitempty"`
	PriceAdjustment  decimal.Decimal `json:"priceAdjustment"`
	Quantity         int             `json:"quantity"`
}

type SneakerAttributes struct {
	Model         string                `json:"model,omitempty"`
	StyleCode     string                `json:"styleCode,omitempty"`
	Gender        string                `json:"gender,omitempty"`
	ColorVariants []SneakerColorVariant `json:"colorVariants"`
}

type SneakerColorVariant struct {
	ColorName       string          `json:"colorName"`
	ColorCode       string          `json:"colorCode,omitempty"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
	Images          []string        `json:"images,omitempty"`
	SizeOptions     []SizeOption    `json:"sizeOptions"`
}

type SizeOption struct {
	Size                string          `json:"size"`
	SizePriceAdjustment decimal.Decimal `json:"sizePriceAdjustment"`
	Quantity            int             `json:"quantity"`
}

type AccessoryAttributes struct {
	Type          string   `json:"type,omitempty"`
	Compatibility []string `json:"compatibility,omitempty"`
	Color         string   `json:"color,omitempty"`
	Material      string   `json:"material,omitempty"`
}
