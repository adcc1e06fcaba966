package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jarco-storefront/core/internal/core"
	errx "github.com/jarco-storefront/core/internal/core/error"
	"github.com/jarco-storefront/core/internal/format"
	"github.com/jarco-storefront/core/internal/storefront/cart"
	"github.com/jarco-storefront/core/internal/storefront/catalog"
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/jarco-storefront/core/internal/storefront/pricing"
	"github.com/jarco-storefront/core/internal/storefront/repo"
	"github.com/jarco-storefront/core/internal/storefront/service"
	logx "github.com/jarco-storefront/core/pkg/logger"
	pkgredis "github.com/jarco-storefront/core/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// AppConfig defines all configurable parameters for the storefront demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string           `envconfig:"LOG_LEVEL"`

	// Infrastructure
	Redis pkgredis.Config

	// Storefront
	Cart    model.CartConfig
	Catalog model.CatalogConfig
}

func main() {
	ctx := context.Background()
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment, Level: cfg.LogLevel})

	products := catalog.SeedProducts()
	if cfg.Catalog.Fixture != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Fixture)
		if err != nil {
			logx.Fatal().Err(err).Str("path", cfg.Catalog.Fixture).Msg("failed to load catalog fixture")
		}
		products = loaded
	}
	logx.Info().Int("products", len(products)).Msg("catalog loaded")

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise redis client")
	}
	defer rdb.Close()

	maxDiscount := decimal.NewFromInt(1000)
	rules := pricing.NewMemoryRules(
		[]pricing.Coupon{{
			Code: "WELCOME10", DiscountType: model.DiscountPercentage, DiscountValue: decimal.NewFromInt(10),
			MaximumDiscount: &maxDiscount, ValidUntil: time.Now().AddDate(0, 1, 0), IsActive: true,
		}},
		[]pricing.ShippingMethod{{
			ID: "paxi", Provider: pricing.ProviderPaxi, Name: "Paxi",
			Price: decimal.RequireFromString("59.95"), FreeThreshold: decimal.NewFromInt(15000), IsActive: true,
		}},
	)

	svc := service.NewCartService(
		catalog.NewMemoryRepository(products),
		rules,
		repo.NewRedisCartRepository(rdb, cfg.Cart),
		cart.NewEngine(),
		cfg.Cart,
	)

	fmt.Println("Catalog by popularity:")
	for _, p := range catalog.Sort(products, catalog.SortPopularity) {
		fmt.Printf("  %-28s %-14s /%s (added %s)\n", p.Title, format.Price(p.Price), format.Slug(p.Title), format.Date(p.CreatedAt))
	}

	sessionID := cart.NewSessionID()
	if _, err := svc.Open(ctx, sessionID); err != nil {
		logx.Fatal().Err(err).Str("sessionID", sessionID).Msg("failed to open cart")
	}
	fmt.Printf("\nSession %s\n", sessionID)

	steps := []struct {
		description string
		run         func() (*model.Cart, error)
	}{
		{"Add iPhone 13 Pro graphite 128GB grade A", func() (*model.Cart, error) {
			return svc.AddItem(ctx, sessionID, "prod-iphone-13", 1, &model.SelectedVariant{Color: "graphite", Storage: "128gb", BatteryGrade: "grade_a"})
		}},
		{"Add two pairs of Air Force 1 UK 9", func() (*model.Cart, error) {
			return svc.AddItem(ctx, sessionID, "prod-af1", 2, &model.SelectedVariant{Color: "Triple White", Size: "UK 9"})
		}},
		{"Choose Paxi", func() (*model.Cart, error) {
			return svc.SelectShipping(ctx, sessionID, "paxi")
		}},
		{"Apply WELCOME10", func() (*model.Cart, error) {
			return svc.ApplyCoupon(ctx, sessionID, "welcome10")
		}},
	}

	for i, step := range steps {
		fmt.Printf("\nStep %d: %s\n", i+1, step.description)
		c, err := step.run()
		if err != nil {
			logx.Fatal().Err(err).Int("step", i+1).Int("status", errx.StatusOf(err)).Msg("cart step failed")
		}
		printCart(c)
	}
}

func printCart(c *model.Cart) {
	for _, it := range c.Items {
		fmt.Printf("  %s x%d @ %s\n", it.ProductRef, it.Quantity, format.Price(it.Price))
	}
	t := c.Totals
	fmt.Printf("  subtotal %s  shipping %s  VAT %s  discount %s\n", format.Price(t.Subtotal), format.Price(t.Shipping), format.Price(t.Tax), format.Price(t.Discount))
	fmt.Printf("  total %s (%d items, last activity %s)\n", format.Price(t.Total), cart.ItemCount(*c), format.DateTime(c.LastActivity))
}
