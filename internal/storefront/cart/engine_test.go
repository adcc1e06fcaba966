package cart

import (
	"fmt"
	"testing"
	"time"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

// testEngine returns an engine whose clock advances one minute per call and
// whose keys are item_1, item_2, ...
func testEngine() *Engine {
	tick, seq := 0, 0
	return NewEngine(
		WithClock(func() time.Time {
			tick++
			return t0.Add(time.Duration(tick) * time.Minute)
		}),
		WithKeyFunc(func() string {
			seq++
			return fmt.Sprintf("item_%d", seq)
		}),
	)
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func plainProduct(id string, price int64) *model.Product {
	return &model.Product{ID: id, Type: model.ProductTypeAccessory, Price: d(price), Inventory: model.Inventory{InStock: true}}
}

func iphone() *model.Product {
	return &model.Product{
		ID:    "iphone-13",
		Type:  model.ProductTypeIPhone,
		Price: d(10000),
		IPhone: &model.IPhoneAttributes{ColorVariants: []model.IPhoneColorVariant{{
			Color: "space_black",
			StorageOptions: []model.StorageOption{{
				Capacity:               "256gb",
				StoragePriceAdjustment: d(1000),
				BatteryGrades: []model.BatteryGrade{
					{Grade: "grade_a", PriceAdjustment: d(1000), Quantity: 5},
					{Grade: "grade_b", PriceAdjustment: d(500), Quantity: 1},
				},
			}},
		}}},
	}
}

func TestNewCart(t *testing.T) {
	e := testEngine()
	c := e.New("session_abc", 0)

	assert.Equal(t, "session_abc", c.SessionID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.True(t, c.Totals.Total.IsZero())
	assert.Equal(t, c.LastActivity.Add(DefaultTTL), c.ExpiresAt)

	c = e.New("s", time.Hour)
	assert.Equal(t, c.LastActivity.Add(time.Hour), c.ExpiresAt)
}

// Scenario: price 1000, quantity 2, no variant.
func TestAddItemPlainProduct(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 1000), 2, nil)

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, "item_1", item.Key)
	assert.Equal(t, "p1", item.ProductRef)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "1000", item.Price.String())
	assert.Nil(t, item.SelectedVariant)
	assert.Equal(t, t0.Add(2*time.Minute), item.AddedAt)

	assert.Equal(t, "2000", c.Totals.Subtotal.String())
	assert.Equal(t, "300", c.Totals.Tax.String())
	assert.True(t, c.Totals.Shipping.IsZero())
	assert.True(t, c.Totals.Discount.IsZero())
	assert.Equal(t, "2300", c.Totals.Total.String())
	assert.Equal(t, item.AddedAt, c.LastActivity)
}

// Scenario: adding the same product and selection twice merges into one line.
func TestAddItemMergesMatchingLine(t *testing.T) {
	e := testEngine()
	p := iphone()
	sel := &model.SelectedVariant{Color: "space_black", Storage: "256gb", BatteryGrade: "grade_a"}

	c := e.AddItem(e.New("s", 0), p, 1, sel)
	first := c.Items[0]

	// A later price change must not touch the captured price.
	p.Price = d(20000)
	c = e.AddItem(c, p, 2, &model.SelectedVariant{Color: "space_black", Storage: "256gb", BatteryGrade: "grade_a"})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, first.Key, c.Items[0].Key)
	assert.Equal(t, "12000", c.Items[0].Price.String())
	assert.Equal(t, first.AddedAt, c.Items[0].AddedAt)
	assert.Equal(t, "36000", c.Totals.Subtotal.String())
}

func TestAddItemDifferentVariantAppends(t *testing.T) {
	e := testEngine()
	p := iphone()

	c := e.AddItem(e.New("s", 0), p, 1, &model.SelectedVariant{Color: "space_black", Storage: "256gb", BatteryGrade: "grade_a"})
	c = e.AddItem(c, p, 1, &model.SelectedVariant{Color: "space_black", Storage: "256gb", BatteryGrade: "grade_b"})
	c = e.AddItem(c, p, 1, nil)

	require.Len(t, c.Items, 3)
	assert.Equal(t, "12000", c.Items[0].Price.String())
	assert.Equal(t, "11500", c.Items[1].Price.String())
	assert.Equal(t, "10000", c.Items[2].Price.String())
	assert.Equal(t, "33500", c.Totals.Subtotal.String())
}

func TestAddItemNilAndEmptySelectionMatch(t *testing.T) {
	e := testEngine()
	p := plainProduct("p1", 50)

	c := e.AddItem(e.New("s", 0), p, 1, nil)
	c = e.AddItem(c, p, 1, &model.SelectedVariant{})
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	e := testEngine()
	p := plainProduct("p1", 100)
	sel := &model.SelectedVariant{Color: "black"}

	before := e.AddItem(e.New("s", 0), p, 1, sel)
	after := e.AddItem(before, p, 4, sel)

	assert.Equal(t, 1, before.Items[0].Quantity)
	assert.Equal(t, "115", before.Totals.Total.String())
	assert.Equal(t, 5, after.Items[0].Quantity)

	// The stored selection is a copy of the caller's.
	sel.Color = "white"
	assert.Equal(t, "black", after.Items[0].SelectedVariant.Color)
	after.Items[0].SelectedVariant.Color = "red"
	assert.Equal(t, "black", before.Items[0].SelectedVariant.Color)
}

func TestRemoveItem(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 100), 1, nil)
	c = e.AddItem(c, plainProduct("p2", 200), 1, nil)

	once := e.RemoveItem(c, "item_1")
	twice := e.RemoveItem(once, "item_1")

	require.Len(t, once.Items, 1)
	assert.Equal(t, "item_2", once.Items[0].Key)
	assert.Equal(t, once.Items, twice.Items)
	assert.Equal(t, once.Totals.Subtotal.String(), twice.Totals.Subtotal.String())
	assert.Equal(t, "230", twice.Totals.Total.String())
	assert.Len(t, c.Items, 2, "input cart keeps its items")

	missing := e.RemoveItem(c, "nope")
	assert.Len(t, missing.Items, 2)
	assert.True(t, missing.LastActivity.After(c.LastActivity))
}

func TestUpdateItemQuantity(t *testing.T) {
	e := testEngine()
	p := plainProduct("p1", 100)
	c := e.AddItem(e.New("s", 0), p, 1, nil)

	p.Price = d(999)
	updated := e.UpdateItemQuantity(c, "item_1", 4)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 4, updated.Items[0].Quantity)
	assert.Equal(t, "100", updated.Items[0].Price.String())
	assert.Equal(t, "460", updated.Totals.Total.String())
	assert.Equal(t, 1, c.Items[0].Quantity)

	unknown := e.UpdateItemQuantity(c, "nope", 9)
	assert.Equal(t, c.Items, unknown.Items)
}

// Scenario: updating the only line to zero empties the cart.
func TestUpdateItemQuantityZeroRemoves(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 100), 3, nil)

	for _, q := range []int{0, -1} {
		empty := e.UpdateItemQuantity(c, "item_1", q)
		assert.Empty(t, empty.Items)
		assert.True(t, empty.Totals.Subtotal.IsZero())
		assert.True(t, empty.Totals.Tax.IsZero())
		assert.True(t, empty.Totals.Shipping.IsZero())
		assert.True(t, empty.Totals.Discount.IsZero())
		assert.True(t, empty.Totals.Total.IsZero())
	}
}

func TestShippingAndCouponFeedTotals(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 1000), 1, nil)

	c = e.SetShipping(c, &model.ShippingSelection{ID: "courier", Price: d(99)})
	assert.Equal(t, "1249", c.Totals.Total.String())

	c = e.ApplyCoupon(c, model.AppliedCoupon{Code: "SAVE100", DiscountAmount: d(100), DiscountType: model.DiscountFixed})
	assert.Equal(t, "100", c.Totals.Discount.String())
	assert.Equal(t, "1149", c.Totals.Total.String())

	// Mutations keep carrying shipping and discount.
	c = e.UpdateItemQuantity(c, "item_1", 2)
	assert.Equal(t, "2299", c.Totals.Total.String())

	c = e.RemoveCoupon(c)
	assert.Nil(t, c.AppliedCoupon)
	assert.Equal(t, "2399", c.Totals.Total.String())

	c = e.SetShipping(c, nil)
	assert.Nil(t, c.ShippingMethod)
	assert.Equal(t, "2300", c.Totals.Total.String())
}

func TestClear(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 1000), 1, nil)
	c = e.SetShipping(c, &model.ShippingSelection{ID: "paxi", Price: d(60)})
	c = e.ApplyCoupon(c, model.AppliedCoupon{Code: "X", DiscountAmount: d(10)})

	c = e.Clear(c)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.AppliedCoupon)
	require.NotNil(t, c.ShippingMethod)
	assert.Equal(t, "60", c.Totals.Total.String())
}

func TestFindAndItemCount(t *testing.T) {
	e := testEngine()
	c := e.AddItem(e.New("s", 0), plainProduct("p1", 1), 2, nil)
	c = e.AddItem(c, plainProduct("p2", 1), 3, nil)

	it, ok := Find(c, "item_2")
	require.True(t, ok)
	assert.Equal(t, "p2", it.ProductRef)
	_, ok = Find(c, "item_9")
	assert.False(t, ok)
	assert.Equal(t, 5, ItemCount(c))
}

func TestRecalculateKeepsLastActivity(t *testing.T) {
	c := model.Cart{
		SessionID:    "s",
		Items:        []model.LineItem{{Key: "a", Quantity: 2, Price: d(10)}},
		LastActivity: t0,
	}
	c = Recalculate(c)
	assert.Equal(t, "23", c.Totals.Total.String())
	assert.Equal(t, t0, c.LastActivity)
}

func TestNewItemKeyUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		k := NewItemKey()
		assert.Regexp(t, `^item_[0-9a-f-]{36}$`, k)
		assert.False(t, seen[k])
		seen[k] = true
	}
}
