package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(money(want)), "want %s got %s", want, got)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil, nil)

	assertMoney(t, "0", totals.Subtotal)
	assertMoney(t, "0", totals.Promotions)
	assertMoney(t, "0", totals.OrderDiscount)
	assertMoney(t, "0", totals.Shipping)
	assertMoney(t, "0", totals.ShippingDiscount)
	assertMoney(t, "0", totals.Taxes)
	assertMoney(t, "0", totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotalsWithItemCouponAndPromotion(t *testing.T) {
	// $50 x2，商品券 10% + 自动促销 10%：行净额 80.00，
	// 购物车促销 8.00，税 (80-8)*5% = 3.60，运费 60 不免
	items := []CartItem{
		{
			ProductID:  "serum-1",
			Price:      money("50"),
			Qty:        2,
			Promotions: StringList{"10% off on skin essentials"},
		},
	}
	applied := map[string][]string{"serum-1": {"save10"}}

	totals := ComputeTotals(items, applied, nil)

	assertMoney(t, "80.00", totals.Subtotal)
	assertMoney(t, "8.00", totals.Promotions)
	assertMoney(t, "0", totals.OrderDiscount)
	assertMoney(t, "60", totals.Shipping)
	assertMoney(t, "0", totals.ShippingDiscount)
	assertMoney(t, "3.60", totals.Taxes)
	assertMoney(t, "135.60", totals.Total)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestComputeTotalsRoundsPerLineBeforeSumming(t *testing.T) {
	// 每行 10.005 → 10.01（行级取整），两行合计 20.02 而非 20.01
	items := []CartItem{
		{ProductID: "a", Price: money("10.005"), Qty: 1},
		{ProductID: "b", Price: money("10.005"), Qty: 1},
	}

	totals := ComputeTotals(items, nil, nil)

	assertMoney(t, "20.02", totals.Subtotal)
}

func TestComputeTotalsOrderCouponWaivesShipping(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Price: money("100"), Qty: 1},
	}

	totals := ComputeTotals(items, nil, []string{"order15"})

	assertMoney(t, "100", totals.Subtotal)
	assertMoney(t, "15.00", totals.OrderDiscount)
	assertMoney(t, "10.00", totals.Promotions)
	assertMoney(t, "60", totals.Shipping)
	assertMoney(t, "60", totals.ShippingDiscount)
	// (100 - 15 - 10) * 5% = 3.75
	assertMoney(t, "3.75", totals.Taxes)
	// 100 - 15 - 10 + 60 - 60 + 3.75
	assertMoney(t, "78.75", totals.Total)
}

func TestComputeTotalsNegativeTaxableClamped(t *testing.T) {
	// 折扣率封顶为 1：行净额 0，税基不为负
	items := []CartItem{
		{ProductID: "p1", Price: money("40"), Qty: 1},
	}
	applied := map[string][]string{
		"p1": {"first25", "save20", "christmas20", "newyear15", "save15", "save10"},
	}

	totals := ComputeTotals(items, applied, nil)

	assertMoney(t, "0.00", totals.Subtotal)
	assertMoney(t, "0", totals.Taxes)
	// 只剩运费
	assertMoney(t, "60.00", totals.Total)
}

func TestComputeTotalsFullDiscountStack(t *testing.T) {
	// 行净额不足抵扣订单级折扣 + 购物车促销时税基钳到 0
	items := []CartItem{
		{ProductID: "p1", Price: money("10"), Qty: 1},
	}

	totals := ComputeTotals(items, nil, []string{"order20", "order15", "order10", "orderlevel15", "cartlevel15", "sitewide10"})

	// 订单级合计率 0.85
	assertMoney(t, "10", totals.Subtotal)
	assertMoney(t, "8.50", totals.OrderDiscount)
	assertMoney(t, "1.00", totals.Promotions)
	// 税基 10 - 8.5 - 1 = 0.5
	assertMoney(t, "0.03", totals.Taxes)
	assertMoney(t, "0.53", totals.Total)
}
