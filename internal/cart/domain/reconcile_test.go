package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWithItem(productID, couponApplicable, price string, qty int) *Cart {
	return &Cart{
		SessionID: "s1",
		Items: []CartItem{
			{ProductID: productID, Price: money(price), Qty: qty, CouponApplicable: couponApplicable},
		},
	}
}

func TestApplyCouponInvalid(t *testing.T) {
	cart := cartWithItem("p1", "save10", "50", 1)

	result := cart.ApplyCoupon("bogus123")

	assert.Equal(t, OutcomeInvalid, result.Outcome)
	assert.Equal(t, "Sorry, bogus123 isn't a valid coupon code.", result.Message)
	assert.Empty(t, cart.AppliedCartCoupons)
	assert.Empty(t, cart.InactiveCoupons)
	assert.Empty(t, cart.AppliedItemCoupons)
}

func TestApplyCouponInvalidMessageKeepsRawInput(t *testing.T) {
	cart := &Cart{SessionID: "s1"}

	result := cart.ApplyCoupon("  No Such Code ")

	assert.Equal(t, OutcomeInvalid, result.Outcome)
	assert.Equal(t, "Sorry,   No Such Code  isn't a valid coupon code.", result.Message)
}

func TestApplyItemCouponEligible(t *testing.T) {
	cart := cartWithItem("p1", "save10", "50", 1)

	result := cart.ApplyCoupon("Save 10")

	assert.Equal(t, OutcomeApplied, result.Outcome)
	assert.Equal(t, ScopeItem, result.Scope)
	assert.Equal(t, "Success! Coupon code 'SAVE10' has been applied to your cart.", result.Message)
	assert.Equal(t, []string{"save10"}, cart.AppliedItemCoupons["p1"])
}

func TestApplyItemCouponNoEligibleLine(t *testing.T) {
	cart := cartWithItem("p1", "save20", "50", 1)

	result := cart.ApplyCoupon("save10")

	assert.Equal(t, OutcomeInactive, result.Outcome)
	assert.Equal(t,
		"Oh Snap!. Coupon 'SAVE10' has been added but does not apply to any items in your cart. It will auto apply when eligible.",
		result.Message)
	assert.Equal(t, StringList{"save10"}, cart.InactiveCoupons)

	// 重复添加不产生重复项
	cart.ApplyCoupon("save10")
	assert.Equal(t, StringList{"save10"}, cart.InactiveCoupons)
}

func TestApplyItemCouponDedupPerLine(t *testing.T) {
	cart := cartWithItem("p1", "save10", "50", 1)

	cart.ApplyCoupon("save10")
	cart.ApplyCoupon("save10")

	assert.Equal(t, []string{"save10"}, cart.AppliedItemCoupons["p1"])
}

func TestApplyOrderCouponMovesToFront(t *testing.T) {
	cart := cartWithItem("p1", "", "100", 1)

	cart.ApplyCoupon("order10")
	cart.ApplyCoupon("order15")
	cart.ApplyCoupon("order10")

	assert.Equal(t, StringList{"order10", "order15"}, cart.AppliedCartCoupons)
}

func TestApplyOrderCouponBelowMinOrder(t *testing.T) {
	cart := cartWithItem("p1", "", "100", 1)

	result := cart.ApplyCoupon("order1500")

	assert.Equal(t, OutcomeInactive, result.Outcome)
	assert.Equal(t, StringList{"order1500"}, cart.InactiveCoupons)
	assert.Empty(t, cart.AppliedCartCoupons)
}

func TestReconcileActivatesMinOrderCoupon(t *testing.T) {
	cart := cartWithItem("p1", "", "1000", 1)
	cart.ApplyCoupon("order1500")
	require.Equal(t, StringList{"order1500"}, cart.InactiveCoupons)

	// 加购使小计达到门槛
	cart.AddItem(CartItem{ProductID: "p2", Price: money("600"), Qty: 1})
	cart.Reconcile()

	assert.Equal(t, StringList{"order1500"}, cart.AppliedCartCoupons)
	assert.Empty(t, cart.InactiveCoupons)

	// 再次对账不产生重复
	cart.InactiveCoupons = StringList{"order1500"}
	cart.Reconcile()
	assert.Equal(t, StringList{"order1500"}, cart.AppliedCartCoupons)
}

func TestReconcileActivatesItemCoupon(t *testing.T) {
	cart := &Cart{SessionID: "s1"}
	cart.ApplyCoupon("save10")
	require.Equal(t, StringList{"save10"}, cart.InactiveCoupons)

	cart.AddItem(CartItem{ProductID: "p1", Price: money("50"), Qty: 1, CouponApplicable: "save10"})
	cart.Reconcile()

	assert.Equal(t, []string{"save10"}, cart.AppliedItemCoupons["p1"])
	assert.Empty(t, cart.InactiveCoupons)
}

func TestReconcileDropsUnknownCodes(t *testing.T) {
	cart := cartWithItem("p1", "", "100", 1)
	cart.InactiveCoupons = StringList{"ghost99"}

	cart.Reconcile()

	assert.Empty(t, cart.InactiveCoupons)
	assert.Empty(t, cart.AppliedCartCoupons)
}

func TestReconcileKeepsUnqualifiedInactive(t *testing.T) {
	cart := cartWithItem("p1", "", "100", 1)
	cart.InactiveCoupons = StringList{"order1500", "save10"}

	cart.Reconcile()

	assert.ElementsMatch(t, []string{"order1500", "save10"}, []string(cart.InactiveCoupons))
}

func TestRemoveCouponDoesNotRequalify(t *testing.T) {
	cart := cartWithItem("p1", "save10", "2000", 1)
	cart.ApplyCoupon("save10")
	cart.ApplyCoupon("order1500")
	require.Equal(t, StringList{"order1500"}, cart.AppliedCartCoupons)

	cart.RemoveCoupon("order1500")
	cart.RemoveCoupon("save10")

	assert.Empty(t, cart.AppliedCartCoupons)
	assert.Empty(t, cart.AppliedItemCoupons["p1"])
	assert.Empty(t, cart.InactiveCoupons)

	// 对账不会把用户移除的券自动加回
	cart.Reconcile()
	assert.Empty(t, cart.AppliedCartCoupons)
	assert.Empty(t, cart.AppliedItemCoupons["p1"])
}

func TestOrderCouponQualifiesIgnoresCartCoupons(t *testing.T) {
	// 门槛判定基于不含订单级券的小计
	items := []CartItem{{ProductID: "p1", Price: money("1500"), Qty: 1}}

	assert.True(t, OrderCouponQualifies("order1500", items, nil))
	assert.False(t, OrderCouponQualifies("order1500", []CartItem{{ProductID: "p1", Price: money("1499.99"), Qty: 1}}, nil))
	assert.False(t, OrderCouponQualifies("save10", items, nil))
	assert.False(t, OrderCouponQualifies("unknown", items, nil))
}
