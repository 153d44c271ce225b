package domain

import "fmt"

// ApplyOutcome 优惠券应用结果
type ApplyOutcome string

const (
	// OutcomeInvalid 未知优惠券码，状态不变
	OutcomeInvalid ApplyOutcome = "invalid"
	// OutcomeInactive 有效但当前不满足条件，进入 inactive 列表等待自动激活
	OutcomeInactive ApplyOutcome = "inactive"
	// OutcomeApplied 立即生效
	OutcomeApplied ApplyOutcome = "applied"
)

// ApplyResult 优惠券应用结果与用户可见消息
type ApplyResult struct {
	Outcome ApplyOutcome
	Code    string
	Scope   CouponScope
	Message string
}

// OrderCouponQualifies 订单级优惠券当前是否满足条件：
// 无最低金额门槛即满足，否则要求小计（不含订单级优惠券）≥ minOrder
func OrderCouponQualifies(code string, items []CartItem, appliedItemCoupons map[string][]string) bool {
	def, ok := LookupCoupon(code)
	if !ok || def.Scope != ScopeOrder {
		return false
	}
	if !def.HasMinOrder() {
		return true
	}
	totals := ComputeTotals(items, appliedItemCoupons, nil)
	return totals.Subtotal.GreaterThanOrEqual(def.MinOrder)
}

// ItemCouponQualifies 商品级优惠券是否有任一购物车行匹配
func ItemCouponQualifies(code string, items []CartItem) bool {
	for _, item := range items {
		if item.CouponApplicable == code {
			return true
		}
	}
	return false
}

// Reconcile 把已满足条件的 inactive 优惠券移入生效集合。
// 必须在每次读取购物车前完整执行，购物车内容变化（如新增商品）
// 可以追溯激活此前不满足条件的优惠券。
func (c *Cart) Reconcile() {
	if len(c.InactiveCoupons) == 0 {
		return
	}
	if c.AppliedItemCoupons == nil {
		c.AppliedItemCoupons = CouponMap{}
	}

	var stillInactive StringList
	for _, code := range c.InactiveCoupons {
		def, ok := LookupCoupon(code)
		if !ok {
			continue
		}
		if def.Scope == ScopeOrder {
			if OrderCouponQualifies(code, c.Items, c.AppliedItemCoupons) {
				if !contains(c.AppliedCartCoupons, code) {
					c.AppliedCartCoupons = append(StringList{code}, c.AppliedCartCoupons...)
				}
			} else {
				stillInactive = append(stillInactive, code)
			}
			continue
		}
		applied := false
		for _, item := range c.Items {
			if item.CouponApplicable != code {
				continue
			}
			list := c.AppliedItemCoupons[item.ProductID]
			if !contains(list, code) {
				c.AppliedItemCoupons[item.ProductID] = append(list, code)
			}
			applied = true
		}
		if !applied {
			stillInactive = append(stillInactive, code)
		}
	}
	c.InactiveCoupons = stillInactive
}

// ApplyCoupon 应用用户输入的优惠券码。未知码不改变任何状态；
// 有效但不满足条件的码进入 inactive 列表；满足条件的立即生效，
// 订单级码移至生效列表头部。
func (c *Cart) ApplyCoupon(raw string) ApplyResult {
	normalized := NormalizeCouponCode(raw)
	def, ok := LookupCoupon(normalized)
	if !ok {
		return ApplyResult{
			Outcome: OutcomeInvalid,
			Code:    normalized,
			Message: fmt.Sprintf("Sorry, %s isn't a valid coupon code.", raw),
		}
	}

	pill := FormatCouponPillLabel(normalized)
	inactiveMessage := fmt.Sprintf(
		"Oh Snap!. Coupon '%s' has been added but does not apply to any items in your cart. It will auto apply when eligible.", pill)

	if def.Scope == ScopeOrder {
		if !OrderCouponQualifies(normalized, c.Items, c.AppliedItemCoupons) {
			if !contains(c.InactiveCoupons, normalized) {
				c.InactiveCoupons = append(c.InactiveCoupons, normalized)
			}
			return ApplyResult{Outcome: OutcomeInactive, Code: normalized, Scope: ScopeOrder, Message: inactiveMessage}
		}
		c.AppliedCartCoupons = moveToFront(c.AppliedCartCoupons, normalized)
		return ApplyResult{
			Outcome: OutcomeApplied,
			Code:    normalized,
			Scope:   ScopeOrder,
			Message: fmt.Sprintf("Success! Coupon code '%s' has been applied to your cart.", pill),
		}
	}

	if !ItemCouponQualifies(normalized, c.Items) {
		if !contains(c.InactiveCoupons, normalized) {
			c.InactiveCoupons = append(c.InactiveCoupons, normalized)
		}
		return ApplyResult{Outcome: OutcomeInactive, Code: normalized, Scope: ScopeItem, Message: inactiveMessage}
	}
	if c.AppliedItemCoupons == nil {
		c.AppliedItemCoupons = CouponMap{}
	}
	for _, item := range c.Items {
		if item.CouponApplicable != normalized {
			continue
		}
		list := c.AppliedItemCoupons[item.ProductID]
		if !contains(list, normalized) {
			c.AppliedItemCoupons[item.ProductID] = append(list, normalized)
		}
	}
	return ApplyResult{
		Outcome: OutcomeApplied,
		Code:    normalized,
		Scope:   ScopeItem,
		Message: fmt.Sprintf("Success! Coupon code '%s' has been applied to your cart.", pill),
	}
}

// RemoveCoupon 把码从其所在列表中移除；移除后不触发重新判定，
// 也不回插 inactive 列表。
func (c *Cart) RemoveCoupon(raw string) {
	normalized := NormalizeCouponCode(raw)
	if normalized == "" {
		return
	}
	c.AppliedCartCoupons = without(c.AppliedCartCoupons, normalized)
	c.InactiveCoupons = without(c.InactiveCoupons, normalized)
	for itemID, list := range c.AppliedItemCoupons {
		c.AppliedItemCoupons[itemID] = without(list, normalized)
	}
}

func contains(list []string, code string) bool {
	for _, c := range list {
		if c == code {
			return true
		}
	}
	return false
}

func without(list []string, code string) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}

func moveToFront(list []string, code string) []string {
	return append([]string{code}, without(list, code)...)
}
