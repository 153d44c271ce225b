package domain

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

func capRate(r decimal.Decimal) decimal.Decimal {
	if r.GreaterThan(one) {
		return one
	}
	return r
}

// RoundCurrency 金额四舍五入到分。每次乘法/减法后立即取整，
// 行级先取整再汇总，顺序不可更改。
func RoundCurrency(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

func dedupCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized := NormalizeCouponCode(code)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// ItemDiscountRate 单个商品行上已应用商品级优惠券的合计折扣率，上限 1
func ItemDiscountRate(itemID string, appliedItemCoupons map[string][]string) decimal.Decimal {
	total := decimal.Zero
	for _, code := range dedupCodes(appliedItemCoupons[itemID]) {
		def, ok := couponDefinitions[code]
		if !ok || def.Scope == ScopeOrder {
			continue
		}
		total = total.Add(def.Rate)
	}
	return capRate(total)
}

// CartDiscountRate 已应用订单级优惠券的合计折扣率，去重后求和，上限 1
func CartDiscountRate(appliedCartCoupons []string) decimal.Decimal {
	total := decimal.Zero
	for _, code := range dedupCodes(appliedCartCoupons) {
		def, ok := couponDefinitions[code]
		if !ok || def.Scope != ScopeOrder {
			continue
		}
		total = total.Add(def.Rate)
	}
	return capRate(total)
}

// CombinedLineRate 商品行生效折扣率：优惠券率 + 促销率，上限 1
func CombinedLineRate(couponRate, promotionRate decimal.Decimal) decimal.Decimal {
	return capRate(couponRate.Add(promotionRate))
}
