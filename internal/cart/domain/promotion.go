package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CartPromotionLabel 购物车级固定促销的展示文案
const CartPromotionLabel = "10% off with summersale"

// CartPromotionRate 购物车级固定促销：非空购物车永远享受小计 10% 减免
var CartPromotionRate = rate("0.10")

// promotionRates 促销标签 → 商品级折扣率（随商品自动附加）
var promotionRates = map[string]decimal.Decimal{
	"10% off on skin essentials": rate("0.10"),
	"15% off on new range":       rate("0.15"),
	"5% off on new launches":     rate("0.05"),
}

// ItemPromotionRate 商品自动促销的合计折扣率，上限 1
func ItemPromotionRate(labels []string) decimal.Decimal {
	total := decimal.Zero
	for _, label := range labels {
		if r, ok := promotionRates[strings.TrimSpace(label)]; ok {
			total = total.Add(r)
		}
	}
	return capRate(total)
}
