package domain

import "github.com/shopspring/decimal"

var (
	shippingFlat = decimal.NewFromInt(60)
	taxRate      = rate("0.05")
)

// Totals 购物车合计，按需重算，不单独存储
type Totals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	Promotions       decimal.Decimal `json:"promotions"`
	OrderDiscount    decimal.Decimal `json:"order_discount"`
	Shipping         decimal.Decimal `json:"shipping"`
	ShippingDiscount decimal.Decimal `json:"shipping_discount"`
	Taxes            decimal.Decimal `json:"taxes"`
	Total            decimal.Decimal `json:"total"`
	ItemCount        int             `json:"item_count"`
}

// ComputeTotals 计算购物车合计。纯函数。
// 每一行先按生效折扣率打折并取整到分，再汇总成小计；
// 订单级折扣与购物车促销都在税前扣除；任一订单级优惠券生效即免运费。
func ComputeTotals(items []CartItem, appliedItemCoupons map[string][]string, appliedCartCoupons []string) Totals {
	itemCount := 0
	subtotal := decimal.Zero
	for _, item := range items {
		itemCount += item.Qty
		lineRaw := item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		couponRate := ItemDiscountRate(item.ProductID, appliedItemCoupons)
		promotionRate := ItemPromotionRate(item.Promotions)
		lineRate := CombinedLineRate(couponRate, promotionRate)
		subtotal = subtotal.Add(RoundCurrency(lineRaw.Mul(one.Sub(lineRate))))
	}
	subtotal = RoundCurrency(subtotal)

	orderRate := CartDiscountRate(appliedCartCoupons)
	orderDiscount := RoundCurrency(subtotal.Mul(orderRate))
	cartPromotion := RoundCurrency(subtotal.Mul(CartPromotionRate))

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = shippingFlat
	}
	shippingDiscount := decimal.Zero
	if orderRate.IsPositive() {
		shippingDiscount = shipping
	}

	taxableAmount := subtotal.Sub(orderDiscount).Sub(cartPromotion)
	if taxableAmount.IsNegative() {
		taxableAmount = decimal.Zero
	}
	taxes := RoundCurrency(taxableAmount.Mul(taxRate))

	total := RoundCurrency(subtotal.
		Sub(orderDiscount).
		Sub(cartPromotion).
		Add(shipping).
		Sub(shippingDiscount).
		Add(taxes))

	return Totals{
		Subtotal:         subtotal,
		Promotions:       cartPromotion,
		OrderDiscount:    orderDiscount,
		Shipping:         shipping,
		ShippingDiscount: shippingDiscount,
		Taxes:            taxes,
		Total:            total,
		ItemCount:        itemCount,
	}
}
