package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartLine 结算视角的购物车行
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	ImageURL  string          `json:"image_url"`
}

// CartTotals 结算视角的合计快照
type CartTotals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	OrderDiscount    decimal.Decimal `json:"order_discount"`
	CartPromotion    decimal.Decimal `json:"cart_promotion"`
	Shipping         decimal.Decimal `json:"shipping"`
	ShippingDiscount decimal.Decimal `json:"shipping_discount"`
	Taxes            decimal.Decimal `json:"taxes"`
	Total            decimal.Decimal `json:"total"`
}

// CartSnapshot 下单时刻的购物车内容
type CartSnapshot struct {
	Lines  []CartLine `json:"lines"`
	Totals CartTotals `json:"totals"`
}

// Empty 购物车是否为空
func (s *CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

// CartGateway 购物车上下文端口：取快照，下单成功后清空
type CartGateway interface {
	Snapshot(ctx context.Context, sessionID string) (*CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) error
}
