// Package cartgateway 把购物车上下文适配为结算侧的 CartGateway 端口
package cartgateway

import (
	"context"

	cartapp "github.com/wyfcoding/beautyassistant/internal/cart/application"
	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
)

type cartGateway struct {
	carts *cartapp.CartApplicationService
}

// New 创建购物车适配器
func New(carts *cartapp.CartApplicationService) domain.CartGateway {
	return &cartGateway{carts: carts}
}

func (g *cartGateway) Snapshot(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	view, err := g.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(view.Cart.Items))
	for _, item := range view.Cart.Items {
		lines = append(lines, domain.CartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
			Color:     item.Color,
			Size:      item.Size,
			ImageURL:  item.ImageURL,
		})
	}

	return &domain.CartSnapshot{
		Lines: lines,
		Totals: domain.CartTotals{
			Subtotal:         view.Totals.Subtotal,
			OrderDiscount:    view.Totals.OrderDiscount,
			CartPromotion:    view.Totals.Promotions,
			Shipping:         view.Totals.Shipping,
			ShippingDiscount: view.Totals.ShippingDiscount,
			Taxes:            view.Totals.Taxes,
			Total:            view.Totals.Total,
		},
	}, nil
}

func (g *cartGateway) Clear(ctx context.Context, sessionID string) error {
	return g.carts.ClearCart(ctx, sessionID)
}
