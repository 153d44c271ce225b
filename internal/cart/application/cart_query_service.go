package application

import (
	"context"
	"errors"

	"github.com/wyfcoding/beautyassistant/internal/cart/domain"
)

// CartView 购物车读模型：对账后的购物车与其合计
type CartView struct {
	Cart   *domain.Cart  `json:"cart"`
	Totals domain.Totals `json:"totals"`
}

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 读取购物车：先对账（可能激活 inactive 优惠券并落库），再计算合计
func (s *CartQueryService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.repo.GetBySessionID(ctx, sessionID)
	if errors.Is(err, domain.ErrCartNotFound) {
		cart = &domain.Cart{SessionID: sessionID}
		return &CartView{Cart: cart, Totals: domain.ComputeTotals(nil, nil, nil)}, nil
	}
	if err != nil {
		return nil, err
	}

	before := len(cart.InactiveCoupons)
	cart.Reconcile()
	if len(cart.InactiveCoupons) != before {
		if err := s.repo.Save(ctx, cart); err != nil {
			return nil, err
		}
	}

	totals := domain.ComputeTotals(cart.Items, cart.AppliedItemCoupons, cart.AppliedCartCoupons)
	return &CartView{Cart: cart, Totals: totals}, nil
}

// CountActiveCarts 统计非空购物车数量
func (s *CartQueryService) CountActiveCarts(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
