package application

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/cart/domain"
)

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	SessionID string
	ProductID string
	Qty       int
	Color     string
	Size      string
	Fit       string
}

// ApplyCouponCommand 应用优惠券命令
type ApplyCouponCommand struct {
	SessionID string
	Code      string
}

// RemoveCouponCommand 移除优惠券命令
type RemoveCouponCommand struct {
	SessionID string
	Code      string
}

// ClearCartCommand 清空购物车命令
type ClearCartCommand struct {
	SessionID string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	repo      domain.CartRepository
	products  domain.ProductReader
	publisher domain.EventPublisher
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo domain.CartRepository,
	products domain.ProductReader,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

func (s *CartCommandService) loadOrCreate(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.GetBySessionID(ctx, sessionID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return &domain.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem 处理添加商品到购物车
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	product, err := s.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrCreate(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	line := domain.BuildCartItem(product, domain.AddItemOptions{
		Qty:   cmd.Qty,
		Color: cmd.Color,
		Size:  cmd.Size,
		Fit:   cmd.Fit,
	})
	cart.AddItem(line)
	cart.Reconcile()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	event := domain.CartItemAddedEvent{
		SessionID: cmd.SessionID,
		ProductID: line.ProductID,
		Size:      line.Size,
		Color:     line.Color,
		Qty:       line.Qty,
		Price:     line.Price.String(),
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "cart.item.added", cmd.SessionID, event)

	return cart, nil
}

// ApplyCoupon 处理优惠券应用，返回结果与合计
func (s *CartCommandService) ApplyCoupon(ctx context.Context, cmd ApplyCouponCommand) (*domain.Cart, domain.ApplyResult, error) {
	cart, err := s.loadOrCreate(ctx, cmd.SessionID)
	if err != nil {
		return nil, domain.ApplyResult{}, err
	}

	result := cart.ApplyCoupon(cmd.Code)
	if result.Outcome == domain.OutcomeInvalid {
		// 未知码不落库
		return cart, result, nil
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, domain.ApplyResult{}, err
	}

	event := domain.CouponAppliedEvent{
		SessionID: cmd.SessionID,
		Code:      result.Code,
		Scope:     string(result.Scope),
		Outcome:   string(result.Outcome),
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "cart.coupon.applied", cmd.SessionID, event)

	return cart, result, nil
}

// RemoveCoupon 处理优惠券移除
func (s *CartCommandService) RemoveCoupon(ctx context.Context, cmd RemoveCouponCommand) (*domain.Cart, error) {
	cart, err := s.repo.GetBySessionID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveCoupon(cmd.Code)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	event := domain.CouponRemovedEvent{
		SessionID: cmd.SessionID,
		Code:      domain.NormalizeCouponCode(cmd.Code),
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "cart.coupon.removed", cmd.SessionID, event)

	return cart, nil
}

// ClearCart 处理清空购物车
func (s *CartCommandService) ClearCart(ctx context.Context, cmd ClearCartCommand) error {
	err := s.repo.Delete(ctx, cmd.SessionID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	event := domain.CartClearedEvent{
		SessionID: cmd.SessionID,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "cart.cleared", cmd.SessionID, event)

	return nil
}
