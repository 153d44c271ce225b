package application

import (
	"context"

	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
)

// OrderQueryService 订单查询服务
type OrderQueryService struct {
	orders domain.OrderRepository
}

// NewOrderQueryService 创建订单查询服务
func NewOrderQueryService(orders domain.OrderRepository) *OrderQueryService {
	return &OrderQueryService{orders: orders}
}

// GetOrder 按订单号查询
func (s *OrderQueryService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetByOrderID(ctx, orderID)
}

// ListOrders 查询会话下的全部订单
func (s *OrderQueryService) ListOrders(ctx context.Context, sessionID string) ([]*domain.Order, error) {
	return s.orders.ListBySessionID(ctx, sessionID)
}
