package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
)

const deliveryDays = 2

// ErrEmptyCart 购物车为空，无法结算
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutResult 结算结果。钱包不可用或失败时 MockSheetRequired 为真，
// 调用方应引导用户走模拟支付面板；用户取消时静默返回。
type CheckoutResult struct {
	Outcome           domain.PaymentOutcome `json:"outcome"`
	MockSheetRequired bool                  `json:"mock_sheet_required"`
	Order             *domain.Order         `json:"order,omitempty"`
	Message           string                `json:"message,omitempty"`
}

// CheckoutService 结算命令服务
type CheckoutService struct {
	orders    domain.OrderRepository
	carts     domain.CartGateway
	provider  domain.PaymentProvider
	publisher domain.EventPublisher
	collector metrics.Collector
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(
	orders domain.OrderRepository,
	carts domain.CartGateway,
	provider domain.PaymentProvider,
	publisher domain.EventPublisher,
	collector metrics.Collector,
) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		carts:     carts,
		provider:  provider,
		publisher: publisher,
		collector: collector,
	}
}

// Checkout 发起钱包支付并按结果分支：
// 成功直接确认订单；取消静默返回；不可用或失败要求走模拟面板。
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	snapshot, err := s.carts.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if snapshot.Empty() {
		return nil, ErrEmptyCart
	}

	result, err := s.provider.Authorize(ctx, sessionID, snapshot.Totals.Total)
	if err != nil {
		return nil, fmt.Errorf("authorize payment: %w", err)
	}

	switch result.Outcome {
	case domain.PaymentSuccess:
		order, err := s.confirmOrder(ctx, sessionID, snapshot, result.Ref)
		if err != nil {
			return nil, err
		}
		return &CheckoutResult{Outcome: result.Outcome, Order: order}, nil

	case domain.PaymentAborted:
		return &CheckoutResult{Outcome: result.Outcome}, nil

	default:
		s.collector.RecordPaymentFailed()
		event := domain.PaymentFailedEvent{
			SessionID: sessionID,
			Outcome:   result.Outcome,
			Timestamp: time.Now(),
		}
		if err := s.publisher.Publish(ctx, "checkout.payment.failed", sessionID, event); err != nil {
			logger.Error(ctx, "Failed to publish payment event", "session_id", sessionID, "error", err)
		}
		return &CheckoutResult{
			Outcome:           result.Outcome,
			MockSheetRequired: true,
			Message:           "Wallet payment did not complete. Continue with the payment sheet.",
		}, nil
	}
}

// ConfirmMockPayment 模拟支付面板确认，等价于支付成功
func (s *CheckoutService) ConfirmMockPayment(ctx context.Context, sessionID, paymentRef string) (*CheckoutResult, error) {
	snapshot, err := s.carts.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if snapshot.Empty() {
		return nil, ErrEmptyCart
	}

	order, err := s.confirmOrder(ctx, sessionID, snapshot, paymentRef)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Outcome: domain.PaymentSuccess, Order: order}, nil
}

// confirmOrder 生成订单号、落库订单快照、清空购物车并发布事件
func (s *CheckoutService) confirmOrder(ctx context.Context, sessionID string, snapshot *domain.CartSnapshot, paymentRef string) (*domain.Order, error) {
	now := time.Now()

	items := make([]domain.OrderItem, 0, len(snapshot.Lines))
	itemCount := 0
	for _, line := range snapshot.Lines {
		itemCount += line.Qty
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
			Color:     line.Color,
			Size:      line.Size,
			ImageURL:  line.ImageURL,
		})
	}

	order := &domain.Order{
		OrderID:          domain.GenerateOrderID(now),
		SessionID:        sessionID,
		Status:           domain.StatusConfirmed,
		Items:            items,
		Subtotal:         snapshot.Totals.Subtotal,
		OrderDiscount:    snapshot.Totals.OrderDiscount,
		CartPromotion:    snapshot.Totals.CartPromotion,
		Shipping:         snapshot.Totals.Shipping,
		ShippingDiscount: snapshot.Totals.ShippingDiscount,
		Taxes:            snapshot.Totals.Taxes,
		Total:            snapshot.Totals.Total,
		PaymentRef:       paymentRef,
		DeliveryEstimate: domain.FormatDeliveryDate(now, deliveryDays),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		logger.Error(ctx, "Failed to clear cart after order", "session_id", sessionID, "order_id", order.OrderID, "error", err)
	}

	s.collector.RecordOrder()

	event := domain.OrderPlacedEvent{
		OrderID:   order.OrderID,
		SessionID: sessionID,
		Total:     order.Total,
		ItemCount: itemCount,
		Timestamp: now,
	}
	if err := s.publisher.Publish(ctx, "checkout.order.placed", order.OrderID, event); err != nil {
		logger.Error(ctx, "Failed to publish order event", "order_id", order.OrderID, "error", err)
	}

	return order, nil
}
