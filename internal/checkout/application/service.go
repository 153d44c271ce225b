package application

import (
	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
)

// CheckoutApplicationService 结算上下文的应用服务门面
type CheckoutApplicationService struct {
	*CheckoutService
	*OrderQueryService
}

// NewCheckoutApplicationService 创建应用服务
func NewCheckoutApplicationService(
	orders domain.OrderRepository,
	carts domain.CartGateway,
	provider domain.PaymentProvider,
	publisher domain.EventPublisher,
	collector metrics.Collector,
) *CheckoutApplicationService {
	return &CheckoutApplicationService{
		CheckoutService:   NewCheckoutService(orders, carts, provider, publisher, collector),
		OrderQueryService: NewOrderQueryService(orders),
	}
}
