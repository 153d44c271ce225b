package application

import (
	"time"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
)

// DiscoveryApplicationService 商品发现上下文的应用服务门面
type DiscoveryApplicationService struct {
	*SearchService
	*GuideService
	*SessionService
}

// NewDiscoveryApplicationService 创建应用服务
func NewDiscoveryApplicationService(
	sessions domain.SessionRepository,
	products domain.ProductSource,
	publisher domain.EventPublisher,
	collector metrics.Collector,
	latency time.Duration,
) *DiscoveryApplicationService {
	return &DiscoveryApplicationService{
		SearchService:  NewSearchService(sessions, products, publisher, collector, latency),
		GuideService:   NewGuideService(sessions, products, publisher),
		SessionService: NewSessionService(sessions),
	}
}
