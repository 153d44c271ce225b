package application

import (
	"context"
	"sync"

	"github.com/wyfcoding/beautyassistant/internal/cart/domain"
)

// CartApplicationService 购物车服务门面，整合命令服务和查询服务。
// 同一会话的变更与对账通过会话级互斥锁串行执行，保证对账原子完成。
type CartApplicationService struct {
	commandService *CartCommandService
	queryService   *CartQueryService

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCartApplicationService 创建购物车服务门面实例
func NewCartApplicationService(
	repo domain.CartRepository,
	products domain.ProductReader,
	publisher domain.EventPublisher,
) *CartApplicationService {
	return &CartApplicationService{
		commandService: NewCartCommandService(repo, products, publisher),
		queryService:   NewCartQueryService(repo),
		locks:          make(map[string]*sync.Mutex),
	}
}

func (s *CartApplicationService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// GetCart 读取购物车（对账 + 合计）
func (s *CartApplicationService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.queryService.GetCart(ctx, sessionID)
}

// AddItem 添加商品到购物车
func (s *CartApplicationService) AddItem(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	lock := s.sessionLock(cmd.SessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.commandService.AddItem(ctx, cmd)
}

// ApplyCoupon 应用优惠券
func (s *CartApplicationService) ApplyCoupon(ctx context.Context, cmd ApplyCouponCommand) (*domain.Cart, domain.ApplyResult, error) {
	lock := s.sessionLock(cmd.SessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.commandService.ApplyCoupon(ctx, cmd)
}

// RemoveCoupon 移除优惠券
func (s *CartApplicationService) RemoveCoupon(ctx context.Context, cmd RemoveCouponCommand) (*domain.Cart, error) {
	lock := s.sessionLock(cmd.SessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.commandService.RemoveCoupon(ctx, cmd)
}

// ClearCart 清空购物车
func (s *CartApplicationService) ClearCart(ctx context.Context, sessionID string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.commandService.ClearCart(ctx, ClearCartCommand{SessionID: sessionID})
}

// CountActiveCarts 统计非空购物车数量
func (s *CartApplicationService) CountActiveCarts(ctx context.Context) (int64, error) {
	return s.queryService.CountActiveCarts(ctx)
}
