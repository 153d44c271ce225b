package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
)

const searchPageSize = 10

// ErrSearchSuperseded 同一会话发起了新搜索，旧搜索被取消
var ErrSearchSuperseded = errors.New("search superseded by a newer query")

// SearchCommand 搜索请求
type SearchCommand struct {
	SessionID string
	Query     string
}

// SearchResult 搜索响应
type SearchResult struct {
	Reply     string                        `json:"reply"`
	Products  []*domain.Product             `json:"products"`
	Total     int                           `json:"total"`
	Intent    domain.Intent                 `json:"intent"`
	Followups []domain.ReturnPolicyFollowup `json:"followups,omitempty"`
}

// SearchService 搜索命令服务：解析意图、合并会话状态、执行筛选流水线
type SearchService struct {
	sessions  domain.SessionRepository
	products  domain.ProductSource
	publisher domain.EventPublisher
	collector metrics.Collector
	latency   time.Duration

	mu       sync.Mutex
	inflight map[string]*searchToken
}

// searchToken 标识一次在途搜索，便于新请求顶替旧请求
type searchToken struct {
	cancel context.CancelFunc
}

// NewSearchService 创建搜索服务。latency 模拟助手思考延迟，0 表示立即返回。
func NewSearchService(
	sessions domain.SessionRepository,
	products domain.ProductSource,
	publisher domain.EventPublisher,
	collector metrics.Collector,
	latency time.Duration,
) *SearchService {
	return &SearchService{
		sessions:  sessions,
		products:  products,
		publisher: publisher,
		collector: collector,
		latency:   latency,
		inflight:  make(map[string]*searchToken),
	}
}

// Search 执行一次搜索。同一会话的新请求会取消仍在延迟中的旧请求。
func (s *SearchService) Search(ctx context.Context, cmd SearchCommand) (*SearchResult, error) {
	start := time.Now()

	if domain.IsReturnPolicyQuery(cmd.Query) {
		if err := s.simulateLatency(ctx, cmd.SessionID); err != nil {
			return nil, err
		}
		return &SearchResult{
			Reply:     domain.ReturnPolicyAnswer,
			Products:  []*domain.Product{},
			Followups: domain.ReturnPolicyFollowups,
		}, nil
	}

	session, err := s.loadOrCreate(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	cleaned, extracted := domain.ParseIntent(cmd.Query)
	merged := session.MergeIntent(extracted)
	session.LastQuery = cleaned

	if err := s.simulateLatency(ctx, cmd.SessionID); err != nil {
		return nil, err
	}

	all, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product snapshot: %w", err)
	}

	pipeline := domain.Pipeline{
		Query:  cleaned,
		Intent: merged,
		Filter: session.ActiveFilter,
		Gender: session.ActiveGender,
	}
	results := pipeline.Run(all)
	total := len(results)
	if len(results) > searchPageSize {
		results = results[:searchPageSize]
	}

	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.collector.RecordSearch(time.Since(start).Seconds())

	event := domain.SearchPerformedEvent{
		SessionID:   session.ID,
		Query:       cleaned,
		ResultCount: total,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, "discovery.search.performed", session.ID, event); err != nil {
		logger.Error(ctx, "Failed to publish search event", "session_id", session.ID, "error", err)
	}

	return &SearchResult{
		Reply:    fmt.Sprintf("Thanks for your patience. I found %d options for “%s”.", total, cleaned),
		Products: results,
		Total:    total,
		Intent:   merged,
	}, nil
}

// loadOrCreate 取会话，不存在则新建
func (s *SearchService) loadOrCreate(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSession(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// simulateLatency 等待配置的延迟；期间被上下文取消或被新搜索顶替则提前返回
func (s *SearchService) simulateLatency(ctx context.Context, sessionID string) error {
	if s.latency <= 0 {
		return nil
	}

	waitCtx, cancel := context.WithCancel(ctx)
	token := &searchToken{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[sessionID]; ok {
		prev.cancel()
	}
	s.inflight[sessionID] = token
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.inflight[sessionID] == token {
			delete(s.inflight, sessionID)
		}
		s.mu.Unlock()
		cancel()
	}()

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-waitCtx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrSearchSuperseded
	}
}
