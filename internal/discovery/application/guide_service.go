package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

const guidePageSize = 5

// ErrGuideNotActive 会话当前没有进行中的向导
var ErrGuideNotActive = errors.New("guide not active for session")

// GuideView 向导一步之后返回给调用方的视图
type GuideView struct {
	Stage    domain.GuideStage    `json:"stage"`
	Prompt   string               `json:"prompt"`
	Options  []domain.GuideOption `json:"options,omitempty"`
	Products []*domain.Product    `json:"products,omitempty"`
	Total    int                  `json:"total,omitempty"`
}

// GuideService 引导式推荐：显式状态机推进，完成后给出最终推荐
type GuideService struct {
	sessions  domain.SessionRepository
	products  domain.ProductSource
	publisher domain.EventPublisher
}

// NewGuideService 创建向导服务
func NewGuideService(
	sessions domain.SessionRepository,
	products domain.ProductSource,
	publisher domain.EventPublisher,
) *GuideService {
	return &GuideService{sessions: sessions, products: products, publisher: publisher}
}

// StartGuide 以会话当前的查询与意图开启向导，回到第一问
func (s *GuideService) StartGuide(ctx context.Context, sessionID string) (*GuideView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		session = domain.NewSession(sessionID)
	} else if err != nil {
		return nil, err
	}

	session.Guide = domain.StartGuide(session.LastQuery, session.LastIntent)
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &GuideView{
		Stage:   session.Guide.Stage,
		Prompt:  "Happy to help! Quick question first—who are you shopping for?",
		Options: session.Guide.Options(),
	}, nil
}

// AnswerGuide 处理当前阶段的答案。最后一问回答后返回选择总结与最终推荐。
func (s *GuideService) AnswerGuide(ctx context.Context, sessionID, label string) (*GuideView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, ErrGuideNotActive
	}
	if err != nil {
		return nil, err
	}
	if !session.Guide.Active() {
		return nil, ErrGuideNotActive
	}

	transition, err := session.Guide.Answer(label)
	if err != nil {
		return nil, err
	}
	session.Guide = transition.State
	if session.Guide.Gender != "" {
		session.ActiveGender = session.Guide.Gender
	}
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	view := &GuideView{
		Stage:   session.Guide.Stage,
		Prompt:  transition.Prompt,
		Options: session.Guide.Options(),
	}
	if !transition.Final {
		return view, nil
	}

	all, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product snapshot: %w", err)
	}
	pipeline := domain.Pipeline{
		Query:  session.Guide.Query,
		Intent: session.Guide.Intent,
		Filter: session.ActiveFilter,
		Gender: session.ActiveGender,
	}
	results := pipeline.Run(all)
	view.Total = len(results)
	if len(results) > guidePageSize {
		results = results[:guidePageSize]
	}
	view.Products = results

	event := domain.GuideCompletedEvent{
		SessionID: session.ID,
		Gender:    session.ActiveGender,
		Summary:   transition.Prompt,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "discovery.guide.completed", session.ID, event); err != nil {
		logger.Error(ctx, "Failed to publish guide event", "session_id", session.ID, "error", err)
	}

	return view, nil
}
