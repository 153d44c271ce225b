package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
)

// ErrUnknownFilter 不认识的快捷筛选标识
var ErrUnknownFilter = errors.New("unknown filter")

// SessionService 会话状态的查询与显式变更
type SessionService struct {
	sessions domain.SessionRepository
}

// NewSessionService 创建会话服务
func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// GetSession 读取会话，不存在时返回空会话而不报错
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSession(sessionID), nil
	}
	return session, err
}

// SetFilter 设置或清除快捷筛选。重复设置同一筛选等价于清除（切换语义）。
func (s *SessionService) SetFilter(ctx context.Context, sessionID string, filter domain.SimpleFilter) (*domain.Session, error) {
	if filter != "" && !domain.ValidSimpleFilter(filter) {
		return nil, ErrUnknownFilter
	}

	session, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.ActiveFilter == filter {
		session.ActiveFilter = ""
	} else {
		session.ActiveFilter = filter
	}
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// SetGender 设置性别过滤；空值表示清除
func (s *SessionService) SetGender(ctx context.Context, sessionID, gender string) (*domain.Session, error) {
	session, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ActiveGender = gender
	session.UpdatedAt = time.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// EndSession 会话结束，丢弃全部状态
func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *SessionService) loadOrCreate(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewSession(sessionID), nil
	}
	return session, err
}
