package domain

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound 会话不存在或已过期
var ErrSessionNotFound = errors.New("session not found")

// Session 一次对话的全部可变状态，显式持久化，替代散落的全局变量
type Session struct {
	ID           string       `json:"id"`
	LastQuery    string       `json:"last_query"`
	LastIntent   Intent       `json:"last_intent"`
	HasIntent    bool         `json:"has_intent"`
	ActiveFilter SimpleFilter `json:"active_filter"`
	ActiveGender string       `json:"active_gender"`
	Guide        GuideState   `json:"guide"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewSession 创建空会话
func NewSession(id string) *Session {
	return &Session{ID: id, UpdatedAt: time.Now()}
}

// MergeIntent 把新一轮提取的意图并入会话；本轮命中的字段覆盖，其余沿用
func (s *Session) MergeIntent(extracted Intent) Intent {
	if !s.HasIntent {
		if !extracted.IsZero() {
			s.LastIntent = extracted
			s.HasIntent = true
		}
		return s.LastIntent
	}
	s.LastIntent = extracted.Merge(s.LastIntent)
	return s.LastIntent
}

// SessionRepository 会话存取端口
type SessionRepository interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// ProductSource 商品快照来源端口
type ProductSource interface {
	Products(ctx context.Context) ([]*Product, error)
}
