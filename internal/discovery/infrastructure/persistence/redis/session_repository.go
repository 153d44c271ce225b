package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/cache"
)

const sessionKeyPrefix = "discovery:session:"

// sessionRepository 基于 Redis 的会话存储，TTL 即会话生命周期
type sessionRepository struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

// NewSessionRepository 创建会话存储
func NewSessionRepository(c *cache.RedisCache, ttl time.Duration) domain.SessionRepository {
	return &sessionRepository{cache: c, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	val, err := r.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if val == "" {
		return nil, domain.ErrSessionNotFound
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := r.cache.SetJSON(ctx, sessionKeyPrefix+session.ID, session, r.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, sessionKeyPrefix+id)
}
