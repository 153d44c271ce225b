package domain

import (
	"context"
	"errors"
)

// ErrCartNotFound 购物车不存在
var ErrCartNotFound = errors.New("cart not found")

type CartRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
	CountActive(ctx context.Context) (int64, error)
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
