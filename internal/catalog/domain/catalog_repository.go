package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	SaveBatch(ctx context.Context, products []*Product) error
	GetByProductID(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context, category string, offset, limit int) ([]*Product, int64, error)
	All(ctx context.Context) ([]*Product, error)
}

// ProductCache 商品读缓存
type ProductCache interface {
	Get(ctx context.Context, productID string) (*Product, error)
	Set(ctx context.Context, product *Product) error
	Invalidate(ctx context.Context, productIDs ...string) error
}
