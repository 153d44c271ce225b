package application

import (
	"context"

	"github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/utils"
)

// CatalogQueryService 商品目录查询服务
type CatalogQueryService struct {
	repo  domain.ProductRepository
	cache domain.ProductCache
}

// NewCatalogQueryService 创建商品目录查询服务实例
func NewCatalogQueryService(
	repo domain.ProductRepository,
	cache domain.ProductCache,
) *CatalogQueryService {
	return &CatalogQueryService{
		repo:  repo,
		cache: cache,
	}
}

// GetProduct 根据商品ID获取商品，优先读缓存
func (s *CatalogQueryService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if cached, err := s.cache.Get(ctx, productID); err == nil && cached != nil {
		return cached, nil
	}

	product, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, product); err != nil {
		logger.Warn(ctx, "Failed to cache product", "product_id", productID, "error", err)
	}
	return product, nil
}

// ListProducts 分页列出商品
func (s *CatalogQueryService) ListProducts(ctx context.Context, category string, page, size int) ([]*domain.Product, *utils.Pagination, error) {
	p := utils.NewPagination(page, size, 0)
	products, total, err := s.repo.List(ctx, category, p.Offset(), p.Limit())
	if err != nil {
		return nil, nil, err
	}
	return products, utils.NewPagination(page, size, total), nil
}
