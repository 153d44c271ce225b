package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// ImportCatalogCommand 导入目录命令
type ImportCatalogCommand struct {
	Source   string
	Document []byte
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	cache     domain.ProductCache
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(
	repo domain.ProductRepository,
	cache domain.ProductCache,
	publisher domain.EventPublisher,
) *CatalogCommandService {
	return &CatalogCommandService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

// ImportCatalog 解析目录文档，归一化后批量写入并发布导入事件
func (s *CatalogCommandService) ImportCatalog(ctx context.Context, cmd ImportCatalogCommand) (int, error) {
	var raw domain.RawCatalog
	if err := json.Unmarshal(cmd.Document, &raw); err != nil {
		return 0, fmt.Errorf("failed to parse catalog document: %w", err)
	}

	products := make([]*domain.Product, 0, len(raw.Products))
	ids := make([]string, 0, len(raw.Products))
	for _, rp := range raw.Products {
		if rp.ID == "" || rp.Name == "" {
			continue
		}
		p := rp.Normalize()
		products = append(products, p)
		ids = append(ids, p.ProductID)
	}

	if len(products) == 0 {
		return 0, nil
	}

	if err := s.repo.SaveBatch(ctx, products); err != nil {
		return 0, err
	}
	if err := s.cache.Invalidate(ctx, ids...); err != nil {
		logger.Warn(ctx, "Failed to invalidate product cache", "error", err)
	}

	event := domain.CatalogImportedEvent{
		Source:    cmd.Source,
		Count:     len(products),
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "catalog.imported", cmd.Source, event)

	logger.Info(ctx, "Catalog imported", "source", cmd.Source, "count", len(products))
	return len(products), nil
}

// UpsertProduct 写入单个商品并发布事件
func (s *CatalogCommandService) UpsertProduct(ctx context.Context, rp domain.RawProduct) (*domain.Product, error) {
	if rp.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	p := rp.Normalize()
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, p.ProductID); err != nil {
		logger.Warn(ctx, "Failed to invalidate product cache", "product_id", p.ProductID, "error", err)
	}

	event := domain.ProductUpsertedEvent{
		ProductID: p.ProductID,
		Name:      p.Name,
		Category:  p.Category,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.upserted", p.ProductID, event)

	return p, nil
}
