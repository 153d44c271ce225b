// Package catalogsource 把商品目录适配为搜索侧的只读快照。
// 快照常驻内存，目录导入事件到达时整体重建。
package catalogsource

import (
	"context"
	"fmt"
	"sync"

	catalogdomain "github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// Source 内存商品快照，实现 domain.ProductSource
type Source struct {
	catalog catalogdomain.ProductRepository

	mu       sync.RWMutex
	snapshot []*domain.Product
	loaded   bool
}

// New 创建快照源；首次访问时惰性加载
func New(catalog catalogdomain.ProductRepository) *Source {
	return &Source{catalog: catalog}
}

// Products 返回当前快照；未加载时先加载
func (s *Source) Products(ctx context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	if s.loaded {
		snapshot := s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// Reload 从目录全量重建快照
func (s *Source) Reload(ctx context.Context) error {
	products, err := s.catalog.All(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	snapshot := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		snapshot = append(snapshot, toSearchProduct(p))
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.loaded = true
	s.mu.Unlock()

	logger.Info(ctx, "Catalog snapshot reloaded", "count", len(snapshot))
	return nil
}

func toSearchProduct(p *catalogdomain.Product) *domain.Product {
	return &domain.Product{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Category:      p.Category,
		ProductType:   p.ProductType,
		Description:   p.Description,
		Composition:   p.Composition,
		Features:      p.Features,
		Benefits:      p.Benefits,
		Ingredients:   p.Ingredients,
		Collections:   p.Collections,
		Categories:    p.Categories,
		Concerns:      p.Concerns,
		SkinType:      p.SkinType,
		Finish:        p.Finish,
		Coverage:      p.Coverage,
		Tags:          p.Tags,
		SPF:           p.SPF,
		FragranceFree: p.FragranceFree,
		Vegan:         p.Vegan,
		Price:         p.Price,
		Rating:        p.Rating,
		Gender:        p.Gender,
		ImageURL:      p.ImageURL,
	}
}
