package application

import (
	"context"

	"github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/pkg/utils"
)

// CatalogApplicationService 商品目录服务门面，整合命令服务和查询服务
type CatalogApplicationService struct {
	commandService *CatalogCommandService
	queryService   *CatalogQueryService
}

// NewCatalogApplicationService 创建商品目录服务门面实例
func NewCatalogApplicationService(
	repo domain.ProductRepository,
	cache domain.ProductCache,
	publisher domain.EventPublisher,
) *CatalogApplicationService {
	return &CatalogApplicationService{
		commandService: NewCatalogCommandService(repo, cache, publisher),
		queryService:   NewCatalogQueryService(repo, cache),
	}
}

// ImportCatalog 导入目录文档
func (s *CatalogApplicationService) ImportCatalog(ctx context.Context, source string, document []byte) (int, error) {
	cmd := ImportCatalogCommand{Source: source, Document: document}
	return s.commandService.ImportCatalog(ctx, cmd)
}

// UpsertProduct 写入单个商品
func (s *CatalogApplicationService) UpsertProduct(ctx context.Context, raw domain.RawProduct) (*domain.Product, error) {
	return s.commandService.UpsertProduct(ctx, raw)
}

// GetProduct 根据商品ID获取商品
func (s *CatalogApplicationService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.queryService.GetProduct(ctx, productID)
}

// ListProducts 分页列出商品
func (s *CatalogApplicationService) ListProducts(ctx context.Context, category string, page, size int) ([]*domain.Product, *utils.Pagination, error) {
	return s.queryService.ListProducts(ctx, category, page, size)
}
