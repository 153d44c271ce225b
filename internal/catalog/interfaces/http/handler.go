package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/beautyassistant/internal/catalog/application"
	"github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// CatalogHandler HTTP 处理器
type CatalogHandler struct {
	catalogService *application.CatalogApplicationService
}

// NewCatalogHandler 创建 HTTP 处理器
func NewCatalogHandler(catalogService *application.CatalogApplicationService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/catalog/import", h.ImportCatalog)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
	}
}

// ImportCatalog 导入目录文档
func (h *CatalogHandler) ImportCatalog(c *gin.Context) {
	document, err := io.ReadAll(c.Request.Body)
	if err != nil || len(document) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "catalog document is required"})
		return
	}

	source := c.Query("source")
	if source == "" {
		source = "upload"
	}

	count, err := h.catalogService.ImportCatalog(c.Request.Context(), source, document)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to import catalog", "source", source, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}

// GetProduct 获取商品
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err == domain.ErrProductNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get product", "product_id", productID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts 分页列出商品
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	category := c.Query("category")

	products, pagination, err := h.catalogService.ListProducts(c.Request.Context(), category, page, size)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "pagination": pagination})
}
