package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/beautyassistant/internal/cart/application"
	"github.com/wyfcoding/beautyassistant/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/beautyassistant/internal/catalog/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
	"github.com/wyfcoding/beautyassistant/pkg/metrics"
)

// CartHandler HTTP 处理器
type CartHandler struct {
	cartService *application.CartApplicationService
	collector   metrics.Collector
}

// NewCartHandler 创建 HTTP 处理器
func NewCartHandler(cartService *application.CartApplicationService, collector metrics.Collector) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		collector:   collector,
	}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/carts/:session_id", h.GetCart)
		api.POST("/carts/:session_id/items", h.AddItem)
		api.POST("/carts/:session_id/coupons", h.ApplyCoupon)
		api.DELETE("/carts/:session_id/coupons/:code", h.RemoveCoupon)
		api.DELETE("/carts/:session_id", h.ClearCart)
	}
}

// GetCart 获取购物车（对账后，含合计）
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	view, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get cart", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Fit       string `json:"fit"`
}

// AddItem 添加商品到购物车
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), application.AddItemCommand{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Qty:       req.Qty,
		Color:     req.Color,
		Size:      req.Size,
		Fit:       req.Fit,
	})
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to add cart item", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

// ApplyCouponRequest 优惠券应用请求
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon 应用优惠券
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, result, err := h.cartService.ApplyCoupon(c.Request.Context(), application.ApplyCouponCommand{
		SessionID: sessionID,
		Code:      req.Code,
	})
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to apply coupon", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Outcome == domain.OutcomeApplied {
		h.collector.RecordCouponApplied()
	}

	status := http.StatusOK
	if result.Outcome == domain.OutcomeInvalid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"outcome": result.Outcome,
		"message": result.Message,
		"cart":    cart,
	})
}

// RemoveCoupon 移除优惠券
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sessionID := c.Param("session_id")
	code := c.Param("code")

	cart, err := h.cartService.RemoveCoupon(c.Request.Context(), application.RemoveCouponCommand{
		SessionID: sessionID,
		Code:      code,
	})
	if errors.Is(err, domain.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to remove coupon", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ClearCart 清空购物车
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.cartService.ClearCart(c.Request.Context(), sessionID); err != nil {
		logger.Error(c.Request.Context(), "Failed to clear cart", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
