package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/beautyassistant/internal/checkout/application"
	"github.com/wyfcoding/beautyassistant/internal/checkout/domain"
	"github.com/wyfcoding/beautyassistant/internal/checkout/infrastructure/payment"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// CheckoutHandler HTTP 处理器
type CheckoutHandler struct {
	service *application.CheckoutApplicationService
}

// NewCheckoutHandler 创建 HTTP 处理器
func NewCheckoutHandler(service *application.CheckoutApplicationService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *CheckoutHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/sessions/:session_id/checkout", h.Checkout)
		api.POST("/sessions/:session_id/checkout/mock-confirm", h.ConfirmMockPayment)
		api.GET("/sessions/:session_id/orders", h.ListOrders)
		api.GET("/orders/:order_id", h.GetOrder)
	}
}

// Checkout 发起结算
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := c.Param("session_id")

	ctx := c.Request.Context()
	// 模拟提示仅供演示环境驱动非 success 分支
	if hint := c.GetHeader("X-Payment-Simulate"); hint != "" {
		ctx = payment.ContextWithHint(ctx, domain.PaymentOutcome(hint))
	}

	result, err := h.service.Checkout(ctx, sessionID)
	if errors.Is(err, application.ErrEmptyCart) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Checkout failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ConfirmMockPaymentRequest 模拟支付确认请求
type ConfirmMockPaymentRequest struct {
	PaymentRef string `json:"payment_ref"`
}

// ConfirmMockPayment 模拟支付面板确认
func (h *CheckoutHandler) ConfirmMockPayment(c *gin.Context) {
	sessionID := c.Param("session_id")

	// 请求体可为空
	var req ConfirmMockPaymentRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.service.ConfirmMockPayment(c.Request.Context(), sessionID, req.PaymentRef)
	if errors.Is(err, application.ErrEmptyCart) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Mock payment confirm failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetOrder 按订单号查询
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.service.GetOrder(c.Request.Context(), orderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get order", "order_id", orderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders 查询会话下的订单
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	sessionID := c.Param("session_id")

	orders, err := h.service.ListOrders(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list orders", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
