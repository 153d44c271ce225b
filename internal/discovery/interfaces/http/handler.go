package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/beautyassistant/internal/discovery/application"
	"github.com/wyfcoding/beautyassistant/internal/discovery/domain"
	"github.com/wyfcoding/beautyassistant/pkg/logger"
)

// DiscoveryHandler HTTP 处理器
type DiscoveryHandler struct {
	service *application.DiscoveryApplicationService
}

// NewDiscoveryHandler 创建 HTTP 处理器
func NewDiscoveryHandler(service *application.DiscoveryApplicationService) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *DiscoveryHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/sessions/:session_id/search", h.Search)
		api.GET("/sessions/:session_id", h.GetSession)
		api.PUT("/sessions/:session_id/filter", h.SetFilter)
		api.PUT("/sessions/:session_id/gender", h.SetGender)
		api.DELETE("/sessions/:session_id", h.EndSession)
		api.POST("/sessions/:session_id/guide", h.StartGuide)
		api.POST("/sessions/:session_id/guide/answer", h.AnswerGuide)
	}
}

// SearchRequest 搜索请求
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// Search 搜索商品
func (h *DiscoveryHandler) Search(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Search(c.Request.Context(), application.SearchCommand{
		SessionID: sessionID,
		Query:     req.Query,
	})
	if errors.Is(err, application.ErrSearchSuperseded) {
		c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer search"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Search failed", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSession 读取会话状态
func (h *DiscoveryHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get session", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// SetFilterRequest 快捷筛选请求
type SetFilterRequest struct {
	Filter string `json:"filter"`
}

// SetFilter 设置或清除快捷筛选
func (h *DiscoveryHandler) SetFilter(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.SetFilter(c.Request.Context(), sessionID, domain.SimpleFilter(req.Filter))
	if errors.Is(err, application.ErrUnknownFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to set filter", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// SetGenderRequest 性别过滤请求
type SetGenderRequest struct {
	Gender string `json:"gender"`
}

// SetGender 设置性别过滤
func (h *DiscoveryHandler) SetGender(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req SetGenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.SetGender(c.Request.Context(), sessionID, req.Gender)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to set gender", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// EndSession 结束会话
func (h *DiscoveryHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.service.EndSession(c.Request.Context(), sessionID); err != nil {
		logger.Error(c.Request.Context(), "Failed to end session", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}

// StartGuide 开启引导式推荐
func (h *DiscoveryHandler) StartGuide(c *gin.Context) {
	sessionID := c.Param("session_id")

	view, err := h.service.StartGuide(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to start guide", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// AnswerGuideRequest 向导答案请求
type AnswerGuideRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// AnswerGuide 回答向导当前问题
func (h *DiscoveryHandler) AnswerGuide(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req AnswerGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.AnswerGuide(c.Request.Context(), sessionID, req.Answer)
	if errors.Is(err, application.ErrGuideNotActive) {
		c.JSON(http.StatusConflict, gin.H{"error": "guide not active"})
		return
	}
	if errors.Is(err, domain.ErrInvalidGuideAnswer) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "answer not among current options"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to answer guide", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
