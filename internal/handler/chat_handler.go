package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/middleware"
	"github.com/wellmind/campus-care/internal/service"
	"github.com/wellmind/campus-care/internal/service/chat"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// CreateSession 创建会话
func (h *ChatHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req chat.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	session, err := h.svc.Chat.CreateSession(c.Request.Context(), userID, &req)
	if err != nil {
		Error(c, err)
		return
	}

	Created(c, session)
}

// ListSessions 列出当前用户的会话
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	sessions, err := h.svc.Chat.ListSessions(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, sessions)
}

// GetSession 获取会话
func (h *ChatHandler) GetSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	session, err := h.svc.Chat.GetSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		NotFound(c, err.Error())
		return
	}

	Success(c, session)
}

// UpdateSession 更新会话
func (h *ChatHandler) UpdateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req chat.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	session, err := h.svc.Chat.UpdateSession(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, session)
}

// SendMessage 发送消息并获取回复
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req chat.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Chat.SendMessage(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		if errors.Is(err, chat.ErrTurnFailed) {
			InternalServerError(c, err.Error())
			return
		}
		NotFound(c, err.Error())
		return
	}

	Success(c, resp)
}

// GetMessages 获取会话消息
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	messages, err := h.svc.Chat.GetMessages(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		NotFound(c, err.Error())
		return
	}

	Success(c, messages)
}

// GetEmotionHistory 获取当前用户的情绪事件历史
func (h *ChatHandler) GetEmotionHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	events, err := h.svc.Chat.GetEmotionHistory(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, events)
}

// TrackEmotion 记录用户主动上报的情绪
func (h *ChatHandler) TrackEmotion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req chat.TrackEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	event, err := h.svc.Chat.TrackEmotion(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Created(c, event)
}

// GetAnalytics 获取会话统计
func (h *ChatHandler) GetAnalytics(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	analytics, err := h.svc.Chat.GetAnalytics(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotOwned) {
			Forbidden(c, err.Error())
			return
		}
		NotFound(c, err.Error())
		return
	}

	Success(c, analytics)
}
