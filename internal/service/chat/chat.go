package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
	"github.com/wellmind/campus-care/internal/service/emotion"
	"github.com/wellmind/campus-care/internal/service/responder"
)

// ErrSessionNotOwned 会话不属于当前用户
var ErrSessionNotOwned = errors.New("session does not belong to user")

// ErrTurnFailed 对话轮次处理失败时对外的统一错误
// 具体原因只写日志，不向客户端暴露存储细节
var ErrTurnFailed = errors.New("failed to process message")

// Service 聊天服务
type Service struct {
	repo     *repository.Repositories
	selector *responder.Selector
	pageSize int
}

// NewService 创建聊天服务
func NewService(repo *repository.Repositories, selector *responder.Selector, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &Service{repo: repo, selector: selector, pageSize: pageSize}
}

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateSession 创建会话并初始化统计记录
func (s *Service) CreateSession(ctx context.Context, userID string, req *CreateSessionRequest) (*model.ChatSession, error) {
	now := time.Now()
	session := &model.ChatSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          req.Title,
		Status:         model.SessionStatusActive,
		LastActivityAt: now,
	}

	if err := s.repo.Chat.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	analytics := &model.ChatAnalytics{
		ID:        uuid.New().String(),
		SessionID: session.ID,
		UserID:    userID,
	}
	if err := s.repo.Chat.CreateAnalytics(analytics); err != nil {
		return nil, fmt.Errorf("failed to create session analytics: %w", err)
	}

	return session, nil
}

// GetSession 获取会话，校验归属
func (s *Service) GetSession(ctx context.Context, userID, sessionID string) (*model.ChatSession, error) {
	session, err := s.repo.Chat.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionNotOwned
	}
	return session, nil
}

// ListSessions 列出用户会话，按最近活动倒序
func (s *Service) ListSessions(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	return s.repo.Chat.ListSessionsByUser(userID, s.pageSize)
}

// UpdateSessionRequest 更新会话请求
type UpdateSessionRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// UpdateSession 更新会话标题或状态
func (s *Service) UpdateSession(ctx context.Context, userID, sessionID string, req *UpdateSessionRequest) (*model.ChatSession, error) {
	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		session.Title = req.Title
	}
	if req.Status != "" {
		switch req.Status {
		case model.SessionStatusActive, model.SessionStatusPaused, model.SessionStatusCompleted, model.SessionStatusArchived:
			session.Status = req.Status
		default:
			return nil, fmt.Errorf("invalid session status: %s", req.Status)
		}
	}

	if err := s.repo.Chat.UpdateSession(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}

// GetMessages 获取会话消息，按时间正序
func (s *Service) GetMessages(ctx context.Context, userID, sessionID string) ([]*model.ChatMessage, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.repo.Chat.ListMessagesBySession(sessionID)
}

// GetEmotionHistory 获取用户最近的情绪事件，按时间倒序
func (s *Service) GetEmotionHistory(ctx context.Context, userID string) ([]*model.EmotionEvent, error) {
	return s.repo.Emotion.ListEventsByUser(userID, s.pageSize)
}

// TrackEmotionRequest 主动上报情绪请求
type TrackEmotionRequest struct {
	Emotion   string `json:"emotion" binding:"required"`
	Intensity int    `json:"intensity" binding:"required,gte=1,lte=10"`
	Context   string `json:"context"`
	SessionID string `json:"sessionId"`
}

// TrackEmotion 记录用户主动上报的情绪事件
// 关联会话时校验会话归属
func (s *Service) TrackEmotion(ctx context.Context, userID string, req *TrackEmotionRequest) (*model.EmotionEvent, error) {
	if !model.IsKnownEmotion(req.Emotion) {
		return nil, fmt.Errorf("unknown emotion: %s", req.Emotion)
	}
	if req.SessionID != "" {
		if _, err := s.GetSession(ctx, userID, req.SessionID); err != nil {
			return nil, err
		}
	}

	event := &model.EmotionEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		SessionID: req.SessionID,
		Emotion:   req.Emotion,
		Intensity: req.Intensity,
		Context:   truncate(req.Context, 100),
	}
	if err := s.repo.Emotion.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to track emotion: %w", err)
	}
	return event, nil
}

// GetAnalytics 获取会话统计
func (s *Service) GetAnalytics(ctx context.Context, userID, sessionID string) (*model.ChatAnalytics, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.repo.Chat.GetAnalyticsBySession(sessionID)
}

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// TurnAnalytics 单轮对话的统计
type TurnAnalytics struct {
	ResponseTimeMs    int64 `json:"responseTime"`
	EmotionConfidence int   `json:"emotionConfidence"`
}

// SendMessageResponse 发送消息响应
type SendMessageResponse struct {
	Message          string        `json:"message"`
	Emotion          string        `json:"emotion"`
	CopingStrategies []string      `json:"copingStrategies"`
	SessionID        string        `json:"sessionId"`
	MessageID        string        `json:"messageId"`
	Analytics        TurnAnalytics `json:"analytics"`
}

// SendMessage 处理一轮对话：
// 检测用户情绪，保存用户消息并记录情绪事件，
// 选择回复并以助手身份保存，最后更新会话活动时间与统计
func (s *Service) SendMessage(ctx context.Context, userID, sessionID string, req *SendMessageRequest) (*SendMessageResponse, error) {
	start := time.Now()

	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	detection := emotion.Detect(req.Content)

	userMessage := &model.ChatMessage{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Role:       model.RoleMessageUser,
		Content:    req.Content,
		Emotion:    detection.Emotion,
		Confidence: detection.Confidence,
	}
	if err := s.repo.Chat.CreateMessage(userMessage); err != nil {
		log.Printf("Error: failed to store user message for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	event := &model.EmotionEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		SessionID: sessionID,
		Emotion:   detection.Emotion,
		Intensity: emotion.Intensity(detection.Confidence),
		Context:   truncate(req.Content, 100),
	}
	if err := s.repo.Emotion.CreateEvent(event); err != nil {
		log.Printf("Error: failed to record emotion event for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	selection, err := s.selector.Select(req.Content, detection.Emotion)
	if err != nil {
		log.Printf("Error: failed to select response for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	assistantMessage := &model.ChatMessage{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Role:       model.RoleMessageAssistant,
		Content:    selection.Content,
		Emotion:    detection.Emotion,
		Confidence: detection.Confidence,
	}
	if err := s.repo.Chat.CreateMessage(assistantMessage); err != nil {
		log.Printf("Error: failed to store assistant message for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	now := time.Now()
	session.LastActivityAt = now
	if err := s.repo.Chat.UpdateSession(session); err != nil {
		log.Printf("Error: failed to update session activity for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	responseTime := now.Sub(start).Milliseconds()
	if err := s.updateAnalytics(session, detection.Emotion, responseTime, now); err != nil {
		log.Printf("Error: failed to update analytics for session %s: %v", sessionID, err)
		return nil, ErrTurnFailed
	}

	return &SendMessageResponse{
		Message:          selection.Content,
		Emotion:          detection.Emotion,
		CopingStrategies: selection.CopingStrategies,
		SessionID:        sessionID,
		MessageID:        assistantMessage.ID,
		Analytics: TurnAnalytics{
			ResponseTimeMs:    responseTime,
			EmotionConfidence: detection.Confidence,
		},
	}, nil
}

// updateAnalytics 每轮对话后重写会话统计
// 消息数 +2（一问一答），响应耗时取本轮，主导情绪取本轮检测结果
func (s *Service) updateAnalytics(session *model.ChatSession, turnEmotion string, responseTime int64, now time.Time) error {
	analytics, err := s.repo.Chat.GetAnalyticsBySession(session.ID)
	if err != nil {
		analytics = &model.ChatAnalytics{
			ID:        uuid.New().String(),
			SessionID: session.ID,
			UserID:    session.UserID,
		}
	}

	analytics.MessageCount += 2
	analytics.AverageResponseTime = int(responseTime)
	analytics.DominantEmotion = turnEmotion
	analytics.SessionDuration = int(now.Sub(session.CreatedAt).Seconds())

	if err := s.repo.Chat.SaveAnalytics(analytics); err != nil {
		return fmt.Errorf("failed to update session analytics: %w", err)
	}
	return nil
}

// truncate 按字符截断字符串
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
