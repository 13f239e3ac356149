package repository

import (
	"github.com/wellmind/campus-care/internal/model"
	"gorm.io/gorm"
)

// chatRepositoryImpl 会话、消息与统计数据访问
type chatRepositoryImpl struct {
	db *gorm.DB
}

// 确保 chatRepositoryImpl 实现了接口
var _ ChatRepository = (*chatRepositoryImpl)(nil)

// NewChatRepository 创建聊天仓库
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepositoryImpl{db: db}
}

// CreateSession 创建会话
func (r *chatRepositoryImpl) CreateSession(session *model.ChatSession) error {
	return r.db.Create(session).Error
}

// GetSessionByID 按 ID 获取会话
func (r *chatRepositoryImpl) GetSessionByID(id string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessionsByUser 按用户列出会话，按最近活动倒序
func (r *chatRepositoryImpl) ListSessionsByUser(userID string, limit int) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	err := r.db.Where("user_id = ?", userID).
		Order("last_activity_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// UpdateSession 更新会话
func (r *chatRepositoryImpl) UpdateSession(session *model.ChatSession) error {
	return r.db.Save(session).Error
}

// CreateMessage 保存消息
func (r *chatRepositoryImpl) CreateMessage(message *model.ChatMessage) error {
	return r.db.Create(message).Error
}

// ListMessagesBySession 按会话列出消息，按时间正序
func (r *chatRepositoryImpl) ListMessagesBySession(sessionID string) ([]*model.ChatMessage, error) {
	var messages []*model.ChatMessage
	err := r.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// CreateAnalytics 创建会话统计
func (r *chatRepositoryImpl) CreateAnalytics(analytics *model.ChatAnalytics) error {
	return r.db.Create(analytics).Error
}

// GetAnalyticsBySession 按会话获取统计
func (r *chatRepositoryImpl) GetAnalyticsBySession(sessionID string) (*model.ChatAnalytics, error) {
	var analytics model.ChatAnalytics
	err := r.db.Where("session_id = ?", sessionID).First(&analytics).Error
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// SaveAnalytics 保存会话统计
func (r *chatRepositoryImpl) SaveAnalytics(analytics *model.ChatAnalytics) error {
	return r.db.Save(analytics).Error
}
