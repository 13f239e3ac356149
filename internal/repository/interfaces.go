// Package repository 定义数据访问接口
// 接口抽象使依赖注入和单元测试成为可能
package repository

import "github.com/wellmind/campus-care/internal/model"

// ========== AuthRepository 接口 ==========

// AuthRepository 用户与令牌数据访问接口
type AuthRepository interface {
	CreateUser(user *model.User) error
	GetUserByID(id string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByEmployeeID(employeeID string) (*model.User, error)
	UpdateUser(user *model.User) error

	CreateToken(token *model.AuthToken) error
	GetTokenByValue(token string) (*model.AuthToken, error)
	RevokeToken(id string) error
	RevokeUserTokens(userID, tokenType string) error
}

// ========== ChatRepository 接口 ==========

// ChatRepository 会话、消息与统计数据访问接口
// 接口定义使 Service 层可以轻松 mock 进行单元测试
type ChatRepository interface {
	CreateSession(session *model.ChatSession) error
	GetSessionByID(id string) (*model.ChatSession, error)
	ListSessionsByUser(userID string, limit int) ([]*model.ChatSession, error)
	UpdateSession(session *model.ChatSession) error

	CreateMessage(message *model.ChatMessage) error
	ListMessagesBySession(sessionID string) ([]*model.ChatMessage, error)

	CreateAnalytics(analytics *model.ChatAnalytics) error
	GetAnalyticsBySession(sessionID string) (*model.ChatAnalytics, error)
	SaveAnalytics(analytics *model.ChatAnalytics) error
}

// ========== EmotionRepository 接口 ==========

// EmotionRepository 情绪事件数据访问接口
type EmotionRepository interface {
	CreateEvent(event *model.EmotionEvent) error
	ListEventsByUser(userID string, limit int) ([]*model.EmotionEvent, error)
}

// ========== TemplateRepository 接口 ==========

// TemplateRepository 回复模板数据访问接口
type TemplateRepository interface {
	Create(template *model.ResponseTemplate) error
	FindActiveByEmotion(emotion string, limit int) ([]*model.ResponseTemplate, error)
	List() ([]*model.ResponseTemplate, error)
	Count() (int64, error)
}

// ========== AssessmentRepository 接口 ==========

// AssessmentRepository 预评估数据访问接口
type AssessmentRepository interface {
	Create(assessment *model.PreAssessment) error
	Update(assessment *model.PreAssessment) error
	GetByUserID(userID string) (*model.PreAssessment, error)
}
