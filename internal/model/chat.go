package model

import "time"

// 会话状态
const (
	SessionStatusActive    = "active"
	SessionStatusPaused    = "paused"
	SessionStatusCompleted = "completed"
	SessionStatusArchived  = "archived"
)

// 消息角色
const (
	RoleMessageUser      = "user"
	RoleMessageAssistant = "assistant"
	RoleMessageSystem    = "system"
)

// ChatSession 聊天会话
type ChatSession struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"index;size:36;not null" json:"user_id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Status         string    `gorm:"index;size:20;default:active" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	LastActivityAt time.Time `gorm:"index" json:"last_activity_at"`
}

// TableName 指定表名
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage 聊天消息
// 情绪与置信度要么同时写入，要么同时为空：
// assistant 消息携带的是同一轮 user 消息检测出的值，不会重新检测
type ChatMessage struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID  string    `gorm:"index;size:36;not null" json:"session_id"`
	Role       string    `gorm:"size:20;index" json:"role"` // user, assistant, system
	Content    string    `gorm:"type:text;not null" json:"content"`
	Emotion    string    `gorm:"size:20" json:"emotion,omitempty"`
	Confidence int       `json:"confidence,omitempty"` // 0-100
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 指定表名
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatAnalytics 会话统计
// 每轮对话后整体重写，是物化汇总而非权威数据
type ChatAnalytics struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID           string    `gorm:"uniqueIndex;size:36;not null" json:"session_id"`
	UserID              string    `gorm:"index;size:36;not null" json:"user_id"`
	MessageCount        int       `gorm:"default:0" json:"message_count"`
	AverageResponseTime int       `json:"average_response_time"` // 毫秒
	DominantEmotion     string    `gorm:"size:20" json:"dominant_emotion,omitempty"`
	SessionDuration     int       `json:"session_duration"` // 秒
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (ChatAnalytics) TableName() string {
	return "chat_analytics"
}
