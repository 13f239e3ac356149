package model

import "time"

// 情绪标签（固定集合）
var EmotionTypes = []string{
	"happy", "sad", "anxious", "angry", "neutral",
	"excited", "frustrated", "calm", "stressed", "grateful",
}

// IsKnownEmotion 判断是否为已知情绪标签
func IsKnownEmotion(emotion string) bool {
	for _, e := range EmotionTypes {
		if e == emotion {
			return true
		}
	}
	return false
}

// EmotionEvent 情绪事件
// 由每条用户消息确定性派生，仅追加
type EmotionEvent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	SessionID string    `gorm:"index;size:36" json:"session_id,omitempty"`
	Emotion   string    `gorm:"size:20;not null" json:"emotion"`
	Intensity int       `gorm:"not null" json:"intensity"` // 1-10
	Context   string    `gorm:"size:100" json:"context,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (EmotionEvent) TableName() string {
	return "emotion_events"
}
