package model

import "time"

// 回复类型
const (
	ResponseTypeComfort     = "comfort"
	ResponseTypeGuidance    = "guidance"
	ResponseTypeCelebration = "celebration"
	ResponseTypeCoping      = "coping"
)

// ResponseTemplate 回复模板
// 按 priority 降序消费，先于内存语料库生效
type ResponseTemplate struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Emotion          string     `gorm:"index;size:20;not null" json:"emotion"`
	ResponseType     string     `gorm:"size:20;not null" json:"response_type"` // comfort, guidance, celebration, coping
	Content          string     `gorm:"type:text;not null" json:"content"`
	CopingStrategies StringList `gorm:"type:jsonb" json:"coping_strategies"`
	IsActive         bool       `gorm:"index;default:true" json:"is_active"`
	Priority         int        `gorm:"default:1" json:"priority"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (ResponseTemplate) TableName() string {
	return "response_templates"
}
