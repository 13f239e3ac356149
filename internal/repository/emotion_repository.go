package repository

import (
	"github.com/wellmind/campus-care/internal/model"
	"gorm.io/gorm"
)

// emotionRepositoryImpl 情绪事件数据访问
type emotionRepositoryImpl struct {
	db *gorm.DB
}

// 确保 emotionRepositoryImpl 实现了接口
var _ EmotionRepository = (*emotionRepositoryImpl)(nil)

// NewEmotionRepository 创建情绪仓库
func NewEmotionRepository(db *gorm.DB) EmotionRepository {
	return &emotionRepositoryImpl{db: db}
}

// CreateEvent 记录情绪事件
func (r *emotionRepositoryImpl) CreateEvent(event *model.EmotionEvent) error {
	return r.db.Create(event).Error
}

// ListEventsByUser 按用户列出情绪事件，按时间倒序
func (r *emotionRepositoryImpl) ListEventsByUser(userID string, limit int) ([]*model.EmotionEvent, error) {
	var events []*model.EmotionEvent
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
