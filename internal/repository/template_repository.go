package repository

import (
	"github.com/wellmind/campus-care/internal/model"
	"gorm.io/gorm"
)

// templateRepositoryImpl 响应模板数据访问
type templateRepositoryImpl struct {
	db *gorm.DB
}

// 确保 templateRepositoryImpl 实现了接口
var _ TemplateRepository = (*templateRepositoryImpl)(nil)

// NewTemplateRepository 创建模板仓库
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// Create 创建模板
func (r *templateRepositoryImpl) Create(template *model.ResponseTemplate) error {
	return r.db.Create(template).Error
}

// FindActiveByEmotion 按情绪查询启用的模板，按优先级倒序
func (r *templateRepositoryImpl) FindActiveByEmotion(emotion string, limit int) ([]*model.ResponseTemplate, error) {
	var templates []*model.ResponseTemplate
	err := r.db.Where("emotion = ? AND is_active = ?", emotion, true).
		Order("priority DESC").
		Limit(limit).
		Find(&templates).Error
	return templates, err
}

// List 列出全部模板
func (r *templateRepositoryImpl) List() ([]*model.ResponseTemplate, error) {
	var templates []*model.ResponseTemplate
	err := r.db.Order("emotion ASC, priority DESC").Find(&templates).Error
	return templates, err
}

// Count 统计模板数量
func (r *templateRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ResponseTemplate{}).Count(&count).Error
	return count, err
}
