package repository

import (
	"github.com/wellmind/campus-care/internal/model"
	"gorm.io/gorm"
)

// assessmentRepositoryImpl 心理预评估数据访问
type assessmentRepositoryImpl struct {
	db *gorm.DB
}

// 确保 assessmentRepositoryImpl 实现了接口
var _ AssessmentRepository = (*assessmentRepositoryImpl)(nil)

// NewAssessmentRepository 创建评估仓库
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepositoryImpl{db: db}
}

// Create 创建评估记录
func (r *assessmentRepositoryImpl) Create(assessment *model.PreAssessment) error {
	return r.db.Create(assessment).Error
}

// Update 更新评估记录
func (r *assessmentRepositoryImpl) Update(assessment *model.PreAssessment) error {
	return r.db.Save(assessment).Error
}

// GetByUserID 按用户获取评估记录
func (r *assessmentRepositoryImpl) GetByUserID(userID string) (*model.PreAssessment, error) {
	var assessment model.PreAssessment
	err := r.db.Where("user_id = ?", userID).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
