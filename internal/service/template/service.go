package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
)

// Service 响应模板服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建模板服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// CreateRequest 创建模板请求
type CreateRequest struct {
	Emotion          string   `json:"emotion" binding:"required"`
	ResponseType     string   `json:"responseType" binding:"required"`
	Content          string   `json:"content" binding:"required"`
	CopingStrategies []string `json:"copingStrategies"`
	Priority         int      `json:"priority"`
}

// Create 创建模板
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*model.ResponseTemplate, error) {
	if !model.IsKnownEmotion(req.Emotion) {
		return nil, fmt.Errorf("unknown emotion: %s", req.Emotion)
	}

	template := &model.ResponseTemplate{
		ID:               uuid.New().String(),
		Emotion:          req.Emotion,
		ResponseType:     req.ResponseType,
		Content:          req.Content,
		CopingStrategies: req.CopingStrategies,
		IsActive:         true,
		Priority:         req.Priority,
	}

	if err := s.repo.Template.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

// List 列出全部模板
func (s *Service) List(ctx context.Context) ([]*model.ResponseTemplate, error) {
	return s.repo.Template.List()
}

// FindByEmotion 按情绪查询启用的模板
func (s *Service) FindByEmotion(ctx context.Context, emotion string, limit int) ([]*model.ResponseTemplate, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.repo.Template.FindActiveByEmotion(emotion, limit)
}
