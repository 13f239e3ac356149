package handler

import (
	"github.com/wellmind/campus-care/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Chat       *ChatHandler
	Template   *TemplateHandler
	Assessment *AssessmentHandler
	System     *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc),
		Profile:    NewProfileHandler(svc),
		Chat:       NewChatHandler(svc),
		Template:   NewTemplateHandler(svc),
		Assessment: NewAssessmentHandler(svc),
		System:     NewSystemHandler(svc),
	}
}
