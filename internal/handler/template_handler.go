package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/service"
	"github.com/wellmind/campus-care/internal/service/template"
)

// TemplateHandler 回复模板处理器
type TemplateHandler struct {
	svc *service.Services
}

// NewTemplateHandler 创建模板处理器
func NewTemplateHandler(svc *service.Services) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// CreateTemplate 创建模板
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req template.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	created, err := h.svc.Template.Create(c.Request.Context(), &req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Created(c, created)
}

// ListTemplates 列出全部模板
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.svc.Template.List(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, gin.H{
		"templates": templates,
		"count":     len(templates),
	})
}

// FindByEmotion 按情绪查询启用的模板
func (h *TemplateHandler) FindByEmotion(c *gin.Context) {
	emotion := c.Query("emotion")
	if emotion == "" {
		BadRequest(c, "emotion is required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	templates, err := h.svc.Template.FindByEmotion(c.Request.Context(), emotion, limit)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, templates)
}

// SeedTemplates 写入内置模板种子
func (h *TemplateHandler) SeedTemplates(c *gin.Context) {
	result, err := h.svc.Template.Seed(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, result)
}
