package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/middleware"
	"github.com/wellmind/campus-care/internal/service"
	"github.com/wellmind/campus-care/internal/service/assessment"
)

// AssessmentHandler 预评估处理器
type AssessmentHandler struct {
	svc *service.Services
}

// NewAssessmentHandler 创建预评估处理器
func NewAssessmentHandler(svc *service.Services) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// Submit 提交预评估问卷
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req assessment.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Assessment.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, resp)
}

// Get 查询预评估状态与数据
func (h *AssessmentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	resp, err := h.svc.Assessment.Get(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, resp)
}
