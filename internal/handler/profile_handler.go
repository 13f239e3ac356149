package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/middleware"
	"github.com/wellmind/campus-care/internal/service"
	"github.com/wellmind/campus-care/internal/service/profile"
)

// ProfileHandler 档案处理器
type ProfileHandler struct {
	svc *service.Services
}

// NewProfileHandler 创建档案处理器
func NewProfileHandler(svc *service.Services) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile 获取当前用户档案
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	info, err := h.svc.Profile.Get(c.Request.Context(), userID)
	if err != nil {
		NotFound(c, err.Error())
		return
	}

	Success(c, info)
}

// UpdateProfile 完善或更新档案
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	info, err := h.svc.Profile.Update(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, profile.ErrEmployeeIDTaken) {
			Conflict(c, err.Error())
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Success(c, info)
}

// ValidateEmployeeID 检查工号是否可用
func (h *ProfileHandler) ValidateEmployeeID(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		BadRequest(c, "employee_id is required")
		return
	}

	available, err := h.svc.Profile.ValidateEmployeeID(c.Request.Context(), employeeID)
	if err != nil {
		Error(c, err)
		return
	}

	message := "Employee ID is available"
	if !available {
		message = "Employee ID already exists"
	}
	Success(c, gin.H{
		"isValid": available,
		"message": message,
	})
}

// DeleteProfilePicture 删除头像
func (h *ProfileHandler) DeleteProfilePicture(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.svc.Profile.DeleteProfilePicture(c.Request.Context(), userID); err != nil {
		Error(c, err)
		return
	}

	Success(c, nil)
}
