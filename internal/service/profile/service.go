package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wellmind/campus-care/internal/model"
	"github.com/wellmind/campus-care/internal/repository"
)

// ErrEmployeeIDTaken 工号已被其他用户占用
var ErrEmployeeIDTaken = errors.New("employee ID is already taken")

// Service 用户档案服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建档案服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// UpdateRequest 完善档案请求
type UpdateRequest struct {
	EmployeeID     string `json:"employeeId" binding:"required,min=1,max=50"`
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Campus         string `json:"campus" binding:"required"`
	OfficeOrDept   string `json:"officeOrDept" binding:"required"`
	ProfilePicture string `json:"profilePicture"`
}

// Get 获取当前用户档案
func (s *Service) Get(ctx context.Context, userID string) (*model.UserInfo, error) {
	user, err := s.repo.Auth.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	return user.ToUserInfo(), nil
}

// Update 完善或更新档案，成功后标记档案已完成
// 换用新工号时要求该工号未被其他用户占用
func (s *Service) Update(ctx context.Context, userID string, req *UpdateRequest) (*model.UserInfo, error) {
	user, err := s.repo.Auth.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if !validCampus(req.Campus) {
		return nil, fmt.Errorf("unknown campus: %s", req.Campus)
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID != user.EmployeeID {
		existing, _ := s.repo.Auth.GetUserByEmployeeID(employeeID)
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmployeeIDTaken
		}
	}

	user.EmployeeID = employeeID
	user.Name = strings.TrimSpace(req.Name)
	user.Campus = req.Campus
	user.OfficeOrDept = req.OfficeOrDept
	user.ProfilePicture = req.ProfilePicture
	user.IsProfileComplete = true

	if err := s.repo.Auth.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user.ToUserInfo(), nil
}

// ValidateEmployeeID 检查工号是否可用
func (s *Service) ValidateEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	existing, err := s.repo.Auth.GetUserByEmployeeID(strings.TrimSpace(employeeID))
	if err != nil || existing == nil {
		return true, nil
	}
	return false, nil
}

// DeleteProfilePicture 删除头像
func (s *Service) DeleteProfilePicture(ctx context.Context, userID string) error {
	user, err := s.repo.Auth.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	user.ProfilePicture = ""
	return s.repo.Auth.UpdateUser(user)
}

// validCampus 校区是否在允许的列表里
func validCampus(campus string) bool {
	for _, c := range model.Campuses {
		if c == campus {
			return true
		}
	}
	return false
}
