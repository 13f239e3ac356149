package repository

import (
	"github.com/wellmind/campus-care/internal/model"
	"gorm.io/gorm"
)

// authRepositoryImpl 用户与令牌数据访问
type authRepositoryImpl struct {
	db *gorm.DB
}

// 确保 authRepositoryImpl 实现了接口
var _ AuthRepository = (*authRepositoryImpl)(nil)

// NewAuthRepository 创建认证仓库
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepositoryImpl{db: db}
}

// CreateUser 创建用户
func (r *authRepositoryImpl) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

// GetUserByID 按 ID 获取用户
func (r *authRepositoryImpl) GetUserByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 按邮箱获取用户
func (r *authRepositoryImpl) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmployeeID 按工号获取用户
func (r *authRepositoryImpl) GetUserByEmployeeID(employeeID string) (*model.User, error) {
	var user model.User
	err := r.db.Where("employee_id = ?", employeeID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser 更新用户
func (r *authRepositoryImpl) UpdateUser(user *model.User) error {
	return r.db.Save(user).Error
}

// CreateToken 保存令牌
func (r *authRepositoryImpl) CreateToken(token *model.AuthToken) error {
	return r.db.Create(token).Error
}

// GetTokenByValue 按令牌值获取记录
func (r *authRepositoryImpl) GetTokenByValue(token string) (*model.AuthToken, error) {
	var record model.AuthToken
	err := r.db.Where("token = ?", token).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// RevokeToken 撤销单个令牌
func (r *authRepositoryImpl) RevokeToken(id string) error {
	return r.db.Model(&model.AuthToken{}).
		Where("id = ?", id).
		UpdateColumn("is_revoked", true).Error
}

// RevokeUserTokens 撤销用户的指定类型令牌
func (r *authRepositoryImpl) RevokeUserTokens(userID, tokenType string) error {
	return r.db.Model(&model.AuthToken{}).
		Where("user_id = ? AND token_type = ? AND is_revoked = ?", userID, tokenType, false).
		UpdateColumn("is_revoked", true).Error
}
