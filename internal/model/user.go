package model

import "time"

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 认证方式
const (
	AuthTypePassword = "password"
	AuthTypeOAuth    = "oauth"
)

// 校区
var Campuses = []string{"Main", "North", "South", "East", "West"}

// User 用户
type User struct {
	ID                        string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID                string    `gorm:"uniqueIndex;size:50" json:"employee_id"`
	Name                      string    `gorm:"size:255;not null" json:"name"`
	Email                     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash              string    `gorm:"size:255" json:"-"`
	AuthType                  string    `gorm:"size:20;default:password" json:"auth_type"`
	Role                      string    `gorm:"size:20;default:user" json:"role"`
	Campus                    string    `gorm:"size:20" json:"campus"`
	OfficeOrDept              string    `gorm:"size:255" json:"office_or_dept"`
	ProfilePicture            string    `gorm:"size:500" json:"profile_picture"`
	IsProfileComplete         bool      `gorm:"default:false" json:"is_profile_complete"`
	HasCompletedPreAssessment bool      `gorm:"default:false" json:"has_completed_pre_assessment"`
	CreatedAt                 time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// AuthToken 认证令牌
type AuthToken struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	Token     string    `gorm:"type:text;not null" json:"-"`
	TokenType string    `gorm:"size:50;not null" json:"token_type"` // access_token, refresh_token
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `gorm:"default:false" json:"is_revoked"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// UserInfo 用户信息（不含敏感数据）
type UserInfo struct {
	ID                        string    `json:"id"`
	EmployeeID                string    `json:"employee_id"`
	Name                      string    `json:"name"`
	Email                     string    `json:"email"`
	Role                      string    `json:"role"`
	Campus                    string    `json:"campus"`
	OfficeOrDept              string    `json:"office_or_dept"`
	ProfilePicture            string    `json:"profile_picture"`
	IsProfileComplete         bool      `json:"is_profile_complete"`
	HasCompletedPreAssessment bool      `json:"has_completed_pre_assessment"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ToUserInfo 转换为 UserInfo
func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:                        u.ID,
		EmployeeID:                u.EmployeeID,
		Name:                      u.Name,
		Email:                     u.Email,
		Role:                      u.Role,
		Campus:                    u.Campus,
		OfficeOrDept:              u.OfficeOrDept,
		ProfilePicture:            u.ProfilePicture,
		IsProfileComplete:         u.IsProfileComplete,
		HasCompletedPreAssessment: u.HasCompletedPreAssessment,
		CreatedAt:                 u.CreatedAt,
		UpdatedAt:                 u.UpdatedAt,
	}
}
