package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// 登录方式
const (
	ProviderLocal  = "local"  // 邮箱+密码
	ProviderGoogle = "google" // Google OAuth
)

// User 用户实体
type User struct {
	ID           string    `json:"id"`    // UUID
	Email        string    `json:"email"` // 邮箱（唯一）
	Name         string    `json:"name"`  // 显示名
	PasswordHash string    `json:"-"`     // 密码哈希，Google账号为空
	Provider     string    `json:"provider"`
	ProviderID   string    `json:"provider_id,omitempty"` // 第三方账号ID
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewLocalUser 创建邮箱+密码用户
func NewLocalUser(email, name, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Provider:     ProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewGoogleUser 创建Google用户
func NewGoogleUser(email, name, providerID, avatarURL string) *User {
	now := time.Now()
	return &User{
		ID:         uuid.New().String(),
		Email:      strings.ToLower(email),
		Name:       name,
		Provider:   ProviderGoogle,
		ProviderID: providerID,
		AvatarURL:  avatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate 验证用户数据
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrInvalidUserID
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if u.Provider == ProviderLocal && u.PasswordHash == "" {
		return ErrInvalidPassword
	}
	return nil
}

// CanPasswordLogin 是否支持密码登录
// Google账号没有密码哈希，不能走密码登录
func (u *User) CanPasswordLogin() bool {
	return u.PasswordHash != ""
}
