package service

import (
	"context"
	"errors"
	"strings"

	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/internal/repository"
	"github.com/learn-track/server/pkg/crypto"
	"github.com/learn-track/server/pkg/jwt"
)

const (
	// MinPasswordLength 密码最小长度
	MinPasswordLength = 8
)

// TokenPair 一对访问令牌和刷新令牌
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // 访问令牌有效期（秒）
}

// AuthService 认证服务
type AuthService struct {
	users  repository.UserRepository
	hasher *crypto.PasswordHasher
	tokens *jwt.Manager
	google GoogleVerifier
}

// NewAuthService 创建认证服务
func NewAuthService(users repository.UserRepository, hasher *crypto.PasswordHasher, tokens *jwt.Manager, google GoogleVerifier) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		google: google,
	}
}

// Register 邮箱+密码注册，邮箱已被占用时返回 ErrEmailExists
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.User, *TokenPair, error) {
	if len(password) < MinPasswordLength {
		return nil, nil, domain.ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	user := domain.NewLocalUser(email, name, hash)
	if err := user.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login 邮箱+密码登录
// 用户不存在和密码错误统一返回 ErrInvalidCredentials，不泄露账号是否存在
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	// Google账号没有密码，不能走密码登录
	if !user.CanPasswordLogin() {
		return nil, nil, domain.ErrPasswordLoginUnavailable
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// GoogleLogin 用Google ID令牌登录
// 顺序: 先按第三方账号查找; 再按邮箱查找并关联; 都没有则创建新用户
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*domain.User, *TokenPair, error) {
	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, nil, domain.ErrGoogleTokenInvalid
	}

	user, err := s.users.GetByProvider(ctx, domain.ProviderGoogle, profile.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.linkOrCreate(ctx, profile)
	}
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh 用刷新令牌换取新的一对令牌
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// 确认用户仍然存在
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) linkOrCreate(ctx context.Context, profile *GoogleProfile) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, strings.ToLower(profile.Email))
	if err == nil {
		// 邮箱已注册，关联Google账号
		if err := s.users.LinkProvider(ctx, existing.ID, domain.ProviderGoogle, profile.Subject, profile.Picture); err != nil {
			return nil, err
		}
		existing.Provider = domain.ProviderGoogle
		existing.ProviderID = profile.Subject
		existing.AvatarURL = profile.Picture
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := domain.NewGoogleUser(profile.Email, profile.Name, profile.Subject, profile.Picture)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.tokens.GetExpiryTime().Seconds()),
	}, nil
}
