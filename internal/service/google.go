package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// GoogleIssuerURL Google的OIDC发行方地址
const GoogleIssuerURL = "https://accounts.google.com"

// GoogleProfile Google ID令牌里的用户信息
type GoogleProfile struct {
	Subject string // Google账号的唯一ID
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier Google ID令牌验证接口
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleProfile, error)
}

// DisabledGoogleVerifier 未配置Google登录时的占位实现
type DisabledGoogleVerifier struct{}

// Verify 始终失败
func (DisabledGoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	return nil, fmt.Errorf("google sign-in is not configured")
}

// OIDCGoogleVerifier 基于go-oidc的Google ID令牌验证
type OIDCGoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier 创建Google ID令牌验证器
// 会通过OIDC discovery拉取Google的签名密钥
func NewGoogleVerifier(ctx context.Context, clientID string) (*OIDCGoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, GoogleIssuerURL)
	if err != nil {
		return nil, fmt.Errorf("query google oidc provider: %w", err)
	}

	return &OIDCGoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// Verify 验证Google ID令牌并提取用户信息
func (v *OIDCGoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	token, err := v.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify google id token: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode google claims: %w", err)
	}
	if !claims.EmailVerified {
		return nil, fmt.Errorf("google account email not verified")
	}

	return &GoogleProfile{
		Subject: token.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}
