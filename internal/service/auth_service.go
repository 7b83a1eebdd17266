package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// SignUpInput 注册入参
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	DisplayName     string
}

// LoginInput 登录入参
type LoginInput struct {
	Email    string
	Password string
}

// TokenClaims JWT 自定义 Claims
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService 账号注册、登录、JWT 与会话管理
type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// SignUp 注册新账号。邮箱重复返回 ErrEmailExists，字段非法返回 *ValidationError。
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*models.User, error) {
	rules := []FieldRule{
		{Field: "email", Value: input.Email, Required: true, Email: true},
		{Field: "password", Value: input.Password, Required: true, MinLen: s.cfg.Security.PasswordMinLength},
	}
	if verr := evaluateRules(rules); verr != nil {
		return nil, verr
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != input.Password {
		return nil, NewValidationError("confirm_password", "passwords do not match")
	}

	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		DisplayName:  input.DisplayName,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Infow("user_signed_up", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login 校验凭证。账号不存在与密码不匹配内部可区分，
// 对外都折叠为 ErrInvalidCredentials。
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrPasswordMismatch
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}

// IssueToken 签发 JWT
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken 解析并校验 JWT，失败返回 ErrInvalidCredentials
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// StartSession 创建服务端会话，返回会话令牌
func (s *AuthService) StartSession(ctx context.Context, user *models.User) (string, error) {
	token := uuid.NewString()
	ttl := time.Duration(s.cfg.Session.ExpireHours) * time.Hour
	if err := cache.SaveSession(ctx, token, user.ID, user.Email, ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// ResolveSession 解析会话令牌，返回 (userID, email, ok)
func (s *AuthService) ResolveSession(ctx context.Context, token string) (uint, string, bool) {
	userID, email, ok, err := cache.ResolveSession(ctx, token)
	if err != nil {
		logger.Warnw("session_resolve_failed", "error", err)
		return 0, "", false
	}
	return userID, email, ok
}

// EndSession 注销会话
func (s *AuthService) EndSession(ctx context.Context, token string) {
	if err := cache.DeleteSession(ctx, token); err != nil {
		logger.Warnw("session_delete_failed", "error", err)
	}
}
