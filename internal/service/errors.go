package service

import (
	"errors"
	"fmt"
	"strings"
)

// 业务错误。Handler 层通过 errors.Is / errors.As 映射到 HTTP 状态码。
var (
	// ErrNotFound 目标实体不存在
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden 调用者不是资源 owner
	ErrForbidden = errors.New("caller does not own this resource")
	// ErrInvalidCredentials 登录凭证错误（对外统一口径）
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailExists 邮箱已注册
	ErrEmailExists = errors.New("email already registered")
	// ErrCartEmpty 结账时购物车为空
	ErrCartEmpty = errors.New("cart is empty")
	// ErrPaymentUnavailable 支付渠道未配置
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// 登录失败的内部细分。两者都包装 ErrInvalidCredentials：
// 日志可区分"账号不存在"与"密码不匹配"，对外响应不区分。
var (
	ErrUserNotFound     = fmt.Errorf("no such account: %w", ErrInvalidCredentials)
	ErrPasswordMismatch = fmt.Errorf("password mismatch: %w", ErrInvalidCredentials)
)

// FieldError 单字段校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 字段校验失败，携带逐字段错误列表
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError 创建单字段校验错误
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidationError 判断是否为校验错误
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
