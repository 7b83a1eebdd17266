// Package graphql 在 /graphql 暴露帖子与账号操作的 GraphQL 门面，
// 语义与 REST 接口一致。
package graphql

import (
	"errors"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"
)

// taggedError 带状态码与逐字段数据的 GraphQL 错误。
// graphql-go 会把 Extensions 序列化进 errors[].extensions。
type taggedError struct {
	message string
	code    int
	data    []service.FieldError
}

func (e *taggedError) Error() string {
	return e.message
}

// Extensions 实现 gqlerrors.ExtendedError
func (e *taggedError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if len(e.data) > 0 {
		ext["data"] = e.data
	}
	return ext
}

// wrapError 把业务错误映射为带标签的 GraphQL 错误
func wrapError(err error) error {
	if verr, ok := service.AsValidationError(err); ok {
		return &taggedError{message: "validation failed", code: response.CodeUnprocessable, data: verr.Fields}
	}
	switch {
	case errors.Is(err, service.ErrNotFound):
		return &taggedError{message: "resource not found", code: response.CodeNotFound}
	case errors.Is(err, service.ErrForbidden):
		return &taggedError{message: "not authorized", code: response.CodeForbidden}
	case errors.Is(err, service.ErrInvalidCredentials):
		return &taggedError{message: "invalid credentials", code: response.CodeUnauthorized}
	case errors.Is(err, service.ErrEmailExists):
		return &taggedError{message: "email already registered", code: response.CodeUnprocessable}
	default:
		return &taggedError{message: "internal error", code: response.CodeInternal}
	}
}

// errUnauthenticated 缺少或非法令牌
var errUnauthenticated = &taggedError{message: "not authenticated", code: response.CodeUnauthorized}
