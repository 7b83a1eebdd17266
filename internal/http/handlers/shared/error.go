package shared

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/service"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message)
}

// RespondBrowseError 浏览链路（店面与后台）的错误处理。
// 访问他人资源时跳回首页而不是裸 403。
func RespondBrowseError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrForbidden) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	RespondServiceError(c, err)
}

// RespondServiceError 把业务错误映射为 HTTP 响应。
// 校验错误带逐字段数据返回 422，其余按错误类别映射状态码。
func RespondServiceError(c *gin.Context, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		locale := i18n.ResolveLocale(c)
		response.ErrorWithData(c, response.CodeUnprocessable, i18n.T(locale, "error.validation_failed"), verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		RespondError(c, response.CodeNotFound, "error.not_found", nil)
	case errors.Is(err, service.ErrForbidden):
		RespondError(c, response.CodeForbidden, "error.forbidden", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
	case errors.Is(err, service.ErrEmailExists):
		RespondError(c, response.CodeUnprocessable, "error.email_exists", nil)
	case errors.Is(err, service.ErrCartEmpty):
		RespondError(c, response.CodeUnprocessable, "error.cart_empty", nil)
	case errors.Is(err, service.ErrPaymentUnavailable):
		RespondError(c, response.CodeInternal, "error.payment_unavailable", nil)
	case errors.Is(err, service.ErrUploadTooLarge), errors.Is(err, service.ErrUploadType):
		RespondError(c, response.CodeUnprocessable, "error.upload_failed", nil)
	default:
		RespondError(c, response.CodeInternal, "error.internal", err)
	}
}
