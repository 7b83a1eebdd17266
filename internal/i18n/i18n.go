package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// LocaleEN 英文
	LocaleEN = "en"
	// LocaleZH 简体中文
	LocaleZH = "zh-CN"

	defaultLocale = LocaleEN
)

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return defaultLocale
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := part
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return defaultLocale
}

// T 按语言翻译 key，缺失时回退英文，再回退 key 本身
func T(locale, key string) string {
	if messages, ok := catalog[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[defaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 按语言翻译 key 并格式化参数
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "zh"):
		return LocaleZH
	case strings.HasPrefix(value, "en"):
		return LocaleEN
	default:
		return ""
	}
}

var catalog = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":            "invalid request payload",
		"error.unauthorized":           "authentication required",
		"error.auth_header_missing":    "authorization header missing",
		"error.auth_header_invalid":    "authorization header malformed",
		"error.token_invalid":          "invalid or expired token",
		"error.forbidden":              "you do not own this resource",
		"error.not_found":              "resource not found",
		"error.validation_failed":      "validation failed",
		"error.invalid_credentials":    "invalid email or password",
		"error.email_exists":           "email already registered",
		"error.cart_empty":             "cart is empty",
		"error.image_required":         "an image file is required",
		"error.upload_failed":          "file upload failed",
		"error.internal":               "internal server error",
		"error.payment_unavailable":    "payment provider unavailable",
		"error.invoice_failed":         "invoice generation failed",
		"error.rate_limited":           "too many attempts, retry in %d seconds",
		"error.login_too_many":         "too many login attempts, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable",
		"msg.signup_ok":                "user created successfully",
		"msg.deleted":                  "Deleted successfully",
		"msg.delete_failed":            "Deleting product failed",
		"msg.logout_ok":                "logged out",
	},
	LocaleZH: {
		"error.bad_request":            "请求参数无效",
		"error.unauthorized":           "请先登录",
		"error.auth_header_missing":    "缺少认证头",
		"error.auth_header_invalid":    "认证头格式错误",
		"error.token_invalid":          "Token 无效或已过期",
		"error.forbidden":              "无权操作该资源",
		"error.not_found":              "资源不存在",
		"error.validation_failed":      "参数校验失败",
		"error.invalid_credentials":    "邮箱或密码错误",
		"error.email_exists":           "邮箱已被注册",
		"error.cart_empty":             "购物车为空",
		"error.image_required":         "请上传图片",
		"error.upload_failed":          "文件上传失败",
		"error.internal":               "服务器内部错误",
		"error.payment_unavailable":    "支付服务不可用",
		"error.invoice_failed":         "发票生成失败",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后再试",
		"error.login_too_many":         "登录尝试过多，请 %d 秒后再试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"msg.signup_ok":                "注册成功",
		"msg.deleted":                  "删除成功",
		"msg.delete_failed":            "删除商品失败",
		"msg.logout_ok":                "已退出登录",
	},
}
