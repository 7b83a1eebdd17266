package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
)

// CurrentUserID 从上下文读取认证中间件写入的用户 ID。
// 缺失时返回 401 并中止请求。
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextUserIDKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	return id, true
}

// CurrentUserEmail 从上下文读取当前用户邮箱，未认证返回空串。
func CurrentUserEmail(c *gin.Context) string {
	if value, ok := c.Get(constants.ContextEmailKey); ok {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}

// ParamUint 解析路径参数中的正整数 ID，非法返回 404。
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeNotFound, "error.not_found", nil)
		return 0, false
	}
	return uint(id), true
}
