// Package shop 店面侧接口：会话认证、商品浏览、购物车、下单与发票。
package shop

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/provider"
)

// Handler 店面处理器入口
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// respondError 店面侧错误处理，越权访问跳回首页
func respondError(c *gin.Context, err error) {
	shared.RespondBrowseError(c, err)
}
