// Package api REST 接口：JWT 认证的帖子增删改查与图片上传。
package api

import "github.com/storefront-next/internal/provider"

// Handler API 处理器入口
type Handler struct {
	*provider.Container
}

// New 创建 API 处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
