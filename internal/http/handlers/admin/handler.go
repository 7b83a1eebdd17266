// Package admin 后台接口：面向商品 owner 的管理操作。
package admin

import "github.com/storefront-next/internal/provider"

// Handler 后台处理器入口
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
