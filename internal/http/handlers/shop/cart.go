package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
)

// CartItemRequest 购物车操作请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
}

// GetCart 获取当前用户购物车与总价
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	lines, total, err := h.CartService.ListByUser(c.Request.Context(), uid)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{
		"items": lines,
		"total": total,
	})
}

// AddCartItem 加入购物车，已有行数量 +1
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.AddItem(c.Request.Context(), uid, req.ProductID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// RemoveCartItem 整行移除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.RemoveItem(c.Request.Context(), uid, req.ProductID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}
