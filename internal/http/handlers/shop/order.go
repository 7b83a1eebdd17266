package shop

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"
)

// Checkout 进入结账。配置了 Stripe 时跳转托管支付页，
// 未配置时直接下单并跳转订单列表。
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	url, err := h.OrderService.BuildCheckoutSession(c.Request.Context(), uid)
	if err == nil {
		c.Redirect(http.StatusSeeOther, url)
		return
	}
	if !errors.Is(err, service.ErrPaymentUnavailable) {
		shared.RespondServiceError(c, err)
		return
	}

	h.placeOrder(c, uid)
}

// CheckoutSuccess 支付成功回跳，落库订单并清空购物车
func (h *Handler) CheckoutSuccess(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	h.placeOrder(c, uid)
}

// placeOrder 快照订单并跳转订单列表
func (h *Handler) placeOrder(c *gin.Context, uid uint) {
	if _, err := h.OrderService.Checkout(c.Request.Context(), uid, shared.CurrentUserEmail(c)); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/orders")
}

// CheckoutCancel 支付取消回跳，购物车保持不变
func (h *Handler) CheckoutCancel(c *gin.Context) {
	c.Redirect(http.StatusFound, "/cart")
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	page, pageSize := shared.NormalizePagination(
		shared.QueryPage(c), 0,
		h.Config.Pagination.PageSize, h.Config.Pagination.MaxPageSize,
	)

	orders, total, err := h.OrderService.ListByUser(c.Request.Context(), uid, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithPage(c, "orders", orders, response.NewPageMeta(page, pageSize, total))
}

// DownloadInvoice 下载订单发票 PDF，带归属校验
func (h *Handler) DownloadInvoice(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.InvoiceService.Render(c.Request.Context(), uid, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
