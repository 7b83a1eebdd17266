package shop

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/repository"
)

// ListProducts 商品分页列表（店面，所有访客可见）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(
		shared.QueryPage(c), 0,
		h.Config.Pagination.PageSize, h.Config.Pagination.MaxPageSize,
	)

	products, total, err := h.ProductService.List(c.Request.Context(), repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("q"),
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithPage(c, "products", products, response.NewPageMeta(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{"product": product})
}
