package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/service"
)

// ProductForm 商品表单（multipart，图片字段单独处理）
type ProductForm struct {
	Title       string `form:"title"`
	Price       string `form:"price"`
	Description string `form:"description"`
}

// ListProducts 当前 owner 的商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	page, pageSize := shared.NormalizePagination(
		shared.QueryPage(c), 0,
		h.Config.Pagination.PageSize, h.Config.Pagination.MaxPageSize,
	)

	products, total, err := h.ProductService.ListByOwner(c.Request.Context(), uid, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithPage(c, "products", products, response.NewPageMeta(page, pageSize, total))
}

// GetProduct 编辑页取数，非 owner 的商品按不可见处理
func (h *Handler) GetProduct(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		shared.RespondBrowseError(c, err)
		return
	}
	if product.UserID != uid {
		shared.RespondBrowseError(c, service.ErrForbidden)
		return
	}

	response.Success(c, response.CodeOK, gin.H{"product": product})
}

// CreateProduct 创建商品，图片必传
func (h *Handler) CreateProduct(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	imagePath, ok := h.saveImage(c, true)
	if !ok {
		return
	}

	product, err := h.ProductService.Create(c.Request.Context(), uid, service.ProductInput{
		Title:       form.Title,
		Price:       form.Price,
		Description: form.Description,
		ImagePath:   imagePath,
	})
	if err != nil {
		if imagePath != "" {
			h.UploadService.RemoveAsync(imagePath)
		}
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeCreated, gin.H{"product": product})
}

// UpdateProduct 更新商品。图片可选，换图时旧图被清理。
func (h *Handler) UpdateProduct(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	imagePath, ok := h.saveImage(c, false)
	if !ok {
		return
	}

	product, err := h.ProductService.Update(c.Request.Context(), uid, id, service.ProductInput{
		Title:       form.Title,
		Price:       form.Price,
		Description: form.Description,
		ImagePath:   imagePath,
	})
	if err != nil {
		if imagePath != "" {
			h.UploadService.RemoveAsync(imagePath)
		}
		shared.RespondBrowseError(c, err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{"product": product})
}

// DeleteProduct 删除商品并清理图片资产
func (h *Handler) DeleteProduct(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.ProductService.Delete(c.Request.Context(), uid, id); err != nil {
		shared.RespondBrowseError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, response.CodeOK, gin.H{"message": i18n.T(locale, "msg.deleted")})
}

// saveImage 保存 multipart 图片。required 为 false 且未上传时返回空路径。
func (h *Handler) saveImage(c *gin.Context, required bool) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if !required {
			return "", true
		}
		shared.RespondError(c, response.CodeUnprocessable, "error.image_required", nil)
		return "", false
	}

	path, err := h.UploadService.SaveFile(file, constants.UploadSceneProduct)
	if err != nil {
		shared.RespondServiceError(c, err)
		return "", false
	}
	return path, true
}
