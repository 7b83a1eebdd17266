package api

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/service"
)

// PostForm 帖子表单（multipart，图片字段单独处理）
type PostForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

// ListPosts 帖子分页列表
func (h *Handler) ListPosts(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(
		shared.QueryPage(c), 0,
		h.Config.Pagination.PageSize, h.Config.Pagination.MaxPageSize,
	)

	posts, total, err := h.PostService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.SuccessWithPage(c, "posts", posts, response.NewPageMeta(page, pageSize, total))
}

// GetPost 帖子详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	post, err := h.PostService.Get(c.Request.Context(), id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{"post": post})
}

// CreatePost 创建帖子，图片必传，成功返回 201 并广播事件
func (h *Handler) CreatePost(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	imagePath, ok := h.savePostImage(c, true)
	if !ok {
		return
	}

	post, err := h.PostService.Create(c.Request.Context(), uid, service.PostInput{
		Title:     form.Title,
		Content:   form.Content,
		ImagePath: imagePath,
	})
	if err != nil {
		if imagePath != "" {
			h.UploadService.RemoveAsync(imagePath)
		}
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeCreated, gin.H{"post": post})
}

// UpdatePost 更新帖子，图片可选
func (h *Handler) UpdatePost(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	imagePath, ok := h.savePostImage(c, false)
	if !ok {
		return
	}

	post, err := h.PostService.Update(c.Request.Context(), uid, id, service.PostInput{
		Title:     form.Title,
		Content:   form.Content,
		ImagePath: imagePath,
	})
	if err != nil {
		if imagePath != "" {
			h.UploadService.RemoveAsync(imagePath)
		}
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{"post": post})
}

// DeletePost 删除帖子并清理图片资产
func (h *Handler) DeletePost(c *gin.Context) {
	uid, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.PostService.Delete(c.Request.Context(), uid, id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, response.CodeOK, gin.H{"message": i18n.T(locale, "msg.deleted")})
}

// UploadImage 独立图片上传，返回公开路径
func (h *Handler) UploadImage(c *gin.Context) {
	if _, ok := shared.CurrentUserID(c); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		shared.RespondError(c, response.CodeUnprocessable, "error.image_required", nil)
		return
	}

	path, err := h.UploadService.SaveFile(file, constants.UploadSceneCommon)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, response.CodeCreated, gin.H{"image_path": path})
}

func (h *Handler) savePostImage(c *gin.Context, required bool) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if !required {
			return "", true
		}
		shared.RespondError(c, response.CodeUnprocessable, "error.image_required", nil)
		return "", false
	}

	path, err := h.UploadService.SaveFile(file, constants.UploadScenePost)
	if err != nil {
		shared.RespondServiceError(c, err)
		return "", false
	}
	return path, true
}
