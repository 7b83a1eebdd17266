package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应体。data 只在校验失败时携带逐字段错误。
type ErrorBody struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageMeta 分页信息
type PageMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPageMeta 根据总数计算分页信息
func NewPageMeta(page, pageSize int, total int64) PageMeta {
	if page < 1 {
		page = 1
	}
	meta := PageMeta{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
	if pageSize > 0 {
		meta.TotalPages = (total + int64(pageSize) - 1) / int64(pageSize)
		meta.HasNextPage = int64(page)*int64(pageSize) < total
	}
	meta.HasPrevPage = page > 1
	return meta
}

// Success 成功响应
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, key string, items interface{}, meta PageMeta) {
	c.JSON(CodeOK, gin.H{
		key:          items,
		"pagination": meta,
	})
}

// Error 错误响应，使用真实 HTTP 状态码
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}

// ErrorWithData 错误响应（带数据，校验失败时为字段错误列表）
func ErrorWithData(c *gin.Context, status int, message string, data interface{}) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message, Data: data})
}
