package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
)

// request GraphQL HTTP 请求体
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler /graphql 端点。认证是可选的：匿名请求可以执行
// createUser / login / getPosts，写操作在 resolver 里拒绝。
type Handler struct {
	schema graphql.Schema
}

// NewHandler 创建 GraphQL HTTP 处理器
func NewHandler(r *Resolver) (*Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// Serve 执行 GraphQL 查询
func (h *Handler) Serve(c *gin.Context) {
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	ctx := c.Request.Context()
	if value, ok := c.Get(constants.ContextUserIDKey); ok {
		if uid, ok := value.(uint); ok && uid > 0 {
			ctx = WithUserID(ctx, uid)
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})
	c.JSON(http.StatusOK, result)
}
