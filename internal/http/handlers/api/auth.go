package api

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/service"
)

// SignUpRequest 注册请求
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"name"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp 注册账号，成功返回 201
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.SignUp(c.Request.Context(), service.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, response.CodeCreated, gin.H{
		"message": i18n.T(locale, "msg.signup_ok"),
		"user_id": user.ID,
	})
}

// Login 校验凭证并签发 JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	token, err := h.AuthService.IssueToken(user)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, response.CodeOK, gin.H{
		"token":   token,
		"user_id": user.ID,
	})
}
