package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/service"
)

// SignUpRequest 注册请求
type SignUpRequest struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	DisplayName     string `json:"display_name" form:"display_name"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SignUp 注册店面账号。校验失败返回 422 并回显已填写的字段。
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.SignUp(c.Request.Context(), service.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DisplayName:     req.DisplayName,
	})
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			locale := i18n.ResolveLocale(c)
			response.ErrorWithData(c, response.CodeUnprocessable, i18n.T(locale, "error.validation_failed"), gin.H{
				"errors":    verr.Fields,
				"old_input": gin.H{"email": req.Email, "display_name": req.DisplayName},
			})
			return
		}
		shared.RespondServiceError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.Success(c, response.CodeCreated, gin.H{
		"message": i18n.T(locale, "msg.signup_ok"),
		"user_id": user.ID,
	})
}

// Login 登录并建立服务端会话，会话令牌写入 Cookie。
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
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

	token, err := h.AuthService.StartSession(c.Request.Context(), user)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	maxAge := h.Config.Session.ExpireHours * 3600
	c.SetCookie(h.Config.Session.Cookie(), token, maxAge, "/", "", h.Config.Session.Secure, true)
	response.Success(c, response.CodeOK, gin.H{
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// Logout 注销会话并清除 Cookie
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.Config.Session.Cookie()); err == nil && token != "" {
		h.AuthService.EndSession(c.Request.Context(), token)
	}
	c.SetCookie(h.Config.Session.Cookie(), "", -1, "/", "", h.Config.Session.Secure, true)

	locale := i18n.ResolveLocale(c)
	c.JSON(http.StatusOK, gin.H{"message": i18n.T(locale, "msg.logout_ok")})
}
