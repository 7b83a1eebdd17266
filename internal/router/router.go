package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/graphql"
	adminhandlers "github.com/storefront-next/internal/http/handlers/admin"
	apihandlers "github.com/storefront-next/internal/http/handlers/api"
	shophandlers "github.com/storefront-next/internal/http/handlers/shop"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) (*gin.Engine, error) {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	shopHandler := shophandlers.New(c)
	adminHandler := adminhandlers.New(c)
	apiHandler := apihandlers.New(c)

	gqlResolver := graphql.NewResolver(c.AuthService, c.PostService)
	gqlHandler, err := graphql.NewHandler(gqlResolver)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./"+cfg.Upload.Dir)

	sessionAuth := SessionAuthMiddleware(c.AuthService, cfg.Session.Cookie())
	jwtAuth := JWTAuthMiddleware(c.AuthService)

	// 店面浏览流（会话认证）
	r.GET("/products", shopHandler.ListProducts)
	r.GET("/products/:id", shopHandler.GetProduct)
	r.POST("/signup", shopHandler.SignUp)
	r.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), shopHandler.Login)
	r.POST("/logout", shopHandler.Logout)

	shop := r.Group("")
	shop.Use(sessionAuth)
	{
		shop.GET("/cart", shopHandler.GetCart)
		shop.POST("/cart", shopHandler.AddCartItem)
		shop.POST("/cart/delete", shopHandler.RemoveCartItem)
		shop.GET("/checkout", shopHandler.Checkout)
		shop.GET("/checkout/success", shopHandler.CheckoutSuccess)
		shop.GET("/checkout/cancel", shopHandler.CheckoutCancel)
		shop.GET("/orders", shopHandler.ListOrders)
		shop.GET("/orders/:id/invoice", shopHandler.DownloadInvoice)
	}

	// 后台（owner 管理自己的商品）
	admin := r.Group("/admin")
	admin.Use(sessionAuth)
	{
		admin.GET("/products", adminHandler.ListProducts)
		admin.GET("/products/:id", adminHandler.GetProduct)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	}

	// API 流（Bearer JWT）
	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.PUT("/signup", apiHandler.SignUp)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), apiHandler.Login)
		}

		apiV1.GET("/posts", apiHandler.ListPosts)
		apiV1.GET("/posts/:id", apiHandler.GetPost)

		authed := apiV1.Group("")
		authed.Use(jwtAuth)
		{
			authed.POST("/posts", apiHandler.CreatePost)
			authed.PUT("/posts/:id", apiHandler.UpdatePost)
			authed.DELETE("/posts/:id", apiHandler.DeletePost)
			authed.POST("/images", apiHandler.UploadImage)
		}
	}

	// GraphQL 门面（认证可选，写操作在 resolver 内拒绝）
	r.POST("/graphql", OptionalJWTMiddleware(c.AuthService), gqlHandler.Serve)

	// 帖子变更事件订阅
	r.GET("/ws/posts", c.Hub.HandleWS)

	return r, nil
}
