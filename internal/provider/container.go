package provider

import (
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/payment/stripe"
	"github.com/storefront-next/internal/queue"
	"github.com/storefront-next/internal/realtime"
	"github.com/storefront-next/internal/repository"
	"github.com/storefront-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config       *config.Config
	QueueClient  *queue.Client
	Hub          *realtime.Hub
	StripeClient *stripe.Client

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	PostRepo    repository.PostRepository

	// Services
	AuthService    *service.AuthService
	UploadService  *service.UploadService
	ProductService *service.ProductService
	CartService    *service.CartService
	OrderService   *service.OrderService
	InvoiceService *service.InvoiceService
	PostService    *service.PostService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	// 初始化 Stripe 客户端（未启用时订单服务走无支付路径）
	var stripeClient *stripe.Client
	if cfg.Payment.Stripe.Enabled {
		sc, err := stripe.NewClient(stripe.Config{
			SecretKey:  cfg.Payment.Stripe.SecretKey,
			APIBaseURL: cfg.Payment.Stripe.APIBaseURL,
			Currency:   cfg.Payment.Stripe.Currency,
			SuccessURL: cfg.Payment.Stripe.SuccessURL,
			CancelURL:  cfg.Payment.Stripe.CancelURL,
			Timeout:    time.Duration(cfg.Payment.Stripe.TimeoutMS) * time.Millisecond,
		})
		if err != nil {
			logger.Errorw("provider_init_stripe_failed", "error", err)
		} else {
			stripeClient = sc
		}
	}

	c := &Container{
		Config:       cfg,
		QueueClient:  queueClient,
		Hub:          realtime.NewHub(),
		StripeClient: stripeClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.UserRepo, c.Config)
	c.UploadService = service.NewUploadService(c.Config, c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo, c.UploadService)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(models.DB, c.OrderRepo, c.CartRepo, c.StripeClient)
	c.InvoiceService = service.NewInvoiceService(c.OrderService, c.Config)
	c.PostService = service.NewPostService(c.PostRepo, c.UploadService, c.Hub, c.Config)
}
