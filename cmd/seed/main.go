package main

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 演示账号
	demoEmail := "demo@example.com"
	var owner models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&owner).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), cfg.Security.BcryptCost)
		if err != nil {
			stdLog.Fatalf("Failed to hash demo password: %v", err)
		}
		owner = models.User{
			Email:        demoEmail,
			PasswordHash: string(hash),
			DisplayName:  "Demo Seller",
		}
		if err := models.DB.Create(&owner).Error; err != nil {
			stdLog.Fatalf("Failed to create demo user: %v", err)
		}
		stdLog.Printf("Created demo user: %s", demoEmail)
	} else {
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	}

	// 演示商品
	products := []models.Product{
		{
			UserID:      owner.ID,
			Title:       "Mechanical Keyboard",
			Description: "Hot-swappable 75% board with PBT keycaps",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(89.99)),
			ImagePath:   "/uploads/products/seed-keyboard.png",
		},
		{
			UserID:      owner.ID,
			Title:       "Wireless Mouse",
			Description: "Lightweight 2.4G mouse with 80h battery",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(39.50)),
			ImagePath:   "/uploads/products/seed-mouse.png",
		},
		{
			UserID:      owner.ID,
			Title:       "USB-C Dock",
			Description: "8-in-1 dock, dual HDMI output",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(59.00)),
			ImagePath:   "/uploads/products/seed-dock.png",
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("user_id = ? AND title = ?", p.UserID, p.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Title, err)
			} else {
				stdLog.Printf("Created product: %s", p.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Title)
		}
	}

	// 演示帖子
	posts := []models.Post{
		{
			UserID:    owner.ID,
			Title:     "Welcome to the feed",
			Content:   "First post seeded for local development.",
			ImagePath: "/uploads/posts/seed-welcome.png",
		},
	}
	for _, p := range posts {
		var existing models.Post
		if err := models.DB.Where("user_id = ? AND title = ?", p.UserID, p.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", p.Title, err)
			} else {
				stdLog.Printf("Created post: %s", p.Title)
			}
		} else {
			stdLog.Printf("Post already exists: %s", p.Title)
		}
	}

	stdLog.Printf("Seeding finished")
}
