package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/storefront-next/internal/config"
)

// newServiceTestDB 为单个测试打开独立的内存库并迁移所需表
func newServiceTestDB(t *testing.T, name string, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newServiceTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "test-secret",
			ExpireHours: 1,
		},
		Session: config.SessionConfig{
			CookieName:  "sf_session",
			ExpireHours: 1,
		},
		Upload: config.UploadConfig{
			Dir:               "uploads",
			MaxSize:           5 << 20,
			AllowedTypes:      []string{"image/png", "image/jpeg"},
			AllowedExtensions: []string{".png", ".jpg", ".jpeg"},
		},
		Security: config.SecurityConfig{
			BcryptCost:        bcrypt.MinCost,
			PasswordMinLength: 6,
		},
		Pagination: config.PaginationConfig{
			PageSize:    2,
			MaxPageSize: 50,
		},
		Posts: config.PostsConfig{
			TitleMinLength:   3,
			ContentMinLength: 5,
		},
	}
}
