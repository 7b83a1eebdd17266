package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefront-next/internal/models"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func seedProducts(t *testing.T, db *gorm.DB, ownerID uint, count int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < count; i++ {
		p := models.Product{
			UserID:      ownerID,
			Title:       fmt.Sprintf("Product %02d", i+1),
			Description: "test product",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(int64(i + 1))),
			ImagePath:   "/uploads/products/test.png",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
}

func TestProductRepositoryListPaginates(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedProducts(t, db, 1, 5)

	items, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 1, got %d", len(items))
	}

	items, _, err = repo.List(ProductListFilter{Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 3 failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(items))
	}
}

func TestProductRepositoryListOutOfRangePageReturnsEmpty(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedProducts(t, db, 1, 3)

	items, total, err := repo.List(ProductListFilter{Page: 9, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
}

func TestProductRepositoryListClampsInvalidPage(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedProducts(t, db, 1, 3)

	fromZero, _, err := repo.List(ProductListFilter{Page: 0, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 0 failed: %v", err)
	}
	fromOne, _, err := repo.List(ProductListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list page 1 failed: %v", err)
	}
	if len(fromZero) != len(fromOne) {
		t.Fatalf("page 0 should behave as page 1: got %d vs %d items", len(fromZero), len(fromOne))
	}
	for i := range fromZero {
		if fromZero[i].ID != fromOne[i].ID {
			t.Fatalf("page 0 and page 1 differ at index %d", i)
		}
	}
}

func TestProductRepositoryListFiltersByOwner(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedProducts(t, db, 1, 3)
	seedProducts(t, db, 2, 2)

	items, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, UserID: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2 for owner 2, got %d", total)
	}
	for _, item := range items {
		if item.UserID != 2 {
			t.Fatalf("expected only owner 2 products, got owner %d", item.UserID)
		}
	}
}

func TestProductRepositoryListSearchesByTitle(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	seedProducts(t, db, 1, 3)
	db.Create(&models.Product{
		UserID:      1,
		Title:       "Walnut Desk",
		Description: "test product",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(199)),
		ImagePath:   "/uploads/products/desk.png",
	})

	items, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "walnut"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected a single match, got total=%d len=%d", total, len(items))
	}
	if items[0].Title != "Walnut Desk" {
		t.Fatalf("unexpected match: %s", items[0].Title)
	}
}

func TestProductRepositoryGetByIDNotFoundReturnsNil(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("expected nil error for missing product, got %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil product, got %+v", product)
	}
}
