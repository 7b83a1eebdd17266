package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

func newCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "cart_service_test", &models.User{}, &models.Product{}, &models.CartItem{})
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func createTestProduct(t *testing.T, db *gorm.DB, title string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		UserID:      1,
		Title:       title,
		Description: "test product",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		ImagePath:   "/uploads/products/test.png",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartServiceAddItemAccumulatesQuantity(t *testing.T) {
	svc, db := newCartServiceTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "Book", 10)

	if err := svc.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines, total, err := svc.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
	if total.String() != "20.00" {
		t.Fatalf("expected total 20.00, got %s", total.String())
	}
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	svc, _ := newCartServiceTest(t)

	err := svc.AddItem(context.Background(), 2, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartServiceRemoveItemIsIdempotent(t *testing.T) {
	svc, db := newCartServiceTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "Book", 10)

	if err := svc.RemoveItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("removing absent line should succeed, got %v", err)
	}

	if err := svc.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	lines, _, err := svc.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}
}

func TestCartServiceListSkipsDeletedProducts(t *testing.T) {
	svc, db := newCartServiceTest(t)
	ctx := context.Background()
	kept := createTestProduct(t, db, "Kept", 5)
	gone := createTestProduct(t, db, "Gone", 7)

	if err := svc.AddItem(ctx, 2, kept.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddItem(ctx, 2, gone.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, gone.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	lines, total, err := svc.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected deleted product line skipped, got %d lines", len(lines))
	}
	if lines[0].Product.ID != kept.ID {
		t.Fatalf("expected kept product, got %d", lines[0].Product.ID)
	}
	if total.String() != "5.00" {
		t.Fatalf("expected total 5.00, got %s", total.String())
	}
}
