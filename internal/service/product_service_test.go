package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

func newProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "product_service_test", &models.User{}, &models.Product{})
	cfg := newServiceTestConfig(t)
	svc := NewProductService(repository.NewProductRepository(db), NewUploadService(cfg, nil))
	return svc, db
}

func TestProductServiceCreate(t *testing.T) {
	svc, _ := newProductServiceTest(t)

	product, err := svc.Create(context.Background(), 1, ProductInput{
		Title:       "Walnut Desk",
		Price:       "199.99",
		Description: "solid walnut desk",
		ImagePath:   "/uploads/products/desk.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("expected persisted product id")
	}
	if product.Price.String() != "199.99" {
		t.Fatalf("unexpected price: %s", product.Price.String())
	}
}

func TestProductServiceCreateRejectsBadInput(t *testing.T) {
	svc, _ := newProductServiceTest(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ProductInput
	}{
		{"missing fields", ProductInput{}},
		{"zero price", ProductInput{Title: "Desk", Price: "0", Description: "d", ImagePath: "/uploads/products/x.png"}},
		{"negative price", ProductInput{Title: "Desk", Price: "-5", Description: "d", ImagePath: "/uploads/products/x.png"}},
		{"non-numeric price", ProductInput{Title: "Desk", Price: "cheap", Description: "d", ImagePath: "/uploads/products/x.png"}},
		{"missing image", ProductInput{Title: "Desk", Price: "10", Description: "d"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, 1, tc.input); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		} else if _, ok := AsValidationError(err); !ok {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestProductServiceUpdateEnforcesOwnership(t *testing.T) {
	svc, _ := newProductServiceTest(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, ProductInput{
		Title:       "Desk",
		Price:       "10",
		Description: "d",
		ImagePath:   "/uploads/products/x.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, 2, product.ID, ProductInput{Title: "Hijacked", Price: "1", Description: "d"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(ctx, 1, product.ID, ProductInput{Title: "Desk v2", Price: "12.50", Description: "d"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Desk v2" || updated.Price.String() != "12.50" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.ImagePath != "/uploads/products/x.png" {
		t.Fatalf("blank image should keep the old one, got %s", updated.ImagePath)
	}
}

func TestProductServiceDeleteEnforcesOwnership(t *testing.T) {
	svc, _ := newProductServiceTest(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, 1, ProductInput{
		Title:       "Desk",
		Price:       "10",
		Description: "d",
		ImagePath:   "/uploads/products/x.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, 2, product.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, 1, product.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestProductServiceListByOwner(t *testing.T) {
	svc, _ := newProductServiceTest(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, 1, ProductInput{Title: "Mine", Price: "10", Description: "d", ImagePath: "/uploads/products/x.png"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(ctx, 2, ProductInput{Title: "Theirs", Price: "10", Description: "d", ImagePath: "/uploads/products/x.png"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, total, err := svc.ListByOwner(ctx, 1, 1, 10)
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 owned products, got total=%d len=%d", total, len(items))
	}
}
