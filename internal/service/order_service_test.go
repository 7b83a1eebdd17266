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

func newOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "order_service_test",
		&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{})
	carts := repository.NewCartRepository(db)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)
	return NewOrderService(db, orders, carts, nil), NewCartService(carts, products), db
}

func TestOrderServiceCheckoutSnapshotsCart(t *testing.T) {
	svc, carts, db := newOrderServiceTest(t)
	ctx := context.Background()

	product := createTestProduct(t, db, "Lamp", 30)
	if err := carts.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := carts.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := svc.Checkout(ctx, 2, "alice@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected persisted order id")
	}
	if order.UserEmail != "alice@example.com" {
		t.Fatalf("unexpected email snapshot: %s", order.UserEmail)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}
	if order.TotalAmount.String() != "60.00" {
		t.Fatalf("expected total 60.00, got %s", order.TotalAmount.String())
	}

	// 结账后购物车被清空
	lines, _, err := carts.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(lines))
	}
}

func TestOrderServiceCheckoutSurvivesProductChanges(t *testing.T) {
	svc, carts, db := newOrderServiceTest(t)
	ctx := context.Background()

	product := createTestProduct(t, db, "Lamp", 30)
	if err := carts.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Checkout(ctx, 2, "alice@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// 商品编辑与删除不影响历史订单
	product.Title = "Renamed"
	product.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(999))
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	got, err := svc.GetByUser(ctx, 2, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Items[0].Title != "Lamp" {
		t.Fatalf("order item title changed: %s", got.Items[0].Title)
	}
	if got.Items[0].UnitPrice.String() != "30.00" {
		t.Fatalf("order item price changed: %s", got.Items[0].UnitPrice.String())
	}
}

func TestOrderServiceCheckoutSumsMixedLines(t *testing.T) {
	svc, carts, db := newOrderServiceTest(t)
	ctx := context.Background()

	notebook := createTestProduct(t, db, "Notebook", 10)
	pen := createTestProduct(t, db, "Pen", 5)
	if err := carts.AddItem(ctx, 2, notebook.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := carts.AddItem(ctx, 2, notebook.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := carts.AddItem(ctx, 2, pen.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := svc.Checkout(ctx, 2, "alice@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(order.Items))
	}

	// 总价是跨行 Σ(单价×数量)：10×2 + 5×1 = 25
	if order.TotalAmount.String() != "25.00" {
		t.Fatalf("expected total 25.00, got %s", order.TotalAmount.String())
	}
	byTitle := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byTitle[item.Title] = item
	}
	if got := byTitle["Notebook"]; got.Quantity != 2 || got.UnitPrice.String() != "10.00" {
		t.Fatalf("unexpected notebook line: %+v", got)
	}
	if got := byTitle["Pen"]; got.Quantity != 1 || got.UnitPrice.String() != "5.00" {
		t.Fatalf("unexpected pen line: %+v", got)
	}
}

func TestOrderServiceCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newOrderServiceTest(t)

	_, err := svc.Checkout(context.Background(), 2, "alice@example.com")
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestOrderServiceGetByUserEnforcesOwnership(t *testing.T) {
	svc, carts, db := newOrderServiceTest(t)
	ctx := context.Background()

	product := createTestProduct(t, db, "Lamp", 30)
	if err := carts.AddItem(ctx, 2, product.ID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Checkout(ctx, 2, "alice@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.GetByUser(ctx, 3, order.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByUser(ctx, 2, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderServiceCheckoutSessionWithoutProvider(t *testing.T) {
	svc, _, _ := newOrderServiceTest(t)

	_, err := svc.BuildCheckoutSession(context.Background(), 2)
	if !errors.Is(err, ErrPaymentUnavailable) {
		t.Fatalf("expected ErrPaymentUnavailable, got %v", err)
	}
}
