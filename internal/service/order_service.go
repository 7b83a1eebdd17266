package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/payment/stripe"
	"github.com/storefront-next/internal/repository"
)

// OrderService 下单与订单查询。订单是结账时的不可变快照。
type OrderService struct {
	db       *gorm.DB
	orders   repository.OrderRepository
	carts    repository.CartRepository
	payments *stripe.Client
}

// NewOrderService 创建订单服务。payments 为 nil 表示未接入支付。
func NewOrderService(db *gorm.DB, orders repository.OrderRepository, carts repository.CartRepository, payments *stripe.Client) *OrderService {
	return &OrderService{db: db, orders: orders, carts: carts, payments: payments}
}

// Checkout 把当前购物车凝固成订单并清空购物车，两步在同一事务内。
// 购物车为空（或全部商品已下架）返回 ErrCartEmpty。
func (s *OrderService) Checkout(ctx context.Context, userID uint, userEmail string) (*models.Order, error) {
	items, err := s.carts.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	order := &models.Order{UserID: userID, UserEmail: userEmail}
	total := models.Money{}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			Title:       item.Product.Title,
			Description: item.Product.Description,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
		total = models.NewMoneyFromDecimal(total.Decimal.Add(item.Product.Price.MulQuantity(item.Quantity)))
	}
	if len(order.Items) == 0 {
		return nil, ErrCartEmpty
	}
	order.TotalAmount = total

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orders.WithTx(tx).Create(order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.carts.WithTx(tx).ClearByUser(userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_placed", "order_id", order.ID, "user_id", userID, "total", order.TotalAmount.String())
	return order, nil
}

// ListByUser 按创建时间倒序列出用户订单
func (s *OrderService) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orders.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetByUser 查询订单并校验归属。不存在返回 ErrNotFound，非本人返回 ErrForbidden。
func (s *OrderService) GetByUser(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

// BuildCheckoutSession 为购物车创建 Stripe Checkout 会话，返回跳转 URL。
// 未配置支付返回 ErrPaymentUnavailable。
func (s *OrderService) BuildCheckoutSession(ctx context.Context, userID uint) (string, error) {
	if s.payments == nil {
		return "", ErrPaymentUnavailable
	}

	items, err := s.carts.ListByUser(userID)
	if err != nil {
		return "", fmt.Errorf("list cart: %w", err)
	}

	var lineItems []stripe.LineItem
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lineItems = append(lineItems, stripe.LineItem{
			Name:        item.Product.Title,
			Description: item.Product.Description,
			UnitAmount:  item.Product.Price.Decimal,
			Quantity:    item.Quantity,
		})
	}
	if len(lineItems) == 0 {
		return "", ErrCartEmpty
	}

	session, err := s.payments.CreateCheckoutSession(ctx, lineItems)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.URL, nil
}
