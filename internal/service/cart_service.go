package service

import (
	"context"
	"fmt"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// CartLine 购物车展示行
type CartLine struct {
	Product  *models.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartService 购物车管理。行以 (user, product) 唯一。
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// ListByUser 返回购物车行与总价。商品已被删除的行被跳过。
func (s *CartService) ListByUser(ctx context.Context, userID uint) ([]CartLine, models.Money, error) {
	items, err := s.carts.ListByUser(userID)
	if err != nil {
		return nil, models.Money{}, fmt.Errorf("list cart: %w", err)
	}

	lines := make([]CartLine, 0, len(items))
	total := models.Money{}
	for _, item := range items {
		if item.Product == nil {
			// 商品已下架，行保留在表里但不展示
			continue
		}
		lines = append(lines, CartLine{Product: item.Product, Quantity: item.Quantity})
		total = models.NewMoneyFromDecimal(total.Decimal.Add(item.Product.Price.MulQuantity(item.Quantity)))
	}
	return lines, total, nil
}

// AddItem 加入购物车。已存在则数量 +1，不存在则创建数量 1 的行。
func (s *CartService) AddItem(ctx context.Context, userID, productID uint) error {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return ErrNotFound
	}

	existing, err := s.carts.GetByUserAndProduct(userID, productID)
	if err != nil {
		return fmt.Errorf("get cart item: %w", err)
	}
	if existing != nil {
		existing.Quantity++
		if err := s.carts.Update(existing); err != nil {
			return fmt.Errorf("update cart item: %w", err)
		}
	} else {
		item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
		if err := s.carts.Create(item); err != nil {
			return fmt.Errorf("create cart item: %w", err)
		}
	}

	logger.Infow("cart_item_added", "user_id", userID, "product_id", productID)
	return nil
}

// RemoveItem 整行移除。行不存在时静默成功。
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	if err := s.carts.DeleteByUserAndProduct(userID, productID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	logger.Infow("cart_item_removed", "user_id", userID, "product_id", productID)
	return nil
}
