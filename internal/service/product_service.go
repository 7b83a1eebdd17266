package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// ProductInput 商品创建/更新入参
type ProductInput struct {
	Title       string
	Price       string
	Description string
	// ImagePath 已保存的图片路径。创建时必填，更新时为空表示保留原图。
	ImagePath string
}

// ProductService 商品管理。写操作要求调用者是 owner。
type ProductService struct {
	products repository.ProductRepository
	uploads  *UploadService
}

// NewProductService 创建商品服务
func NewProductService(products repository.ProductRepository, uploads *UploadService) *ProductService {
	return &ProductService{products: products, uploads: uploads}
}

// List 商品分页列表（店面，所有人可见）
func (s *ProductService) List(ctx context.Context, filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.products.List(filter)
}

// ListByOwner 仅列出指定 owner 的商品（后台）
func (s *ProductService) ListByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]models.Product, int64, error) {
	return s.products.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   ownerID,
	})
}

// Get 按 ID 查询商品，不存在返回 ErrNotFound
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品。价格必须为正数，图片必填。
func (s *ProductService) Create(ctx context.Context, ownerID uint, input ProductInput) (*models.Product, error) {
	price, verr := s.validate(input, true)
	if verr != nil {
		return nil, verr
	}

	product := &models.Product{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       price,
		ImagePath:   input.ImagePath,
	}
	if err := s.products.Create(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.Infow("product_created", "product_id", product.ID, "owner_id", ownerID)
	return product, nil
}

// Update 更新商品。非 owner 返回 ErrForbidden；换图时旧图异步删除。
func (s *ProductService) Update(ctx context.Context, ownerID, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.UserID != ownerID {
		return nil, ErrForbidden
	}

	price, verr := s.validate(input, false)
	if verr != nil {
		return nil, verr
	}

	oldImage := ""
	if input.ImagePath != "" && input.ImagePath != product.ImagePath {
		oldImage = product.ImagePath
		product.ImagePath = input.ImagePath
	}
	product.Title = strings.TrimSpace(input.Title)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = price

	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if oldImage != "" {
		s.uploads.RemoveAsync(oldImage)
	}

	logger.Infow("product_updated", "product_id", product.ID, "owner_id", ownerID)
	return product, nil
}

// Delete 删除商品。非 owner 返回 ErrForbidden；关联图片异步删除。
func (s *ProductService) Delete(ctx context.Context, ownerID, id uint) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if product.UserID != ownerID {
		return ErrForbidden
	}

	if err := s.products.Delete(id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if product.ImagePath != "" {
		s.uploads.RemoveAsync(product.ImagePath)
	}

	logger.Infow("product_deleted", "product_id", id, "owner_id", ownerID)
	return nil
}

// validate 校验商品入参并解析价格。requireImage 控制图片是否必填。
func (s *ProductService) validate(input ProductInput, requireImage bool) (models.Money, *ValidationError) {
	rules := []FieldRule{
		{Field: "title", Value: input.Title, Required: true},
		{Field: "price", Value: input.Price, Required: true},
		{Field: "description", Value: input.Description, Required: true},
	}
	if verr := evaluateRules(rules); verr != nil {
		return models.Money{}, verr
	}
	price, err := models.NewMoneyFromString(input.Price)
	if err != nil || !price.IsPositive() {
		return models.Money{}, NewValidationError("price", "price must be a positive number")
	}
	if requireImage && input.ImagePath == "" {
		return models.Money{}, NewValidationError("image", "image is required")
	}
	return price, nil
}
