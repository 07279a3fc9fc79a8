package services

import (
	"context"
	"errors"
	"strings"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"
	"retail-api/utils/money"

	"gorm.io/gorm"
)

const (
	msgProductNotFound  = "Product not found"
	msgDuplicateProduct = "Product code already exists"

	// LowStockThreshold is the stock level below which a product counts as low.
	LowStockThreshold = 5
)

type InventoryService interface {
	List(ctx context.Context) ([]dtos.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dtos.ProductResponse, error)
	Create(ctx context.Context, input dtos.ProductInput) (*dtos.ProductResponse, error)
	Update(ctx context.Context, id uint, input dtos.ProductUpdateInput) (*dtos.ProductResponse, error)
	UpdateStock(ctx context.Context, id uint, stock int) (*dtos.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (*dtos.InventorySummary, error)
}

type inventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) InventoryService {
	return &inventoryService{db: db}
}

func (s *inventoryService) List(ctx context.Context) ([]dtos.ProductResponse, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Joins("Store").Order("products.id DESC").Find(&products).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewProductResponses(products), nil
}

func (s *inventoryService) Get(ctx context.Context, id uint) (*dtos.ProductResponse, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Joins("Store").Where("products.id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(msgProductNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp := dtos.NewProductResponse(product)
	return &resp, nil
}

func (s *inventoryService) Create(ctx context.Context, input dtos.ProductInput) (*dtos.ProductResponse, error) {
	product := models.Product{
		Name:        strings.TrimSpace(input.Name),
		Code:        strings.TrimSpace(input.Code),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Price:       money.Sum(input.Price),
		Stock:       input.Stock,
		StoreID:     input.StoreID.Uint(),
	}
	if product.Name == "" || product.Code == "" || product.StoreID == 0 {
		return nil, missingFields("product creation")
	}
	if product.Stock < 0 || product.Price < 0 {
		return nil, apperror.Validation("Price and stock must not be negative")
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicateProduct)
	}
	return s.Get(ctx, product.ID)
}

func (s *inventoryService) Update(ctx context.Context, id uint, input dtos.ProductUpdateInput) (*dtos.ProductResponse, error) {
	var product models.Product
	if err := exists(ctx, s.db, &product, id, msgProductNotFound); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.Validation("Product name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Code != nil {
		if strings.TrimSpace(*input.Code) == "" {
			return nil, apperror.Validation("Product code cannot be empty")
		}
		updates["code"] = strings.TrimSpace(*input.Code)
	}
	if input.Category != nil {
		updates["category"] = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		updates["description"] = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.Validation("Price must not be negative")
		}
		updates["price"] = money.Sum(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.Validation("Stock must be a non-negative integer")
		}
		updates["stock"] = *input.Stock
	}
	if storeID := optionalID(input.StoreID); storeID != nil {
		updates["store_id"] = *storeID
	}

	if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicateProduct)
	}
	return s.Get(ctx, id)
}

func (s *inventoryService) UpdateStock(ctx context.Context, id uint, stock int) (*dtos.ProductResponse, error) {
	if stock < 0 {
		return nil, apperror.Validation("Stock must be a non-negative integer")
	}

	result := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("stock", stock)
	if result.Error != nil {
		return nil, apperror.FromDB(result.Error, "")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NotFound(msgProductNotFound)
	}
	return s.Get(ctx, id)
}

func (s *inventoryService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Product{}, id, msgProductNotFound)
}

func (s *inventoryService) Summary(ctx context.Context) (*dtos.InventorySummary, error) {
	db := s.db.WithContext(ctx)

	var totals struct {
		TotalProducts  int64
		TotalStock     int64
		InventoryValue float64
	}
	if err := db.Model(&models.Product{}).
		Select("COUNT(*) AS total_products, COALESCE(SUM(stock), 0) AS total_stock, COALESCE(SUM(price * stock), 0) AS inventory_value").
		Scan(&totals).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	var lowStock int64
	if err := db.Model(&models.Product{}).Where("stock < ?", LowStockThreshold).Count(&lowStock).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	byCategory := []dtos.CategoryCount{}
	if err := db.Model(&models.Product{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(price * stock), 0) AS total").
		Group("category").
		Order("category ASC").
		Scan(&byCategory).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	for i := range byCategory {
		byCategory[i].Total = money.Sum(byCategory[i].Total)
	}

	return &dtos.InventorySummary{
		TotalProducts:  totals.TotalProducts,
		TotalStock:     totals.TotalStock,
		InventoryValue: money.Sum(totals.InventoryValue),
		LowStock:       lowStock,
		ByCategory:     byCategory,
	}, nil
}
