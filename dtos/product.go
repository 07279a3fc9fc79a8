package dtos

import (
	"time"

	"retail-api/models"
)

type ProductInput struct {
	Name        string     `json:"name" binding:"required"`
	Code        string     `json:"code" binding:"required"`
	Category    string     `json:"category"`
	Description *string    `json:"description"`
	Price       float64    `json:"price" binding:"gte=0"`
	Stock       int        `json:"stock" binding:"gte=0"`
	StoreID     FlexibleID `json:"store_id" binding:"required"`
}

type ProductUpdateInput struct {
	Name        *string     `json:"name"`
	Code        *string     `json:"code"`
	Category    *string     `json:"category"`
	Description *string     `json:"description"`
	Price       *float64    `json:"price" binding:"omitempty,gte=0"`
	Stock       *int        `json:"stock" binding:"omitempty,gte=0"`
	StoreID     *FlexibleID `json:"store_id"`
}

type StockInput struct {
	Stock *int `json:"stock" binding:"required,gte=0"`
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	StoreID     uint      `json:"store_id"`
	StoreName   *string   `json:"store_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryCount struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

type InventorySummary struct {
	TotalProducts  int64           `json:"total_products"`
	TotalStock     int64           `json:"total_stock"`
	InventoryValue float64         `json:"inventory_value"`
	LowStock       int64           `json:"low_stock"`
	ByCategory     []CategoryCount `json:"by_category"`
}

func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		StoreID:     p.StoreID,
		StoreName:   storeName(p.Store),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = NewProductResponse(p)
	}
	return out
}
