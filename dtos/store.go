package dtos

import (
	"time"

	"retail-api/models"
)

type StoreInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
	GSTIN   string `json:"gstin"`
}

type StoreUpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	GSTIN   *string `json:"gstin"`
}

type StoreResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	GSTIN     string    `json:"gstin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStoreResponse(s models.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		GSTIN:     s.GSTIN,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewStoreResponses(stores []models.Store) []StoreResponse {
	out := make([]StoreResponse, len(stores))
	for i, s := range stores {
		out[i] = NewStoreResponse(s)
	}
	return out
}

func storeName(s *models.Store) *string {
	if s == nil || s.ID == 0 {
		return nil
	}
	name := s.Name
	return &name
}
