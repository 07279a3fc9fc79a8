package services

import (
	"context"
	"strings"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"

	"gorm.io/gorm"
)

const msgStoreNotFound = "Store not found"

type StoreService interface {
	List(ctx context.Context) ([]dtos.StoreResponse, error)
	Get(ctx context.Context, id uint) (*dtos.StoreResponse, error)
	Create(ctx context.Context, input dtos.StoreInput) (*dtos.StoreResponse, error)
	Update(ctx context.Context, id uint, input dtos.StoreUpdateInput) (*dtos.StoreResponse, error)
	Delete(ctx context.Context, id uint) error
}

type storeService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) StoreService {
	return &storeService{db: db}
}

func (s *storeService) List(ctx context.Context) ([]dtos.StoreResponse, error) {
	var stores []models.Store
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&stores).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewStoreResponses(stores), nil
}

func (s *storeService) Get(ctx context.Context, id uint) (*dtos.StoreResponse, error) {
	var store models.Store
	if err := exists(ctx, s.db, &store, id, msgStoreNotFound); err != nil {
		return nil, err
	}
	resp := dtos.NewStoreResponse(store)
	return &resp, nil
}

func (s *storeService) Create(ctx context.Context, input dtos.StoreInput) (*dtos.StoreResponse, error) {
	store := models.Store{
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
		GSTIN:   strings.TrimSpace(input.GSTIN),
	}
	if store.Name == "" || store.Address == "" {
		return nil, missingFields("store creation")
	}

	if err := s.db.WithContext(ctx).Create(&store).Error; err != nil {
		return nil, apperror.FromDB(err, "Store already exists")
	}
	return s.Get(ctx, store.ID)
}

func (s *storeService) Update(ctx context.Context, id uint, input dtos.StoreUpdateInput) (*dtos.StoreResponse, error) {
	var store models.Store
	if err := exists(ctx, s.db, &store, id, msgStoreNotFound); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.Validation("Store name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		updates["address"] = strings.TrimSpace(*input.Address)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.GSTIN != nil {
		updates["gstin"] = strings.TrimSpace(*input.GSTIN)
	}

	if err := s.db.WithContext(ctx).Model(&store).Updates(updates).Error; err != nil {
		return nil, apperror.FromDB(err, "Store already exists")
	}
	return s.Get(ctx, id)
}

// Delete removes the store; products, employees, sales and expenses go with
// it through ON DELETE CASCADE.
func (s *storeService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Store{}, id, msgStoreNotFound)
}
