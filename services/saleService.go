package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"
	"retail-api/utils/billid"
	"retail-api/utils/money"

	"gorm.io/gorm"
)

const (
	msgSaleNotFound = "Sale not found"

	DefaultPaymentMethod = "cash"
	DefaultSaleStatus    = "pending"

	billIDAttempts = 3
)

type SaleService interface {
	List(ctx context.Context) ([]dtos.SaleResponse, error)
	Get(ctx context.Context, id uint) (*dtos.SaleResponse, error)
	Create(ctx context.Context, input dtos.SaleInput) (*dtos.SaleResponse, error)
	Update(ctx context.Context, id uint, input dtos.SaleUpdateInput) (*dtos.SaleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type saleService struct {
	db *gorm.DB
}

func NewSaleService(db *gorm.DB) SaleService {
	return &saleService{db: db}
}

func (s *saleService) List(ctx context.Context) ([]dtos.SaleResponse, error) {
	var sales []models.Sale
	if err := s.db.WithContext(ctx).Joins("Store").
		Order("sales.sale_date DESC").Order("sales.id DESC").
		Find(&sales).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewSaleResponses(sales), nil
}

func (s *saleService) Get(ctx context.Context, id uint) (*dtos.SaleResponse, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).Joins("Store").Where("sales.id = ?", id).First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(msgSaleNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp := dtos.NewSaleResponse(sale)
	return &resp, nil
}

func validateAmounts(total, advance float64) error {
	if total < 0 || advance < 0 {
		return apperror.Validation("Amount and advance must not be negative")
	}
	if advance > total {
		return apperror.Validation("Advance cannot exceed amount")
	}
	return nil
}

// Create stores a new bill. The bill id is generated here; on the rare
// unique collision a fresh id is drawn and the insert retried.
func (s *saleService) Create(ctx context.Context, input dtos.SaleInput) (*dtos.SaleResponse, error) {
	customer := strings.TrimSpace(input.Customer)
	storeID := input.StoreRef()
	if customer == "" || storeID == 0 || input.Amount == nil {
		return nil, missingFields("sale creation")
	}

	total := money.Sum(*input.Amount)
	advance := money.Sum(input.Advance)
	if err := validateAmounts(total, advance); err != nil {
		return nil, err
	}
	if input.Items < 0 {
		return nil, apperror.Validation("Items must not be negative")
	}

	saleDate := now()
	parsed, err := parseDateField(input.SaleDate, "sale_date")
	if err != nil {
		return nil, err
	}
	if parsed != nil {
		saleDate = *parsed
	}

	sale := models.Sale{
		Customer:      customer,
		Phone:         strings.TrimSpace(input.Phone),
		Location:      strings.TrimSpace(input.Location),
		StoreID:       storeID,
		Total:         total,
		Items:         input.Items,
		PaymentMethod: firstNonBlank(input.PaymentMethod, DefaultPaymentMethod),
		Advance:       advance,
		Balance:       money.Balance(total, advance),
		Status:        firstNonBlank(input.Status, DefaultSaleStatus),
		SaleDate:      saleDate,
	}

	for attempt := 1; attempt <= billIDAttempts; attempt++ {
		sale.ID = 0
		sale.BillID = billid.New(now())
		err = s.db.WithContext(ctx).Create(&sale).Error
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Printf("bill id %s collided, retrying (%d/%d)", sale.BillID, attempt, billIDAttempts)
	}
	if err != nil {
		return nil, apperror.FromDB(err, "Bill ID already exists")
	}
	return s.Get(ctx, sale.ID)
}

// Update applies the provided fields. bill_id never changes; balance is
// recomputed in the same transaction whenever amount or advance is touched.
func (s *saleService) Update(ctx context.Context, id uint, input dtos.SaleUpdateInput) (*dtos.SaleResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(msgSaleNotFound)
			}
			return apperror.Internal(err)
		}

		updates := map[string]interface{}{}
		if input.Customer != nil {
			customer := strings.TrimSpace(*input.Customer)
			if customer == "" {
				return apperror.Validation("Customer cannot be empty")
			}
			updates["customer"] = customer
		}
		if input.Phone != nil {
			updates["phone"] = strings.TrimSpace(*input.Phone)
		}
		if input.Location != nil {
			updates["location"] = strings.TrimSpace(*input.Location)
		}
		if storeID := input.StoreRef(); storeID != nil {
			updates["store_id"] = *storeID
		}
		if input.Items != nil {
			if *input.Items < 0 {
				return apperror.Validation("Items must not be negative")
			}
			updates["items"] = *input.Items
		}
		if input.PaymentMethod != nil && strings.TrimSpace(*input.PaymentMethod) != "" {
			updates["payment_method"] = strings.TrimSpace(*input.PaymentMethod)
		}
		if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
			updates["status"] = strings.TrimSpace(*input.Status)
		}
		if input.SaleDate != nil {
			parsed, err := parseDateField(*input.SaleDate, "sale_date")
			if err != nil {
				return err
			}
			if parsed != nil {
				updates["sale_date"] = *parsed
			}
		}

		if input.Amount != nil || input.Advance != nil {
			total, advance := sale.Total, sale.Advance
			if input.Amount != nil {
				total = money.Sum(*input.Amount)
			}
			if input.Advance != nil {
				advance = money.Sum(*input.Advance)
			}
			if err := validateAmounts(total, advance); err != nil {
				return err
			}
			updates["total"] = total
			updates["advance"] = advance
			updates["balance"] = money.Balance(total, advance)
		}

		if err := tx.Model(&sale).Updates(updates).Error; err != nil {
			return apperror.FromDB(err, "Bill ID already exists")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *saleService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Sale{}, id, msgSaleNotFound)
}

func firstNonBlank(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
