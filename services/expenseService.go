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

const msgExpenseNotFound = "Expense not found"

type ExpenseService interface {
	List(ctx context.Context) ([]dtos.ExpenseResponse, error)
	Get(ctx context.Context, id uint) (*dtos.ExpenseResponse, error)
	Create(ctx context.Context, input dtos.ExpenseInput, createdBy *uint) (*dtos.ExpenseResponse, error)
	Update(ctx context.Context, id uint, input dtos.ExpenseUpdateInput) (*dtos.ExpenseResponse, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (*dtos.ExpenseSummary, error)
}

type expenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) ExpenseService {
	return &expenseService{db: db}
}

func (s *expenseService) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Joins("Store").Joins("Creator")
}

func (s *expenseService) List(ctx context.Context) ([]dtos.ExpenseResponse, error) {
	var expenses []models.Expense
	if err := s.withRelations(ctx).
		Order("expenses.expense_date DESC").Order("expenses.id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewExpenseResponses(expenses), nil
}

func (s *expenseService) Get(ctx context.Context, id uint) (*dtos.ExpenseResponse, error) {
	var expense models.Expense
	err := s.withRelations(ctx).Where("expenses.id = ?", id).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(msgExpenseNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp := dtos.NewExpenseResponse(expense)
	return &resp, nil
}

func (s *expenseService) Create(ctx context.Context, input dtos.ExpenseInput, createdBy *uint) (*dtos.ExpenseResponse, error) {
	title := input.TitleValue()
	if title == "" {
		return nil, missingFields("expense creation")
	}
	amount := money.Sum(input.Amount)
	if amount <= 0 {
		return nil, apperror.Validation("Amount must be greater than 0")
	}

	expenseDate := dtos.DateOnly(now())
	if parsed, err := parseDateField(input.ExpenseDate, "expense_date"); err != nil {
		return nil, err
	} else if parsed != nil {
		expenseDate = dtos.DateOnly(*parsed)
	}

	expense := models.Expense{
		Title:       title,
		Amount:      amount,
		Category:    strings.TrimSpace(input.Category),
		StoreID:     optionalID(input.StoreID),
		ExpenseDate: expenseDate,
		ReceiptURL:  input.ReceiptURL,
		Notes:       input.Notes,
		CreatedBy:   createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, apperror.FromDB(err, "Expense already exists")
	}
	return s.Get(ctx, expense.ID)
}

func (s *expenseService) Update(ctx context.Context, id uint, input dtos.ExpenseUpdateInput) (*dtos.ExpenseResponse, error) {
	var expense models.Expense
	if err := exists(ctx, s.db, &expense, id, msgExpenseNotFound); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title := input.TitleValue(); title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, apperror.Validation("Expense name cannot be empty")
		}
		updates["title"] = strings.TrimSpace(*title)
	}
	if input.Amount != nil {
		amount := money.Sum(*input.Amount)
		if amount <= 0 {
			return nil, apperror.Validation("Amount must be greater than 0")
		}
		updates["amount"] = amount
	}
	if input.Category != nil {
		updates["category"] = strings.TrimSpace(*input.Category)
	}
	if input.StoreID.Set {
		updates["store_id"] = input.StoreID.Ptr()
	}
	if input.ExpenseDate != nil {
		parsed, err := parseDateField(*input.ExpenseDate, "expense_date")
		if err != nil {
			return nil, err
		}
		if parsed != nil {
			updates["expense_date"] = dtos.DateOnly(*parsed)
		}
	}
	if input.ReceiptURL != nil {
		updates["receipt_url"] = trimmedOrNil(*input.ReceiptURL)
	}
	if input.Notes != nil {
		updates["notes"] = trimmedOrNil(*input.Notes)
	}

	if err := s.db.WithContext(ctx).Model(&expense).Updates(updates).Error; err != nil {
		return nil, apperror.FromDB(err, "Expense already exists")
	}
	return s.Get(ctx, id)
}

func (s *expenseService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Expense{}, id, msgExpenseNotFound)
}

func (s *expenseService) Summary(ctx context.Context) (*dtos.ExpenseSummary, error) {
	db := s.db.WithContext(ctx)

	var all struct {
		Count int64
		Total float64
	}
	if err := db.Model(&models.Expense{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&all).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	start, end := monthRange(now())
	var month struct {
		Count int64
		Total float64
	}
	if err := db.Model(&models.Expense{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Scan(&month).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	byCategory := []dtos.CategoryCount{}
	if err := db.Model(&models.Expense{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&byCategory).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	for i := range byCategory {
		byCategory[i].Total = money.Sum(byCategory[i].Total)
	}

	return &dtos.ExpenseSummary{
		TotalCount:     all.Count,
		TotalAmount:    money.Sum(all.Total),
		ThisMonthCount: month.Count,
		ThisMonthTotal: money.Sum(month.Total),
		ByCategory:     byCategory,
	}, nil
}

func trimmedOrNil(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
