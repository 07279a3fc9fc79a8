package services

import (
	"context"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"
	"retail-api/utils/money"

	"gorm.io/gorm"
)

type DashboardService interface {
	Summary(ctx context.Context) (*dtos.DashboardSummary, error)
}

type dashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) DashboardService {
	return &dashboardService{db: db}
}

func (s *dashboardService) Summary(ctx context.Context) (*dtos.DashboardSummary, error) {
	db := s.db.WithContext(ctx)
	current := now()
	summary := &dtos.DashboardSummary{}

	var sales struct {
		Count   int64
		Total   float64
		Balance float64
	}
	if err := db.Model(&models.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total, COALESCE(SUM(balance), 0) AS balance").
		Scan(&sales).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	summary.SalesCount = sales.Count
	summary.SalesTotal = money.Sum(sales.Total)
	summary.OutstandingBalance = money.Sum(sales.Balance)

	dayStart, dayEnd := dayRange(current)
	var today float64
	if err := db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Where("sale_date >= ? AND sale_date < ?", dayStart, dayEnd).
		Scan(&today).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	summary.TodaySales = money.Sum(today)

	if err := db.Model(&models.Product{}).Where("stock < ?", LowStockThreshold).
		Count(&summary.LowStock).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	if err := db.Model(&models.Employee{}).Where("status = ?", models.EmployeeActive).
		Count(&summary.ActiveEmployees).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	monthStart, monthEnd := monthRange(current)
	var expenses float64
	if err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
		Scan(&expenses).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	summary.MonthExpenses = money.Sum(expenses)

	return summary, nil
}
