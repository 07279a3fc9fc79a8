package services

import (
	"context"
	"errors"
	"log"

	"retail-api/dtos"
	"retail-api/models"
	"retail-api/utils/apperror"
	"retail-api/utils/money"

	"gorm.io/gorm"
)

const (
	msgPayrollNotFound  = "Payroll record not found"
	msgDuplicatePayroll = "Payroll already exists for this employee and period"
)

type PayrollService interface {
	List(ctx context.Context) ([]dtos.PayrollResponse, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]dtos.PayrollResponse, error)
	Get(ctx context.Context, id uint) (*dtos.PayrollResponse, error)
	Create(ctx context.Context, input dtos.PayrollInput) (*dtos.PayrollResponse, error)
	Update(ctx context.Context, id uint, input dtos.PayrollUpdateInput) (*dtos.PayrollResponse, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (*dtos.PayrollSummary, error)
}

type payrollService struct {
	db *gorm.DB
}

func NewPayrollService(db *gorm.DB) PayrollService {
	return &payrollService{db: db}
}

func (s *payrollService) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Employee.Store").
		Order("year DESC").Order("month DESC").Order("id DESC")
}

func (s *payrollService) List(ctx context.Context) ([]dtos.PayrollResponse, error) {
	var payrolls []models.Payroll
	if err := s.withRelations(ctx).Find(&payrolls).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewPayrollResponses(payrolls), nil
}

func (s *payrollService) ListByEmployee(ctx context.Context, employeeID uint) ([]dtos.PayrollResponse, error) {
	var payrolls []models.Payroll
	if err := s.withRelations(ctx).Where("employee_id = ?", employeeID).Find(&payrolls).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewPayrollResponses(payrolls), nil
}

func (s *payrollService) Get(ctx context.Context, id uint) (*dtos.PayrollResponse, error) {
	var payroll models.Payroll
	err := s.db.WithContext(ctx).Preload("Employee.Store").First(&payroll, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(msgPayrollNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp := dtos.NewPayrollResponse(payroll)
	return &resp, nil
}

// checkNetSalary keeps the caller's net salary as sent. A value that does not
// match basic + allowances - deductions is logged for follow-up.
func checkNetSalary(p *models.Payroll) {
	expected := money.NetSalary(p.BasicSalary, p.Allowances, p.Deductions)
	if !money.Equal(expected, p.NetSalary) {
		log.Printf("payroll employee=%d %02d/%d: net_salary %.2f differs from computed %.2f",
			p.EmployeeID, p.Month, p.Year, p.NetSalary, expected)
	}
}

func (s *payrollService) Create(ctx context.Context, input dtos.PayrollInput) (*dtos.PayrollResponse, error) {
	if input.EmployeeID == 0 || input.Month == 0 || input.Year == 0 {
		return nil, missingFields("payroll creation")
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, apperror.Validation("Month must be between 1 and 12")
	}

	payroll := models.Payroll{
		EmployeeID:  input.EmployeeID.Uint(),
		Month:       input.Month,
		Year:        input.Year,
		BasicSalary: money.Sum(input.BasicSalary),
		Allowances:  money.Sum(input.Allowances),
		Deductions:  money.Sum(input.Deductions),
		Status:      firstNonBlank(input.Status, models.PayrollPending),
	}
	if !models.ValidPayrollStatus(payroll.Status) {
		return nil, apperror.Validation("Invalid payroll status")
	}

	if input.NetSalary != nil {
		payroll.NetSalary = money.Sum(*input.NetSalary)
		checkNetSalary(&payroll)
	} else {
		payroll.NetSalary = money.NetSalary(payroll.BasicSalary, payroll.Allowances, payroll.Deductions)
	}

	paymentDate, err := parseDateField(input.PaymentDate, "payment_date")
	if err != nil {
		return nil, err
	}
	payroll.PaymentDate = paymentDate

	if err := s.db.WithContext(ctx).Create(&payroll).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicatePayroll)
	}
	return s.Get(ctx, payroll.ID)
}

func (s *payrollService) Update(ctx context.Context, id uint, input dtos.PayrollUpdateInput) (*dtos.PayrollResponse, error) {
	var payroll models.Payroll
	if err := exists(ctx, s.db, &payroll, id, msgPayrollNotFound); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if employeeID := optionalID(input.EmployeeID); employeeID != nil {
		payroll.EmployeeID = *employeeID
		updates["employee_id"] = *employeeID
	}
	if input.Month != nil {
		if *input.Month < 1 || *input.Month > 12 {
			return nil, apperror.Validation("Month must be between 1 and 12")
		}
		payroll.Month = *input.Month
		updates["month"] = *input.Month
	}
	if input.Year != nil {
		payroll.Year = *input.Year
		updates["year"] = *input.Year
	}

	amountsChanged := false
	if input.BasicSalary != nil {
		payroll.BasicSalary = money.Sum(*input.BasicSalary)
		updates["basic_salary"] = payroll.BasicSalary
		amountsChanged = true
	}
	if input.Allowances != nil {
		payroll.Allowances = money.Sum(*input.Allowances)
		updates["allowances"] = payroll.Allowances
		amountsChanged = true
	}
	if input.Deductions != nil {
		payroll.Deductions = money.Sum(*input.Deductions)
		updates["deductions"] = payroll.Deductions
		amountsChanged = true
	}
	if input.NetSalary != nil {
		payroll.NetSalary = money.Sum(*input.NetSalary)
		updates["net_salary"] = payroll.NetSalary
		amountsChanged = true
	}
	if amountsChanged {
		checkNetSalary(&payroll)
	}

	if input.Status != nil {
		if !models.ValidPayrollStatus(*input.Status) {
			return nil, apperror.Validation("Invalid payroll status")
		}
		updates["status"] = *input.Status
	}
	if input.PaymentDate != nil {
		paymentDate, err := parseDateField(*input.PaymentDate, "payment_date")
		if err != nil {
			return nil, err
		}
		updates["payment_date"] = paymentDate
	}

	if err := s.db.WithContext(ctx).Model(&models.Payroll{ID: id}).Updates(updates).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicatePayroll)
	}
	return s.Get(ctx, id)
}

func (s *payrollService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Payroll{}, id, msgPayrollNotFound)
}

func (s *payrollService) Summary(ctx context.Context) (*dtos.PayrollSummary, error) {
	db := s.db.WithContext(ctx)

	byStatus := []dtos.StatusTotal{}
	if err := db.Model(&models.Payroll{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(net_salary), 0) AS total").
		Group("status").
		Order("status ASC").
		Scan(&byStatus).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	summary := &dtos.PayrollSummary{ByStatus: byStatus}
	for i := range byStatus {
		byStatus[i].Total = money.Sum(byStatus[i].Total)
		summary.TotalRecords += byStatus[i].Count
		switch byStatus[i].Status {
		case models.PayrollPaid:
			summary.TotalPaid = byStatus[i].Total
		case models.PayrollPending:
			summary.TotalPending = byStatus[i].Total
		}
	}

	current := now()
	var monthTotal float64
	if err := db.Model(&models.Payroll{}).
		Select("COALESCE(SUM(net_salary), 0)").
		Where("month = ? AND year = ? AND status <> ?", int(current.Month()), current.Year(), models.PayrollCancelled).
		Scan(&monthTotal).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	summary.ThisMonthTotal = money.Sum(monthTotal)

	return summary, nil
}
