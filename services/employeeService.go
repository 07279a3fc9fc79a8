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
	msgEmployeeNotFound  = "Employee not found"
	msgDuplicateEmployee = "Employee with this email already exists"
)

type EmployeeService interface {
	List(ctx context.Context) ([]dtos.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (*dtos.EmployeeResponse, error)
	Create(ctx context.Context, input dtos.EmployeeInput) (*dtos.EmployeeResponse, error)
	Update(ctx context.Context, id uint, input dtos.EmployeeUpdateInput) (*dtos.EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type employeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) EmployeeService {
	return &employeeService{db: db}
}

func (s *employeeService) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Joins("Store").Joins("User")
}

func (s *employeeService) List(ctx context.Context) ([]dtos.EmployeeResponse, error) {
	var employees []models.Employee
	if err := s.withRelations(ctx).Order("employees.name ASC").Find(&employees).Error; err != nil {
		return nil, apperror.Internal(err)
	}
	return dtos.NewEmployeeResponses(employees), nil
}

func (s *employeeService) Get(ctx context.Context, id uint) (*dtos.EmployeeResponse, error) {
	var employee models.Employee
	err := s.withRelations(ctx).Where("employees.id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(msgEmployeeNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	resp := dtos.NewEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) Create(ctx context.Context, input dtos.EmployeeInput) (*dtos.EmployeeResponse, error) {
	employee := models.Employee{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Position: strings.TrimSpace(input.Position),
		Salary:   money.Sum(input.Salary),
		Status:   firstNonBlank(input.Status, models.EmployeeActive),
		StoreID:  input.StoreID.Uint(),
		UserID:   optionalID(input.UserID),
	}
	if employee.Name == "" || employee.Email == "" || employee.StoreID == 0 {
		return nil, missingFields("employee creation")
	}
	if !models.ValidEmployeeStatus(employee.Status) {
		return nil, apperror.Validation("Invalid employee status")
	}
	if employee.Salary < 0 {
		return nil, apperror.Validation("Salary must not be negative")
	}

	hireDate, err := parseDateField(input.HireDate, "hire_date")
	if err != nil {
		return nil, err
	}
	employee.HireDate = hireDate

	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicateEmployee)
	}
	return s.Get(ctx, employee.ID)
}

func (s *employeeService) Update(ctx context.Context, id uint, input dtos.EmployeeUpdateInput) (*dtos.EmployeeResponse, error) {
	var employee models.Employee
	if err := exists(ctx, s.db, &employee, id, msgEmployeeNotFound); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.Validation("Employee name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, apperror.Validation("Employee email cannot be empty")
		}
		updates["email"] = email
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Position != nil {
		updates["position"] = strings.TrimSpace(*input.Position)
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, apperror.Validation("Salary must not be negative")
		}
		updates["salary"] = money.Sum(*input.Salary)
	}
	if input.HireDate != nil {
		hireDate, err := parseDateField(*input.HireDate, "hire_date")
		if err != nil {
			return nil, err
		}
		updates["hire_date"] = hireDate
	}
	if input.Status != nil {
		if !models.ValidEmployeeStatus(*input.Status) {
			return nil, apperror.Validation("Invalid employee status")
		}
		updates["status"] = *input.Status
	}
	if storeID := optionalID(input.StoreID); storeID != nil {
		updates["store_id"] = *storeID
	}
	if input.UserID.Set {
		updates["user_id"] = input.UserID.Ptr()
	}

	if err := s.db.WithContext(ctx).Model(&employee).Updates(updates).Error; err != nil {
		return nil, apperror.FromDB(err, msgDuplicateEmployee)
	}
	return s.Get(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, s.db, &models.Employee{}, id, msgEmployeeNotFound)
}
