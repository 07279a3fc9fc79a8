package dtos

import (
	"time"

	"retail-api/models"
)

type PayrollInput struct {
	EmployeeID  FlexibleID `json:"employee_id" binding:"required"`
	Month       int        `json:"month" binding:"required,min=1,max=12"`
	Year        int        `json:"year" binding:"required,min=1900,max=9999"`
	BasicSalary float64    `json:"basic_salary" binding:"gte=0"`
	Allowances  float64    `json:"allowances" binding:"gte=0"`
	Deductions  float64    `json:"deductions" binding:"gte=0"`
	NetSalary   *float64   `json:"net_salary"`
	Status      string     `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	PaymentDate string     `json:"payment_date"`
}

type PayrollUpdateInput struct {
	EmployeeID  *FlexibleID `json:"employee_id"`
	Month       *int        `json:"month" binding:"omitempty,min=1,max=12"`
	Year        *int        `json:"year" binding:"omitempty,min=1900,max=9999"`
	BasicSalary *float64    `json:"basic_salary" binding:"omitempty,gte=0"`
	Allowances  *float64    `json:"allowances" binding:"omitempty,gte=0"`
	Deductions  *float64    `json:"deductions" binding:"omitempty,gte=0"`
	NetSalary   *float64    `json:"net_salary"`
	Status      *string     `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	PaymentDate *string     `json:"payment_date"`
}

type PayrollResponse struct {
	ID               uint      `json:"id"`
	EmployeeID       uint      `json:"employee_id"`
	EmployeeName     *string   `json:"employee_name"`
	EmployeePosition *string   `json:"employee_position"`
	StoreName        *string   `json:"store_name"`
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	BasicSalary      float64   `json:"basic_salary"`
	Allowances       float64   `json:"allowances"`
	Deductions       float64   `json:"deductions"`
	NetSalary        float64   `json:"net_salary"`
	Status           string    `json:"status"`
	PaymentDate      *string   `json:"payment_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type StatusTotal struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

type PayrollSummary struct {
	TotalRecords   int64         `json:"total_records"`
	TotalPaid      float64       `json:"total_paid"`
	TotalPending   float64       `json:"total_pending"`
	ThisMonthTotal float64       `json:"this_month_total"`
	ByStatus       []StatusTotal `json:"by_status"`
}

func NewPayrollResponse(p models.Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		PaymentDate: formatDate(p.PaymentDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if e := p.Employee; e != nil && e.ID != 0 {
		name, position := e.Name, e.Position
		resp.EmployeeName = &name
		resp.EmployeePosition = &position
		resp.StoreName = storeName(e.Store)
	}
	return resp
}

func NewPayrollResponses(payrolls []models.Payroll) []PayrollResponse {
	out := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		out[i] = NewPayrollResponse(p)
	}
	return out
}
