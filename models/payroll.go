package models

import "time"

const (
	PayrollPending   = "pending"
	PayrollPaid      = "paid"
	PayrollCancelled = "cancelled"
)

// Payroll is one salary slip. An employee has at most one per (month, year).
type Payroll struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EmployeeID  uint       `gorm:"not null;uniqueIndex:idx_payroll_period,priority:1" json:"employee_id"`
	Employee    *Employee  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Month       int        `gorm:"not null;uniqueIndex:idx_payroll_period,priority:2" json:"month"`
	Year        int        `gorm:"not null;uniqueIndex:idx_payroll_period,priority:3" json:"year"`
	BasicSalary float64    `gorm:"type:decimal(12,2);not null" json:"basic_salary"`
	Allowances  float64    `gorm:"type:decimal(12,2);not null" json:"allowances"`
	Deductions  float64    `gorm:"type:decimal(12,2);not null" json:"deductions"`
	NetSalary   float64    `gorm:"type:decimal(12,2);not null" json:"net_salary"`
	Status      string     `gorm:"type:varchar(20);not null" json:"status"`
	PaymentDate *time.Time `gorm:"type:date" json:"payment_date,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payroll) TableName() string {
	return "payroll"
}

func ValidPayrollStatus(status string) bool {
	switch status {
	case PayrollPending, PayrollPaid, PayrollCancelled:
		return true
	}
	return false
}
