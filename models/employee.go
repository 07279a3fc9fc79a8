package models

import "time"

const (
	EmployeeActive     = "active"
	EmployeeInactive   = "inactive"
	EmployeeTerminated = "terminated"
)

type Employee struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Email     string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string     `gorm:"size:50" json:"phone"`
	Position  string     `gorm:"size:100" json:"position"`
	Salary    float64    `gorm:"type:decimal(12,2);not null" json:"salary"`
	HireDate  *time.Time `gorm:"type:date" json:"hire_date,omitempty"`
	Status    string     `gorm:"type:varchar(20);not null" json:"status"`
	StoreID   uint       `gorm:"not null;index" json:"store_id"`
	Store     *Store     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID    *uint      `gorm:"index" json:"user_id,omitempty"`
	User      *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func ValidEmployeeStatus(status string) bool {
	switch status {
	case EmployeeActive, EmployeeInactive, EmployeeTerminated:
		return true
	}
	return false
}
