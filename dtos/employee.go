package dtos

import (
	"time"

	"retail-api/models"
)

type EmployeeInput struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Phone    string      `json:"phone"`
	Position string      `json:"position"`
	Salary   float64     `json:"salary" binding:"gte=0"`
	HireDate string      `json:"hire_date"`
	Status   string      `json:"status" binding:"omitempty,oneof=active inactive terminated"`
	StoreID  FlexibleID  `json:"store_id" binding:"required"`
	UserID   *FlexibleID `json:"user_id"`
}

type EmployeeUpdateInput struct {
	Name     *string     `json:"name"`
	Email    *string     `json:"email" binding:"omitempty,email"`
	Phone    *string     `json:"phone"`
	Position *string     `json:"position"`
	Salary   *float64    `json:"salary" binding:"omitempty,gte=0"`
	HireDate *string     `json:"hire_date"`
	Status   *string     `json:"status" binding:"omitempty,oneof=active inactive terminated"`
	StoreID  *FlexibleID `json:"store_id"`
	UserID   NullableID  `json:"user_id,omitzero"`
}

type EmployeeResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"`
	HireDate  *string   `json:"hire_date"`
	Status    string    `json:"status"`
	StoreID   uint      `json:"store_id"`
	StoreName *string   `json:"store_name"`
	UserID    *uint     `json:"user_id"`
	UserName  *string   `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e models.Employee) EmployeeResponse {
	var userName *string
	if e.User != nil && e.User.ID != 0 {
		name := e.User.Name
		userName = &name
	}
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Position:  e.Position,
		Salary:    e.Salary,
		HireDate:  formatDate(e.HireDate),
		Status:    e.Status,
		StoreID:   e.StoreID,
		StoreName: storeName(e.Store),
		UserID:    e.UserID,
		UserName:  userName,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewEmployeeResponses(employees []models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = NewEmployeeResponse(e)
	}
	return out
}
