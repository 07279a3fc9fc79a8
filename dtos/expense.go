package dtos

import (
	"strings"
	"time"

	"retail-api/models"
)

// ExpenseInput carries the expense title as "name"; "title" is accepted too.
type ExpenseInput struct {
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Amount      float64     `json:"amount" binding:"required"`
	Category    string      `json:"category"`
	StoreID     *FlexibleID `json:"store_id"`
	ExpenseDate string      `json:"expense_date"`
	ReceiptURL  *string     `json:"receipt_url"`
	Notes       *string     `json:"notes"`
}

func (in ExpenseInput) TitleValue() string {
	if name := strings.TrimSpace(in.Name); name != "" {
		return name
	}
	return strings.TrimSpace(in.Title)
}

type ExpenseUpdateInput struct {
	Name        *string    `json:"name"`
	Title       *string    `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	StoreID     NullableID `json:"store_id,omitzero"`
	ExpenseDate *string    `json:"expense_date"`
	ReceiptURL  *string    `json:"receipt_url"`
	Notes       *string    `json:"notes"`
}

func (in ExpenseUpdateInput) TitleValue() *string {
	if in.Name != nil {
		return in.Name
	}
	return in.Title
}

type ExpenseResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	StoreID       *uint     `json:"store_id"`
	StoreName     *string   `json:"store_name"`
	ExpenseDate   *string   `json:"expense_date"`
	ReceiptURL    *string   `json:"receipt_url"`
	Notes         *string   `json:"notes"`
	CreatedBy     *uint     `json:"created_by"`
	CreatedByName *string   `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExpenseSummary struct {
	TotalCount     int64           `json:"total_count"`
	TotalAmount    float64         `json:"total_amount"`
	ThisMonthCount int64           `json:"this_month_count"`
	ThisMonthTotal float64         `json:"this_month_total"`
	ByCategory     []CategoryCount `json:"by_category"`
}

func NewExpenseResponse(e models.Expense) ExpenseResponse {
	var creator *string
	if e.Creator != nil && e.Creator.ID != 0 {
		name := e.Creator.Name
		creator = &name
	}
	return ExpenseResponse{
		ID:            e.ID,
		Name:          e.Title,
		Amount:        e.Amount,
		Category:      e.Category,
		StoreID:       e.StoreID,
		StoreName:     storeName(e.Store),
		ExpenseDate:   formatDate(&e.ExpenseDate),
		ReceiptURL:    e.ReceiptURL,
		Notes:         e.Notes,
		CreatedBy:     e.CreatedBy,
		CreatedByName: creator,
		CreatedAt:     e.CreatedAt,
	}
}

func NewExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = NewExpenseResponse(e)
	}
	return out
}
