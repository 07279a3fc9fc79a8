package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Amount      float64   `gorm:"type:decimal(12,2);not null;check:amount > 0" json:"amount"`
	Category    string    `gorm:"size:100;index" json:"category"`
	StoreID     *uint     `gorm:"index" json:"store_id,omitempty"`
	Store       *Store    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ExpenseDate time.Time `gorm:"type:date;index;not null" json:"expense_date"`
	ReceiptURL  *string   `gorm:"size:512" json:"receipt_url,omitempty"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   *uint     `gorm:"index" json:"created_by,omitempty"`
	Creator     *User     `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
