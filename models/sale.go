package models

import "time"

// Sale is one bill. Balance is always Total - Advance; BillID is assigned on
// insert and never updated.
type Sale struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BillID        string    `gorm:"size:64;not null;uniqueIndex" json:"bill_id"`
	Customer      string    `gorm:"size:255;not null" json:"customer"`
	Phone         string    `gorm:"size:50" json:"phone"`
	Location      string    `gorm:"size:255" json:"location"`
	StoreID       uint      `gorm:"not null;index" json:"store_id"`
	Store         *Store    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Total         float64   `gorm:"type:decimal(12,2);not null" json:"total"`
	Items         int       `gorm:"not null" json:"items"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	Advance       float64   `gorm:"type:decimal(12,2);not null" json:"advance"`
	Balance       float64   `gorm:"type:decimal(12,2);not null" json:"balance"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	SaleDate      time.Time `gorm:"index;not null" json:"sale_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
