package dtos

import (
	"time"

	"retail-api/models"
)

// SaleInput is the wire shape of a new sale. "amount" is stored as the
// sale total; the store may come as "store" or "store_id".
type SaleInput struct {
	Customer      string     `json:"customer" binding:"required"`
	Phone         string     `json:"phone"`
	Location      string     `json:"location"`
	Store         FlexibleID `json:"store"`
	StoreID       FlexibleID `json:"store_id"`
	Amount        *float64   `json:"amount" binding:"required,gte=0"`
	Items         int        `json:"items" binding:"gte=0"`
	PaymentMethod string     `json:"paymentMethod"`
	Advance       float64    `json:"advance" binding:"gte=0"`
	Status        string     `json:"status"`
	SaleDate      string     `json:"sale_date"`
}

func (in SaleInput) StoreRef() uint {
	if in.Store != 0 {
		return in.Store.Uint()
	}
	return in.StoreID.Uint()
}

type SaleUpdateInput struct {
	Customer      *string     `json:"customer"`
	Phone         *string     `json:"phone"`
	Location      *string     `json:"location"`
	Store         *FlexibleID `json:"store"`
	StoreID       *FlexibleID `json:"store_id"`
	Amount        *float64    `json:"amount" binding:"omitempty,gte=0"`
	Items         *int        `json:"items" binding:"omitempty,gte=0"`
	PaymentMethod *string     `json:"paymentMethod"`
	Advance       *float64    `json:"advance" binding:"omitempty,gte=0"`
	Status        *string     `json:"status"`
	SaleDate      *string     `json:"sale_date"`
}

func (in SaleUpdateInput) StoreRef() *uint {
	ref := in.Store
	if ref == nil || *ref == 0 {
		ref = in.StoreID
	}
	if ref == nil || *ref == 0 {
		return nil
	}
	id := ref.Uint()
	return &id
}

type SaleResponse struct {
	ID            uint      `json:"id"`
	BillID        string    `json:"bill_id"`
	Customer      string    `json:"customer"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	StoreID       uint      `json:"store_id"`
	StoreName     *string   `json:"store_name"`
	Amount        float64   `json:"amount"`
	Items         int       `json:"items"`
	PaymentMethod string    `json:"paymentMethod"`
	Advance       float64   `json:"advance"`
	Balance       float64   `json:"balance"`
	Status        string    `json:"status"`
	SaleDate      time.Time `json:"sale_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewSaleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		BillID:        s.BillID,
		Customer:      s.Customer,
		Phone:         s.Phone,
		Location:      s.Location,
		StoreID:       s.StoreID,
		StoreName:     storeName(s.Store),
		Amount:        s.Total,
		Items:         s.Items,
		PaymentMethod: s.PaymentMethod,
		Advance:       s.Advance,
		Balance:       s.Balance,
		Status:        s.Status,
		SaleDate:      s.SaleDate,
		CreatedAt:     s.CreatedAt,
	}
}

func NewSaleResponses(sales []models.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = NewSaleResponse(s)
	}
	return out
}
