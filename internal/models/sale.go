package models

import "time"

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentPending || s == PaymentPartial
}

// SaleLine is one product line on a sale or purchase invoice.
// ProductName is a snapshot taken at invoice time and is never
// refreshed, so historical invoices keep the name the product had
// when they were written.
type SaleLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Sale is a customer invoice. CustomerName is a creation-time snapshot
// (see SaleLine); invariants: Total = Subtotal + Tax, Subtotal = sum of
// line totals, line Total = Quantity * Price.
type Sale struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Products      []SaleLine    `json:"products"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// SaleItemInput is one requested line on a new sale or purchase.
type SaleItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateSaleRequest represents the request body for creating a sale.
// Line totals, subtotal, tax and total are computed server-side.
type CreateSaleRequest struct {
	CustomerID    string          `json:"customerId"`
	Items         []SaleItemInput `json:"items"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}
