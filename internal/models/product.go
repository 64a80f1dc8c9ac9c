package models

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Unit          string    `json:"unit"`
	PurchasePrice float64   `json:"purchasePrice"`
	SellingPrice  float64   `json:"sellingPrice"`
	Stock         float64   `json:"stock"`
	MinStock      float64   `json:"minStock"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LowStock reports whether the product is at or below its minimum
// stock threshold. The boundary is inclusive.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// ProfitMargin returns the margin percentage over the purchase price,
// or 0 when the purchase price is zero.
func (p *Product) ProfitMargin() float64 {
	if p.PurchasePrice == 0 {
		return 0
	}
	return (p.SellingPrice - p.PurchasePrice) / p.PurchasePrice * 100
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	Stock         float64 `json:"stock"`
	MinStock      float64 `json:"minStock"`
}

// UpdateProductRequest is a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Unit          *string  `json:"unit"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SellingPrice  *float64 `json:"sellingPrice"`
	Stock         *float64 `json:"stock"`
	MinStock      *float64 `json:"minStock"`
}
