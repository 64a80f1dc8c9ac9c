package services

import (
	"context"
	"errors"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

type ProductService struct {
	Store *store.Store
}

func NewProductService(s *store.Store) *ProductService {
	return &ProductService{Store: s}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Stock < 0 || req.MinStock < 0 {
		return nil, errors.New("stock and minStock must be non-negative")
	}
	return s.Store.AddProduct(ctx, req), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p := s.Store.GetProduct(id)
	if p == nil {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func (s *ProductService) ListProducts(ctx context.Context) []models.Product {
	return s.Store.Products()
}

// LowStock returns products at or below their minimum stock threshold,
// in insertion order.
func (s *ProductService) LowStock(ctx context.Context) []models.Product {
	var out []models.Product
	for _, p := range s.Store.Products() {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// InventoryStats summarises the product catalog: counts, stock value at
// purchase and selling prices, and the average margin across products.
type InventoryStats struct {
	TotalProducts int     `json:"totalProducts"`
	LowStockCount int     `json:"lowStockCount"`
	PurchaseValue float64 `json:"purchaseValue"`
	SellingValue  float64 `json:"sellingValue"`
	AvgMarginPct  float64 `json:"avgMarginPct"`
}

func (s *ProductService) Stats(ctx context.Context) *InventoryStats {
	stats := &InventoryStats{}
	var marginSum float64
	for _, p := range s.Store.Products() {
		stats.TotalProducts++
		if p.LowStock() {
			stats.LowStockCount++
		}
		stats.PurchaseValue += p.Stock * p.PurchasePrice
		stats.SellingValue += p.Stock * p.SellingPrice
		marginSum += p.ProfitMargin()
	}
	if stats.TotalProducts > 0 {
		stats.AvgMarginPct = marginSum / float64(stats.TotalProducts)
	}
	return stats
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, errors.New("stock must be non-negative")
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		return nil, errors.New("minStock must be non-negative")
	}
	return s.Store.UpdateProduct(ctx, id, req), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) {
	s.Store.DeleteProduct(ctx, id)
}
