package store

import (
	"context"

	"aqua-backend/internal/models"
)

// Products returns a snapshot of the product collection in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.products)
}

// GetProduct returns the product with the given id, or nil.
func (s *Store) GetProduct(id string) *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// AddProduct appends a new product with a fresh id and creation timestamp.
func (s *Store) AddProduct(ctx context.Context, req *models.CreateProductRequest) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Product{
		ID:            s.newID(),
		Name:          req.Name,
		Category:      req.Category,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Stock:         req.Stock,
		MinStock:      req.MinStock,
		CreatedAt:     s.now(),
	}
	s.products = append(s.products, p)
	s.persist(ctx, KeyProducts, s.products)
	return &p
}

// UpdateProduct merges non-nil patch fields in place; unknown id is a no-op.
func (s *Store) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.PurchasePrice != nil {
			p.PurchasePrice = *req.PurchasePrice
		}
		if req.SellingPrice != nil {
			p.SellingPrice = *req.SellingPrice
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		s.persist(ctx, KeyProducts, s.products)
		out := *p
		return &out
	}
	return nil
}

// DeleteProduct removes the product with the given id; unknown id is a no-op.
func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx, KeyProducts, s.products)
			return true
		}
	}
	return false
}
