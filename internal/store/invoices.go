package store

import (
	"context"

	"aqua-backend/internal/models"
)

// Sales returns a snapshot of the sale collection in insertion order.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.sales)
}

// Purchases returns a snapshot of the purchase collection in insertion order.
func (s *Store) Purchases() []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.purchases)
}

// AddSale appends the sale, assigning a fresh id and creation
// timestamp. The caller has already computed lines and totals; sales
// are append-only, historical invoices are never edited.
func (s *Store) AddSale(ctx context.Context, sale models.Sale) *models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.newID()
	sale.CreatedAt = s.now()
	s.sales = append(s.sales, sale)
	s.persist(ctx, KeySales, s.sales)
	return &sale
}

// AddPurchase appends the purchase, assigning a fresh id and creation
// timestamp.
func (s *Store) AddPurchase(ctx context.Context, purchase models.Purchase) *models.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase.ID = s.newID()
	purchase.CreatedAt = s.now()
	s.purchases = append(s.purchases, purchase)
	s.persist(ctx, KeyPurchases, s.purchases)
	return &purchase
}
