// Package store holds the six record collections and the mutation
// layer over them. Collections keep insertion order, and every
// mutation synchronously rewrites the whole collection through the
// persistence backend before returning.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"aqua-backend/internal/metrics"
	"aqua-backend/internal/models"
	"aqua-backend/internal/storage"

	"github.com/google/uuid"
)

// Collection keys in the persistence backend. They match the keys the
// browser build of this dashboard kept in localStorage, so an exported
// dataset drops straight in.
const (
	KeyCustomers = "fishmarket_customers"
	KeyParties   = "fishmarket_parties"
	KeyProducts  = "fishmarket_products"
	KeySales     = "fishmarket_sales"
	KeyPurchases = "fishmarket_purchases"
	KeyFishBoxes = "fishmarket_fishboxes"
)

// Store is the record store. The browser original ran single-threaded;
// HTTP handlers do not, so a mutex serializes access here. Observable
// semantics are unchanged.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend

	customers []models.Customer
	parties   []models.Party
	products  []models.Product
	sales     []models.Sale
	purchases []models.Purchase
	fishBoxes []models.FishBox

	now   func() time.Time
	newID func() string
}

// Open reads every collection from the backend once. A collection that
// was never written falls back to the seed dataset (customers, parties
// and products) or starts empty.
func Open(ctx context.Context, backend storage.Backend) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
	}

	if err := load(ctx, backend, KeyCustomers, &s.customers, seedCustomers()); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyParties, &s.parties, seedParties()); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyProducts, &s.products, seedProducts()); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeySales, &s.sales, nil); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyPurchases, &s.purchases, nil); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyFishBoxes, &s.fishBoxes, nil); err != nil {
		return nil, err
	}

	return s, nil
}

func load[T any](ctx context.Context, backend storage.Backend, key string, dst *[]T, seed []T) error {
	data, ok, err := backend.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		*dst = seed
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

// persist writes one collection through the backend. A failed write is
// logged and swallowed: the in-memory state stays authoritative and
// the next successful save of the same collection reconverges.
// Callers hold the write lock.
func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[Store] encode %s failed: %v", key, err)
		return
	}
	if err := s.backend.Save(ctx, key, data); err != nil {
		log.Printf("[Store] persist %s failed: %v", key, err)
		metrics.StorePersistErrors.WithLabelValues(key).Inc()
	}
}

func snapshot[T any](src []T) []T {
	return append([]T(nil), src...)
}

// SetClock overrides the store clock and id generator, for tests.
func (s *Store) SetClock(now func() time.Time, newID func() string) {
	if now != nil {
		s.now = now
	}
	if newID != nil {
		s.newID = newID
	}
}
