package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
	"aqua-backend/internal/storage"
	"aqua-backend/internal/store"
)

// newTestStore opens a store over an empty in-memory backend with a
// deterministic clock and sequential ids.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	be := storage.NewMemory()
	ctx := context.Background()
	for _, key := range []string{
		store.KeyCustomers, store.KeyParties, store.KeyProducts,
		store.KeySales, store.KeyPurchases, store.KeyFishBoxes,
	} {
		require.NoError(t, be.Save(ctx, key, []byte("[]")))
	}

	s, err := store.Open(ctx, be)
	require.NoError(t, err)

	seq := 0
	s.SetClock(
		func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local) },
		func() string { seq++; return fmt.Sprintf("id-%d", seq) },
	)
	return s
}

func addCustomer(t *testing.T, s *store.Store, name string, balance float64) *models.Customer {
	t.Helper()
	return s.AddCustomer(context.Background(), &models.CreateCustomerRequest{Name: name, Balance: balance})
}

func addProduct(t *testing.T, s *store.Store, name string, purchase, selling float64) *models.Product {
	t.Helper()
	return s.AddProduct(context.Background(), &models.CreateProductRequest{
		Name:          name,
		Category:      "Fresh Fish",
		Unit:          "kg",
		PurchasePrice: purchase,
		SellingPrice:  selling,
		Stock:         100,
		MinStock:      10,
	})
}

// addSaleAt inserts a sale with the given timestamp by pinning the
// store clock for one insertion.
func addSaleAt(t *testing.T, s *store.Store, at time.Time, sale models.Sale) *models.Sale {
	t.Helper()
	s.SetClock(func() time.Time { return at }, nil)
	return s.AddSale(context.Background(), sale)
}
