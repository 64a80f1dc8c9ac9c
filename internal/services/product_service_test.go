package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
)

func TestInventoryStats(t *testing.T) {
	s := newTestStore(t)
	svc := NewProductService(s)
	ctx := context.Background()

	// 100 units each (addProduct default), min stock 10.
	addProduct(t, s, "Salmon", 10, 15)
	addProduct(t, s, "Tuna", 20, 30)

	low, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
		Name:          "Shrimp",
		PurchasePrice: 5,
		SellingPrice:  8,
		Stock:         4,
		MinStock:      10,
	})
	require.NoError(t, err)
	require.True(t, low.LowStock())

	stats := svc.Stats(ctx)
	require.Equal(t, 3, stats.TotalProducts)
	require.Equal(t, 1, stats.LowStockCount)
	require.InDelta(t, 100*10+100*20+4*5, stats.PurchaseValue, 1e-9)
	require.InDelta(t, 100*15+100*30+4*8, stats.SellingValue, 1e-9)
	// Margins: 50%, 50%, 60% -> average 53.33...%
	require.InDelta(t, (50.0+50.0+60.0)/3, stats.AvgMarginPct, 1e-9)
}

func TestInventoryStatsEmptyCatalog(t *testing.T) {
	s := newTestStore(t)
	svc := NewProductService(s)

	stats := svc.Stats(context.Background())
	require.Equal(t, 0, stats.TotalProducts)
	require.Zero(t, stats.AvgMarginPct)
}

func TestLowStockBoundaryIsInclusive(t *testing.T) {
	s := newTestStore(t)
	svc := NewProductService(s)
	ctx := context.Background()

	at, err := svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "At", Stock: 10, MinStock: 10})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "Above", Stock: 11, MinStock: 10})
	require.NoError(t, err)

	low := svc.LowStock(ctx)
	require.Len(t, low, 1)
	require.Equal(t, at.ID, low[0].ID)
}
