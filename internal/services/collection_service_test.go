package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
)

func TestCollectionSheetDay(t *testing.T) {
	st := newTestStore(t)
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	day := time.Date(2024, 6, 14, 9, 0, 0, 0, time.Local)

	addSaleAt(t, st, day, models.Sale{
		CustomerID: customer.ID, Total: 50, PaymentStatus: models.PaymentPaid,
	})
	addSaleAt(t, st, day.Add(2*time.Hour), models.Sale{
		CustomerID: customer.ID, Total: 30, PaymentStatus: models.PaymentPending,
	})
	addSaleAt(t, st, day.Add(4*time.Hour), models.Sale{
		CustomerID: customer.ID, Total: 20, PaymentStatus: models.PaymentPartial,
	})
	// Next day, must not appear
	addSaleAt(t, st, day.AddDate(0, 0, 1), models.Sale{
		CustomerID: customer.ID, Total: 999, PaymentStatus: models.PaymentPaid,
	})

	svc := NewCollectionService(st)
	sheet := svc.Sheet(context.Background(), day)

	require.Len(t, sheet.Sales, 3)
	require.InDelta(t, 100, sheet.TotalSales, 1e-9)
	require.InDelta(t, 50, sheet.TotalCollected, 1e-9)
	require.InDelta(t, 30, sheet.TotalPending, 1e-9)
	require.InDelta(t, 20, sheet.TotalPartial, 1e-9)
	require.InDelta(t, 50, sheet.Outstanding, 1e-9)
	require.InDelta(t, 50, sheet.CollectionRate, 1e-9)
}

func TestCollectionSheetPaymentSplit(t *testing.T) {
	st := newTestStore(t)
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	day := time.Date(2024, 6, 14, 9, 0, 0, 0, time.Local)
	addSaleAt(t, st, day, models.Sale{
		CustomerID: customer.ID, Total: 100, PaymentStatus: models.PaymentPaid,
	})

	svc := NewCollectionService(st)
	sheet := svc.Sheet(context.Background(), day)

	require.Len(t, sheet.Methods, 3)
	require.Equal(t, "Cash", sheet.Methods[0].Method)
	require.InDelta(t, 60, sheet.Methods[0].Amount, 1e-9)
	require.InDelta(t, 60, sheet.Methods[0].SharePct, 1e-9)
	require.Equal(t, "Card", sheet.Methods[1].Method)
	require.InDelta(t, 30, sheet.Methods[1].Amount, 1e-9)
	require.Equal(t, "Transfer", sheet.Methods[2].Method)
	require.InDelta(t, 10, sheet.Methods[2].Amount, 1e-9)
}

func TestCollectionSheetEmptyDayHasNoNaNs(t *testing.T) {
	st := newTestStore(t)
	svc := NewCollectionService(st)

	sheet := svc.Sheet(context.Background(), time.Now())

	require.Zero(t, sheet.CollectionRate)
	for _, m := range sheet.Methods {
		require.Zero(t, m.Amount)
		require.Zero(t, m.SharePct)
	}
}
