package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
)

func TestReceivablesOmitSettledCustomers(t *testing.T) {
	st := newTestStore(t)
	owing := addCustomer(t, st, "Ocean Fresh", 0)
	settled := addCustomer(t, st, "Maritime Market", 0)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	addSaleAt(t, st, now.AddDate(0, 0, -2), models.Sale{
		CustomerID: owing.ID, Total: 120, PaymentStatus: models.PaymentPending,
	})
	addSaleAt(t, st, now.AddDate(0, 0, -2), models.Sale{
		CustomerID: settled.ID, Total: 300, PaymentStatus: models.PaymentPaid,
	})

	svc := NewReceivableService(st)
	svc.Now = func() time.Time { return now }

	report := svc.Report(context.Background())
	require.Len(t, report.Receivables, 1)
	require.Equal(t, owing.ID, report.Receivables[0].Customer.ID)
	require.InDelta(t, 120, report.Receivables[0].TotalOutstanding, 1e-9)
	require.InDelta(t, 120, report.TotalReceivables, 1e-9)
	require.Zero(t, report.OverdueAccounts)
}

func TestReceivablesOverdueAfterThirtyDays(t *testing.T) {
	st := newTestStore(t)
	fresh := addCustomer(t, st, "Ocean Fresh", 0)
	aged := addCustomer(t, st, "Maritime Market", 0)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	addSaleAt(t, st, now.AddDate(0, 0, -5), models.Sale{
		CustomerID: fresh.ID, Total: 10, PaymentStatus: models.PaymentPending,
	})
	addSaleAt(t, st, now.AddDate(0, 0, -45), models.Sale{
		CustomerID: aged.ID, Total: 20, PaymentStatus: models.PaymentPartial,
	})

	svc := NewReceivableService(st)
	svc.Now = func() time.Time { return now }

	report := svc.Report(context.Background())
	require.Len(t, report.Receivables, 2)
	require.Equal(t, 1, report.OverdueAccounts)
	require.False(t, report.Receivables[0].Overdue)
	require.True(t, report.Receivables[1].Overdue)
}

func TestReceivableTracksLastUnpaidSale(t *testing.T) {
	st := newTestStore(t)
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	recent := now.AddDate(0, 0, -1)

	addSaleAt(t, st, now.AddDate(0, 0, -10), models.Sale{
		CustomerID: customer.ID, Total: 10, PaymentStatus: models.PaymentPending,
	})
	addSaleAt(t, st, recent, models.Sale{
		CustomerID: customer.ID, Total: 10, PaymentStatus: models.PaymentPending,
	})

	svc := NewReceivableService(st)
	svc.Now = func() time.Time { return now }

	report := svc.Report(context.Background())
	require.Len(t, report.Receivables, 1)
	rec := report.Receivables[0]
	require.Len(t, rec.UnpaidSales, 2)
	require.InDelta(t, 20, rec.TotalSales, 1e-9)
	require.True(t, rec.LastUnpaidSale.Equal(recent))
}
