package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

func newAnalytics(s *store.Store, now time.Time) *AnalyticsService {
	a := NewAnalyticsService(s)
	a.Now = func() time.Time { return now }
	return a
}

func TestDashboardLowStockBoundaryIsInclusive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	for _, tc := range []struct {
		name  string
		stock float64
	}{
		{"above", 11},
		{"at", 10},
		{"below", 9},
	} {
		st.AddProduct(ctx, &models.CreateProductRequest{
			Name: tc.name, Stock: tc.stock, MinStock: 10,
		})
	}

	a := newAnalytics(st, time.Now())
	stats := a.Dashboard(ctx)

	require.Equal(t, 2, stats.LowStockCount)
	require.Len(t, stats.LowStock, 2)
	require.Equal(t, "at", stats.LowStock[0].Name)
	require.Equal(t, "below", stats.LowStock[1].Name)
}

func TestRegisterFiltersAndSummary(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	other := addCustomer(t, st, "Maritime Market", 0)
	day := time.Date(2024, 6, 10, 14, 0, 0, 0, time.Local)

	addSaleAt(t, st, day, models.Sale{
		CustomerID: customer.ID, CustomerName: customer.Name,
		Products:      []models.SaleLine{{Quantity: 2}},
		Subtotal:      100, Tax: 10, Total: 110,
		PaymentStatus: models.PaymentPaid,
	})
	addSaleAt(t, st, day.Add(time.Hour), models.Sale{
		CustomerID: other.ID, CustomerName: other.Name,
		Products:      []models.SaleLine{{Quantity: 3}},
		Subtotal:      200, Tax: 20, Total: 220,
		PaymentStatus: models.PaymentPending,
	})
	addSaleAt(t, st, day.AddDate(0, 0, 5), models.Sale{
		CustomerID: customer.ID, CustomerName: customer.Name,
		Products:      []models.SaleLine{{Quantity: 1}},
		Subtotal:      50, Tax: 5, Total: 55,
		PaymentStatus: models.PaymentPaid,
	})

	a := newAnalytics(st, day)

	all := a.Register(ctx, RegisterFilter{})
	require.Len(t, all.Sales, 3)
	require.InDelta(t, 385, all.Summary.Total, 1e-9)
	require.InDelta(t, 350, all.Summary.Subtotal, 1e-9)
	require.InDelta(t, 6, all.Summary.ItemsSold, 1e-9)
	require.Equal(t, 2, all.Summary.UniqueCustomers)
	require.Equal(t, 2, all.Summary.ByStatus[models.PaymentPaid].Count)
	require.InDelta(t, 165, all.Summary.ByStatus[models.PaymentPaid].Amount, 1e-9)

	sameDay := a.Register(ctx, RegisterFilter{Start: day, End: day})
	require.Len(t, sameDay.Sales, 2)

	pending := a.Register(ctx, RegisterFilter{Status: "pending"})
	require.Len(t, pending.Sales, 1)
	require.Equal(t, other.ID, pending.Sales[0].CustomerID)

	search := a.Register(ctx, RegisterFilter{Search: "maritime"})
	require.Len(t, search.Sales, 1)

	allStatus := a.Register(ctx, RegisterFilter{Status: "all"})
	require.Len(t, allStatus.Sales, 3)
}

func TestTimeSeriesDailyZeroFilled(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	addSaleAt(t, st, now.Add(-time.Hour), models.Sale{CustomerID: customer.ID, Total: 100})
	addSaleAt(t, st, now.AddDate(0, 0, -2), models.Sale{CustomerID: customer.ID, Total: 40})
	// Outside the window
	addSaleAt(t, st, now.AddDate(0, 0, -10), models.Sale{CustomerID: customer.ID, Total: 999})

	a := newAnalytics(st, now)
	buckets := a.TimeSeries(ctx, "daily")

	require.Len(t, buckets, 7)
	require.InDelta(t, 40, buckets[4].Sales, 1e-9)
	require.InDelta(t, 100, buckets[6].Sales, 1e-9)
	require.Equal(t, 1, buckets[6].Transactions)
	for _, i := range []int{0, 1, 2, 3, 5} {
		require.Zero(t, buckets[i].Sales, "bucket %d", i)
		require.Zero(t, buckets[i].Transactions, "bucket %d", i)
	}
}

func TestTimeSeriesBucketCounts(t *testing.T) {
	st := newTestStore(t)
	a := newAnalytics(st, time.Now())

	require.Len(t, a.TimeSeries(context.Background(), "monthly"), 6)
	require.Len(t, a.TimeSeries(context.Background(), "weekly"), 8)
	require.Len(t, a.TimeSeries(context.Background(), "daily"), 7)
}

func TestTopProductsRanking(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	now := time.Now()

	addSaleAt(t, st, now, models.Sale{
		CustomerID: customer.ID,
		Products: []models.SaleLine{
			{ProductID: "p1", ProductName: "Salmon", Quantity: 2, Total: 50},
			{ProductID: "p2", ProductName: "Tuna", Quantity: 1, Total: 80},
		},
	})
	addSaleAt(t, st, now, models.Sale{
		CustomerID: customer.ID,
		Products: []models.SaleLine{
			{ProductID: "p1", ProductName: "Salmon", Quantity: 3, Total: 75},
		},
	})

	a := newAnalytics(st, now)
	top := a.TopProducts(ctx, 5)

	require.Len(t, top, 2)
	require.Equal(t, "Salmon", top[0].Name)
	require.InDelta(t, 125, top[0].Revenue, 1e-9)
	require.InDelta(t, 5, top[0].Quantity, 1e-9)
	require.Equal(t, 2, top[0].Orders)
	require.Equal(t, "Tuna", top[1].Name)
}

func TestTopProductsTiesKeepEncounterOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	now := time.Now()

	addSaleAt(t, st, now, models.Sale{
		CustomerID: customer.ID,
		Products: []models.SaleLine{
			{ProductID: "p1", ProductName: "First", Quantity: 1, Total: 60},
			{ProductID: "p2", ProductName: "Second", Quantity: 1, Total: 60},
			{ProductID: "p3", ProductName: "Third", Quantity: 1, Total: 60},
		},
	})

	a := newAnalytics(st, now)
	top := a.TopProducts(ctx, 5)

	require.Equal(t, []string{"First", "Second", "Third"},
		[]string{top[0].Name, top[1].Name, top[2].Name})
}

func TestOverviewGuardsZeroDenominators(t *testing.T) {
	st := newTestStore(t)
	a := newAnalytics(st, time.Now())

	o := a.Overview(context.Background())
	require.Zero(t, o.AverageOrderValue)
	require.False(t, math.IsNaN(o.AverageOrderValue))

	r := a.Report(context.Background())
	require.Zero(t, r.GrossMarginPct)
	require.Zero(t, r.AverageOrderValue)
	require.Zero(t, r.RepeatCustomerRate)
	require.False(t, math.IsNaN(r.GrossMarginPct))
	require.False(t, math.IsInf(r.GrossMarginPct, 0))
}

func TestReportProfitAndRepeatRate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	repeat := addCustomer(t, st, "Ocean Fresh", 0)
	once := addCustomer(t, st, "Maritime Market", 0)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	addSaleAt(t, st, now, models.Sale{CustomerID: repeat.ID, Total: 300, Products: []models.SaleLine{{}}})
	addSaleAt(t, st, now, models.Sale{CustomerID: repeat.ID, Total: 100, Products: []models.SaleLine{{}}})
	addSaleAt(t, st, now, models.Sale{CustomerID: once.ID, Total: 100, Products: []models.SaleLine{{}, {}}})

	st.SetClock(func() time.Time { return now }, nil)
	st.AddPurchase(ctx, models.Purchase{Total: 200})

	a := newAnalytics(st, now)
	r := a.Report(ctx)

	require.InDelta(t, 500, r.TotalRevenue, 1e-9)
	require.InDelta(t, 200, r.TotalPurchases, 1e-9)
	require.InDelta(t, 300, r.GrossProfit, 1e-9)
	require.InDelta(t, 60, r.GrossMarginPct, 1e-9)
	require.InDelta(t, 500.0/3, r.AverageOrderValue, 1e-9)
	require.InDelta(t, 50, r.RepeatCustomerRate, 1e-9)
	require.Equal(t, 4, r.ProductsSold)

	require.Len(t, r.Monthly, 6)
	last := r.Monthly[5]
	require.InDelta(t, 500, last.Sales, 1e-9)
	require.InDelta(t, 200, last.Purchases, 1e-9)
	require.InDelta(t, 300, last.Profit, 1e-9)
}

func TestRevenueIsOrderIndependent(t *testing.T) {
	now := time.Now()
	lines := []models.SaleLine{
		{ProductID: "p1", ProductName: "Salmon", Quantity: 1, Total: 10},
		{ProductID: "p2", ProductName: "Tuna", Quantity: 1, Total: 20},
		{ProductID: "p3", ProductName: "Prawns", Quantity: 1, Total: 30},
	}

	forward := newTestStore(t)
	c1 := addCustomer(t, forward, "Ocean Fresh", 0)
	for _, l := range lines {
		addSaleAt(t, forward, now, models.Sale{CustomerID: c1.ID, Total: l.Total, Products: []models.SaleLine{l}})
	}

	reverse := newTestStore(t)
	c2 := addCustomer(t, reverse, "Ocean Fresh", 0)
	for i := len(lines) - 1; i >= 0; i-- {
		addSaleAt(t, reverse, now, models.Sale{CustomerID: c2.ID, Total: lines[i].Total, Products: []models.SaleLine{lines[i]}})
	}

	fa := newAnalytics(forward, now)
	ra := newAnalytics(reverse, now)
	require.InDelta(t, fa.Overview(context.Background()).TotalRevenue,
		ra.Overview(context.Background()).TotalRevenue, 1e-9)
	require.Equal(t, fa.TopProducts(context.Background(), 5)[0].Name,
		ra.TopProducts(context.Background(), 5)[0].Name)
}
