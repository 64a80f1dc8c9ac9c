package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
	"aqua-backend/internal/timeutil"
)

// AnalyticsService computes the derived view models the dashboards
// display: totals, filters, groupings, rankings and time series. All
// functions are single-pass folds over store snapshots; every
// division is guarded so a zero denominator yields 0, never NaN or
// Inf.
type AnalyticsService struct {
	Store *store.Store

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewAnalyticsService(s *store.Store) *AnalyticsService {
	return &AnalyticsService{Store: s, Now: time.Now}
}

// pct returns part/whole*100, or 0 when whole is 0.
func pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// ---- Dashboard ----

type DashboardStats struct {
	TotalRevenue   float64          `json:"totalRevenue"`
	TotalCustomers int              `json:"totalCustomers"`
	TotalProducts  int              `json:"totalProducts"`
	LowStockCount  int              `json:"lowStockCount"`
	RecentSales    []models.Sale    `json:"recentSales"`
	LowStock       []models.Product `json:"lowStock"`
}

func (a *AnalyticsService) Dashboard(ctx context.Context) *DashboardStats {
	sales := a.Store.Sales()
	products := a.Store.Products()

	stats := &DashboardStats{
		TotalCustomers: len(a.Store.Customers()),
		TotalProducts:  len(products),
	}
	for _, sale := range sales {
		stats.TotalRevenue += sale.Total
	}
	for _, p := range products {
		if p.LowStock() {
			stats.LowStockCount++
			if len(stats.LowStock) < 5 {
				stats.LowStock = append(stats.LowStock, p)
			}
		}
	}
	if len(sales) > 5 {
		sales = sales[:5]
	}
	stats.RecentSales = sales
	return stats
}

// ---- Sales register ----

// RegisterFilter selects sales by date range (whole days, inclusive),
// payment status and a case-insensitive search over customer name and
// invoice id. Zero times leave that bound open; empty or "all" status
// matches everything.
type RegisterFilter struct {
	Start  time.Time
	End    time.Time
	Status string
	Search string
}

type StatusTotal struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type RegisterSummary struct {
	Subtotal        float64                              `json:"subtotal"`
	Tax             float64                              `json:"tax"`
	Total           float64                              `json:"total"`
	Transactions    int                                  `json:"transactions"`
	ByStatus        map[models.PaymentStatus]StatusTotal `json:"byStatus"`
	ItemsSold       float64                              `json:"itemsSold"`
	UniqueCustomers int                                  `json:"uniqueCustomers"`
}

type RegisterResult struct {
	Sales   []models.Sale   `json:"sales"`
	Summary RegisterSummary `json:"summary"`
}

func (f *RegisterFilter) matches(sale *models.Sale) bool {
	if !f.Start.IsZero() && sale.CreatedAt.Before(timeutil.StartOfDay(f.Start)) {
		return false
	}
	if !f.End.IsZero() && sale.CreatedAt.After(timeutil.EndOfDay(f.End)) {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(sale.PaymentStatus) != f.Status {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(sale.CustomerName), q) &&
			!strings.Contains(strings.ToLower(sale.ID), q) {
			return false
		}
	}
	return true
}

func (a *AnalyticsService) Register(ctx context.Context, filter RegisterFilter) *RegisterResult {
	result := &RegisterResult{
		Sales: []models.Sale{},
		Summary: RegisterSummary{
			ByStatus: map[models.PaymentStatus]StatusTotal{},
		},
	}
	customers := map[string]struct{}{}

	for _, sale := range a.Store.Sales() {
		if !filter.matches(&sale) {
			continue
		}
		result.Sales = append(result.Sales, sale)

		sum := &result.Summary
		sum.Subtotal += sale.Subtotal
		sum.Tax += sale.Tax
		sum.Total += sale.Total
		sum.Transactions++

		st := sum.ByStatus[sale.PaymentStatus]
		st.Count++
		st.Amount += sale.Total
		sum.ByStatus[sale.PaymentStatus] = st

		for _, line := range sale.Products {
			sum.ItemsSold += line.Quantity
		}
		customers[sale.CustomerID] = struct{}{}
	}
	result.Summary.UniqueCustomers = len(customers)
	return result
}

// ---- Time series ----

type PeriodBucket struct {
	Period       string  `json:"period"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
	Customers    int     `json:"customers"`
}

// TimeSeries partitions a fixed trailing window ending now into one
// bucket per unit, zero-filled and chronologically ascending:
// 6 calendar months, 8 Sunday-anchored weeks, or 7 days.
func (a *AnalyticsService) TimeSeries(ctx context.Context, view string) []PeriodBucket {
	sales := a.Store.Sales()
	now := a.Now()

	switch view {
	case "monthly":
		buckets := make([]PeriodBucket, 0, 6)
		for i := 5; i >= 0; i-- {
			month := timeutil.MonthStart(now, -i)
			b := PeriodBucket{Period: month.Format("Jan 06")}
			fillBucket(&b, sales, func(t time.Time) bool {
				return timeutil.SameMonth(t, month)
			})
			buckets = append(buckets, b)
		}
		return buckets

	case "weekly":
		buckets := make([]PeriodBucket, 0, 8)
		for i := 7; i >= 0; i-- {
			weekStart := timeutil.WeekStart(now.AddDate(0, 0, -7*i))
			weekEnd := timeutil.EndOfDay(weekStart.AddDate(0, 0, 6))
			b := PeriodBucket{Period: fmt.Sprintf("W%d", (weekStart.Day()+6)/7)}
			fillBucket(&b, sales, func(t time.Time) bool {
				return timeutil.InRange(t, weekStart, weekEnd)
			})
			buckets = append(buckets, b)
		}
		return buckets

	default: // daily
		buckets := make([]PeriodBucket, 0, 7)
		for i := 6; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			b := PeriodBucket{Period: day.Format("Mon")}
			fillBucket(&b, sales, func(t time.Time) bool {
				return timeutil.SameDay(t, day)
			})
			buckets = append(buckets, b)
		}
		return buckets
	}
}

func fillBucket(b *PeriodBucket, sales []models.Sale, in func(time.Time) bool) {
	customers := map[string]struct{}{}
	for _, sale := range sales {
		if !in(sale.CreatedAt) {
			continue
		}
		b.Sales += sale.Total
		b.Transactions++
		customers[sale.CustomerID] = struct{}{}
	}
	b.Customers = len(customers)
}

// ---- Rankings ----

type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
}

// TopProducts accumulates per-product quantity, revenue and distinct
// order count over all sales, sorted by revenue descending. Exact
// ties keep first-encounter order.
func (a *AnalyticsService) TopProducts(ctx context.Context, limit int) []TopProduct {
	byID := map[string]*TopProduct{}
	ordersByID := map[string]map[string]struct{}{}
	order := []string{}

	for _, sale := range a.Store.Sales() {
		for _, line := range sale.Products {
			tp, ok := byID[line.ProductID]
			if !ok {
				tp = &TopProduct{ProductID: line.ProductID, Name: line.ProductName}
				byID[line.ProductID] = tp
				ordersByID[line.ProductID] = map[string]struct{}{}
				order = append(order, line.ProductID)
			}
			tp.Quantity += line.Quantity
			tp.Revenue += line.Total
			ordersByID[line.ProductID][sale.ID] = struct{}{}
		}
	}

	out := make([]TopProduct, 0, len(order))
	for _, id := range order {
		tp := *byID[id]
		tp.Orders = len(ordersByID[id])
		out = append(out, tp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type TopCustomer struct {
	CustomerID string    `json:"customerId"`
	Name       string    `json:"name"`
	Orders     int       `json:"orders"`
	Revenue    float64   `json:"revenue"`
	LastOrder  time.Time `json:"lastOrder"`
}

// TopCustomers accumulates per-customer order count, revenue and last
// order time, sorted by revenue descending with stable ties.
func (a *AnalyticsService) TopCustomers(ctx context.Context, limit int) []TopCustomer {
	byID := map[string]*TopCustomer{}
	order := []string{}

	for _, sale := range a.Store.Sales() {
		tc, ok := byID[sale.CustomerID]
		if !ok {
			tc = &TopCustomer{CustomerID: sale.CustomerID, Name: sale.CustomerName, LastOrder: sale.CreatedAt}
			byID[sale.CustomerID] = tc
			order = append(order, sale.CustomerID)
		}
		tc.Orders++
		tc.Revenue += sale.Total
		if sale.CreatedAt.After(tc.LastOrder) {
			tc.LastOrder = sale.CreatedAt
		}
	}

	out := make([]TopCustomer, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ---- Summary overview / category breakdown ----

type SummaryOverview struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	Transactions      int     `json:"transactions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
}

func (a *AnalyticsService) Overview(ctx context.Context) *SummaryOverview {
	o := &SummaryOverview{}
	customers := map[string]struct{}{}
	for _, sale := range a.Store.Sales() {
		o.TotalRevenue += sale.Total
		o.Transactions++
		customers[sale.CustomerID] = struct{}{}
	}
	o.UniqueCustomers = len(customers)
	if o.Transactions > 0 {
		o.AverageOrderValue = o.TotalRevenue / float64(o.Transactions)
	}
	return o
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// CategoryBreakdown sums sale-line revenue per product category,
// walking products in catalog order. Categories with no revenue are
// omitted.
func (a *AnalyticsService) CategoryBreakdown(ctx context.Context) []CategoryRevenue {
	sales := a.Store.Sales()
	byCategory := map[string]float64{}
	order := []string{}

	for _, product := range a.Store.Products() {
		if _, ok := byCategory[product.Category]; !ok {
			byCategory[product.Category] = 0
			order = append(order, product.Category)
		}
		for _, sale := range sales {
			for _, line := range sale.Products {
				if line.ProductID == product.ID {
					byCategory[product.Category] += line.Total
				}
			}
		}
	}

	var out []CategoryRevenue
	for _, cat := range order {
		if byCategory[cat] > 0 {
			out = append(out, CategoryRevenue{Category: cat, Value: byCategory[cat]})
		}
	}
	return out
}

// ---- Business report ----

type MonthlyFigures struct {
	Month     string  `json:"month"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
	Profit    float64 `json:"profit"`
}

type BusinessReport struct {
	TotalRevenue       float64          `json:"totalRevenue"`
	TotalPurchases     float64          `json:"totalPurchases"`
	GrossProfit        float64          `json:"grossProfit"`
	GrossMarginPct     float64          `json:"grossMarginPct"`
	AverageOrderValue  float64          `json:"averageOrderValue"`
	RepeatCustomerRate float64          `json:"repeatCustomerRate"`
	ProductsSold       int              `json:"productsSold"`
	Monthly            []MonthlyFigures `json:"monthly"`
	TopProducts        []TopProduct     `json:"topProducts"`
}

func (a *AnalyticsService) Report(ctx context.Context) *BusinessReport {
	sales := a.Store.Sales()
	purchases := a.Store.Purchases()
	now := a.Now()

	r := &BusinessReport{}
	ordersByCustomer := map[string]int{}
	for _, sale := range sales {
		r.TotalRevenue += sale.Total
		r.ProductsSold += len(sale.Products)
		ordersByCustomer[sale.CustomerID]++
	}
	for _, p := range purchases {
		r.TotalPurchases += p.Total
	}
	r.GrossProfit = r.TotalRevenue - r.TotalPurchases
	r.GrossMarginPct = pct(r.GrossProfit, r.TotalRevenue)
	if len(sales) > 0 {
		r.AverageOrderValue = r.TotalRevenue / float64(len(sales))
	}

	repeat := 0
	customers := a.Store.Customers()
	for _, c := range customers {
		if ordersByCustomer[c.ID] > 1 {
			repeat++
		}
	}
	r.RepeatCustomerRate = pct(float64(repeat), float64(len(customers)))

	for i := 5; i >= 0; i-- {
		month := timeutil.MonthStart(now, -i)
		m := MonthlyFigures{Month: month.Format("Jan")}
		for _, sale := range sales {
			if timeutil.SameMonth(sale.CreatedAt, month) {
				m.Sales += sale.Total
			}
		}
		for _, p := range purchases {
			if timeutil.SameMonth(p.CreatedAt, month) {
				m.Purchases += p.Total
			}
		}
		m.Profit = m.Sales - m.Purchases
		r.Monthly = append(r.Monthly, m)
	}

	r.TopProducts = a.TopProducts(ctx, 5)
	return r
}
