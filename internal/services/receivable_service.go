package services

import (
	"context"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

// OverdueAfter is how long an unpaid invoice may age before the
// account is flagged overdue.
const OverdueAfter = 30 * 24 * time.Hour

// Receivable is one customer's outstanding position. An account is
// overdue when any unpaid invoice is older than OverdueAfter.
type Receivable struct {
	Customer         models.Customer `json:"customer"`
	TotalSales       float64         `json:"totalSales"`
	TotalOutstanding float64         `json:"totalOutstanding"`
	UnpaidSales      []models.Sale   `json:"unpaidSales"`
	LastUnpaidSale   time.Time       `json:"lastUnpaidSale"`
	Overdue          bool            `json:"overdue"`
}

// ReceivableReport lists every customer carrying an outstanding
// balance, in customer-list order.
type ReceivableReport struct {
	Receivables      []Receivable `json:"receivables"`
	TotalReceivables float64      `json:"totalReceivables"`
	OverdueAccounts  int          `json:"overdueAccounts"`
}

type ReceivableService struct {
	Store *store.Store
	Now   func() time.Time
}

func NewReceivableService(s *store.Store) *ReceivableService {
	return &ReceivableService{Store: s, Now: time.Now}
}

// Report computes the receivables position. Outstanding is the sum of
// invoice totals not marked paid; customers with nothing outstanding
// are omitted.
func (r *ReceivableService) Report(ctx context.Context) *ReceivableReport {
	sales := r.Store.Sales()
	now := r.Now()

	report := &ReceivableReport{Receivables: []Receivable{}}
	for _, customer := range r.Store.Customers() {
		rec := Receivable{Customer: customer}
		for _, sale := range sales {
			if sale.CustomerID != customer.ID {
				continue
			}
			rec.TotalSales += sale.Total
			if sale.PaymentStatus == models.PaymentPaid {
				continue
			}
			rec.TotalOutstanding += sale.Total
			rec.UnpaidSales = append(rec.UnpaidSales, sale)
			if sale.CreatedAt.After(rec.LastUnpaidSale) {
				rec.LastUnpaidSale = sale.CreatedAt
			}
			if now.Sub(sale.CreatedAt) > OverdueAfter {
				rec.Overdue = true
			}
		}
		if rec.TotalOutstanding <= 0 {
			continue
		}
		report.Receivables = append(report.Receivables, rec)
		report.TotalReceivables += rec.TotalOutstanding
		if rec.Overdue {
			report.OverdueAccounts++
		}
	}
	return report
}
