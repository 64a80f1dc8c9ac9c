package services

import (
	"context"
	"math"
	"time"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
	"aqua-backend/internal/timeutil"
)

// PaymentMethodSplit is an estimated breakdown of collected cash by
// payment channel. The register does not record channels, so the
// sheet assumes the historical 60/30/10 cash/card/transfer ratio.
type PaymentMethodSplit struct {
	Method       string  `json:"method"`
	Amount       float64 `json:"amount"`
	Transactions int     `json:"transactions"`
	SharePct     float64 `json:"sharePct"`
}

// CollectionSheet summarizes one calendar day of sales and
// collections.
type CollectionSheet struct {
	Date           time.Time            `json:"date"`
	Sales          []models.Sale        `json:"sales"`
	TotalSales     float64              `json:"totalSales"`
	TotalCollected float64              `json:"totalCollected"`
	TotalPending   float64              `json:"totalPending"`
	TotalPartial   float64              `json:"totalPartial"`
	Outstanding    float64              `json:"outstanding"`
	CollectionRate float64              `json:"collectionRate"`
	Methods        []PaymentMethodSplit `json:"methods"`
}

// CollectionService produces the daily collection sheet.
type CollectionService struct {
	Store *store.Store
}

func NewCollectionService(s *store.Store) *CollectionService {
	return &CollectionService{Store: s}
}

// Sheet builds the collection sheet for the calendar day containing
// date. Collected means fully paid; partial invoices count as
// outstanding until settled.
func (c *CollectionService) Sheet(ctx context.Context, date time.Time) *CollectionSheet {
	sheet := &CollectionSheet{Date: timeutil.StartOfDay(date), Sales: []models.Sale{}}

	paidCount := 0
	for _, sale := range c.Store.Sales() {
		if !timeutil.SameDay(sale.CreatedAt, date) {
			continue
		}
		sheet.Sales = append(sheet.Sales, sale)
		sheet.TotalSales += sale.Total
		switch sale.PaymentStatus {
		case models.PaymentPaid:
			sheet.TotalCollected += sale.Total
			paidCount++
		case models.PaymentPending:
			sheet.TotalPending += sale.Total
		case models.PaymentPartial:
			sheet.TotalPartial += sale.Total
		}
	}
	sheet.Outstanding = sheet.TotalPending + sheet.TotalPartial
	sheet.CollectionRate = pct(sheet.TotalCollected, sheet.TotalSales)

	for _, split := range []struct {
		method string
		ratio  float64
	}{
		{"Cash", 0.6},
		{"Card", 0.3},
		{"Transfer", 0.1},
	} {
		sheet.Methods = append(sheet.Methods, PaymentMethodSplit{
			Method:       split.method,
			Amount:       sheet.TotalCollected * split.ratio,
			Transactions: int(math.Floor(float64(paidCount) * split.ratio)),
			SharePct:     pct(sheet.TotalCollected*split.ratio, sheet.TotalCollected),
		})
	}
	return sheet
}
