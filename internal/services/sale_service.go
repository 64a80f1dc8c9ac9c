package services

import (
	"context"
	"errors"
	"fmt"

	"aqua-backend/internal/models"
	"aqua-backend/internal/store"
)

// DefaultTaxRate is applied to invoice subtotals when no rate is configured.
const DefaultTaxRate = 0.10

// SaleService creates sale and purchase invoices. All line math happens
// here: line total = quantity x price, subtotal = sum of line totals,
// tax = subtotal x rate, total = subtotal + tax. Customer and product
// names are snapshotted onto the invoice and never refreshed, so the
// historical record survives renames and deletes.
type SaleService struct {
	Store   *store.Store
	TaxRate float64
}

func NewSaleService(s *store.Store, taxRate float64) *SaleService {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &SaleService{Store: s, TaxRate: taxRate}
}

// buildLines resolves items against the product collection. A zero
// price falls back to the product's current selling (or, for
// purchases, purchase) price.
func (s *SaleService) buildLines(items []models.SaleItemInput, purchase bool) ([]models.SaleLine, float64, error) {
	if len(items) == 0 {
		return nil, 0, errors.New("at least one item is required")
	}

	lines := make([]models.SaleLine, 0, len(items))
	var subtotal float64
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, 0, fmt.Errorf("invalid quantity for product %s", item.ProductID)
		}
		product := s.Store.GetProduct(item.ProductID)
		if product == nil {
			return nil, 0, fmt.Errorf("product %s not found", item.ProductID)
		}
		price := item.Price
		if price == 0 {
			if purchase {
				price = product.PurchasePrice
			} else {
				price = product.SellingPrice
			}
		}
		line := models.SaleLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       price,
			Total:       item.Quantity * price,
		}
		subtotal += line.Total
		lines = append(lines, line)
	}
	return lines, subtotal, nil
}

func (s *SaleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {
	customer := s.Store.GetCustomer(req.CustomerID)
	if customer == nil {
		return nil, errors.New("customer is required")
	}
	if !req.PaymentStatus.Valid() {
		return nil, errors.New("invalid payment status")
	}

	lines, subtotal, err := s.buildLines(req.Items, false)
	if err != nil {
		return nil, err
	}

	tax := subtotal * s.TaxRate
	sale := models.Sale{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Products:      lines,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		PaymentStatus: req.PaymentStatus,
	}
	return s.Store.AddSale(ctx, sale), nil
}

func (s *SaleService) CreatePurchase(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	party := s.Store.GetParty(req.PartyID)
	if party == nil {
		return nil, errors.New("party is required")
	}
	if !req.PaymentStatus.Valid() {
		return nil, errors.New("invalid payment status")
	}

	lines, subtotal, err := s.buildLines(req.Items, true)
	if err != nil {
		return nil, err
	}

	tax := subtotal * s.TaxRate
	purchase := models.Purchase{
		PartyID:       party.ID,
		PartyName:     party.Name,
		Products:      lines,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		PaymentStatus: req.PaymentStatus,
	}
	return s.Store.AddPurchase(ctx, purchase), nil
}

func (s *SaleService) ListSales(ctx context.Context) []models.Sale {
	return s.Store.Sales()
}

func (s *SaleService) ListPurchases(ctx context.Context) []models.Purchase {
	return s.Store.Purchases()
}
