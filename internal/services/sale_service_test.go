package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"aqua-backend/internal/models"
)

func TestCreateSaleComputesTotals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	salmon := addProduct(t, st, "Salmon", 12.50, 18.00)
	prawns := addProduct(t, st, "Prawns", 25.00, 35.00)

	svc := NewSaleService(st, 0.10)
	sale, err := svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID: customer.ID,
		Items: []models.SaleItemInput{
			{ProductID: salmon.ID, Quantity: 2, Price: 18.00},
			{ProductID: prawns.ID, Quantity: 1.5, Price: 35.00},
		},
		PaymentStatus: models.PaymentPaid,
	})
	require.NoError(t, err)

	require.InDelta(t, 36.00, sale.Products[0].Total, 1e-9)
	require.InDelta(t, 52.50, sale.Products[1].Total, 1e-9)
	require.InDelta(t, 88.50, sale.Subtotal, 1e-9)
	require.InDelta(t, 8.85, sale.Tax, 1e-9)
	require.InDelta(t, sale.Subtotal+sale.Tax, sale.Total, 1e-9)
	require.Equal(t, "Ocean Fresh", sale.CustomerName)
	require.Equal(t, "Salmon", sale.Products[0].ProductName)
	require.NotEmpty(t, sale.ID)
}

func TestCreateSaleZeroPriceFallsBackToSellingPrice(t *testing.T) {
	st := newTestStore(t)
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	salmon := addProduct(t, st, "Salmon", 12.50, 18.00)

	svc := NewSaleService(st, 0.10)
	sale, err := svc.CreateSale(context.Background(), &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: 3}},
		PaymentStatus: models.PaymentPending,
	})
	require.NoError(t, err)
	require.InDelta(t, 18.00, sale.Products[0].Price, 1e-9)
	require.InDelta(t, 54.00, sale.Subtotal, 1e-9)
}

func TestCreatePurchaseZeroPriceFallsBackToPurchasePrice(t *testing.T) {
	st := newTestStore(t)
	party := st.AddParty(context.Background(), &models.CreatePartyRequest{
		Name: "Deep Sea Fisheries", Type: models.PartyTypeSupplier,
	})
	salmon := addProduct(t, st, "Salmon", 12.50, 18.00)

	svc := NewSaleService(st, 0.10)
	purchase, err := svc.CreatePurchase(context.Background(), &models.CreatePurchaseRequest{
		PartyID:       party.ID,
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: 4}},
		PaymentStatus: models.PaymentPaid,
	})
	require.NoError(t, err)
	require.InDelta(t, 12.50, purchase.Products[0].Price, 1e-9)
	require.InDelta(t, 50.00, purchase.Subtotal, 1e-9)
	require.Equal(t, "Deep Sea Fisheries", purchase.PartyName)
}

func TestCreateSaleValidation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	salmon := addProduct(t, st, "Salmon", 12.50, 18.00)

	svc := NewSaleService(st, 0.10)

	_, err := svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    "missing",
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: 1}},
		PaymentStatus: models.PaymentPaid,
	})
	require.Error(t, err)

	_, err = svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         nil,
		PaymentStatus: models.PaymentPaid,
	})
	require.Error(t, err)

	_, err = svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: -2}},
		PaymentStatus: models.PaymentPaid,
	})
	require.Error(t, err)

	_, err = svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         []models.SaleItemInput{{ProductID: "missing", Quantity: 1}},
		PaymentStatus: models.PaymentPaid,
	})
	require.Error(t, err)

	_, err = svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: 1}},
		PaymentStatus: "settled",
	})
	require.Error(t, err)
}

func TestSaleNameSnapshotSurvivesRename(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	customer := addCustomer(t, st, "Ocean Fresh", 0)
	salmon := addProduct(t, st, "Salmon", 12.50, 18.00)

	svc := NewSaleService(st, 0.10)
	sale, err := svc.CreateSale(ctx, &models.CreateSaleRequest{
		CustomerID:    customer.ID,
		Items:         []models.SaleItemInput{{ProductID: salmon.ID, Quantity: 1}},
		PaymentStatus: models.PaymentPaid,
	})
	require.NoError(t, err)

	newName := "Atlantic Salmon"
	st.UpdateProduct(ctx, salmon.ID, &models.UpdateProductRequest{Name: &newName})
	st.DeleteCustomer(ctx, customer.ID)

	stored := svc.ListSales(ctx)[0]
	require.Equal(t, sale.ID, stored.ID)
	require.Equal(t, "Salmon", stored.Products[0].ProductName)
	require.Equal(t, "Ocean Fresh", stored.CustomerName)
}

func TestNewSaleServiceDefaultsRate(t *testing.T) {
	st := newTestStore(t)
	svc := NewSaleService(st, 0)
	require.InDelta(t, DefaultTaxRate, svc.TaxRate, 1e-9)
}
