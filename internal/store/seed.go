package store

import (
	"time"

	"aqua-backend/internal/models"
)

// Seed dataset used the first time a collection is opened against an
// empty backend. Matches the demo dataset the dashboard ships with.

func seedCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:        "1",
			Name:      "Ocean Fresh Restaurant",
			Email:     "orders@oceanfresh.com",
			Phone:     "+1-555-0101",
			Address:   "123 Harbor Street, Coastal City",
			Balance:   2450.00,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Maritime Seafood Market",
			Email:     "purchasing@maritime.com",
			Phone:     "+1-555-0102",
			Address:   "456 Fisherman's Wharf, Port Town",
			Balance:   1850.75,
			CreatedAt: time.Date(2024, 1, 20, 14, 15, 0, 0, time.UTC),
		},
	}
}

func seedParties() []models.Party {
	return []models.Party{
		{
			ID:        "1",
			Name:      "Deep Sea Fisheries Ltd.",
			Type:      models.PartyTypeSupplier,
			Contact:   "+1-555-0201",
			Address:   "789 Trawler Avenue, Fish Port",
			Balance:   -3200.00,
			CreatedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Coastal Distribution Co.",
			Type:      models.PartyTypeDistributor,
			Contact:   "+1-555-0202",
			Address:   "321 Distribution Drive, Trade Center",
			Balance:   1500.25,
			CreatedAt: time.Date(2024, 1, 12, 11, 45, 0, 0, time.UTC),
		},
	}
}

func seedProducts() []models.Product {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID:            "1",
			Name:          "Atlantic Salmon",
			Category:      "Fresh Fish",
			Unit:          "kg",
			PurchasePrice: 12.50,
			SellingPrice:  18.00,
			Stock:         150,
			MinStock:      20,
			CreatedAt:     created,
		},
		{
			ID:            "2",
			Name:          "Pacific Tuna",
			Category:      "Fresh Fish",
			Unit:          "kg",
			PurchasePrice: 15.00,
			SellingPrice:  22.00,
			Stock:         80,
			MinStock:      15,
			CreatedAt:     created,
		},
		{
			ID:            "3",
			Name:          "King Prawns",
			Category:      "Shellfish",
			Unit:          "kg",
			PurchasePrice: 25.00,
			SellingPrice:  35.00,
			Stock:         45,
			MinStock:      10,
			CreatedAt:     created,
		},
	}
}
