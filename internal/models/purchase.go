package models

import "time"

// Purchase mirrors Sale with a party in place of a customer.
type Purchase struct {
	ID            string        `json:"id"`
	PartyID       string        `json:"partyId"`
	PartyName     string        `json:"partyName"`
	Products      []SaleLine    `json:"products"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// CreatePurchaseRequest represents the request body for creating a purchase
type CreatePurchaseRequest struct {
	PartyID       string          `json:"partyId"`
	Items         []SaleItemInput `json:"items"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}
