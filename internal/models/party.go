package models

import "time"

type PartyType string

const (
	PartyTypeSupplier    PartyType = "supplier"
	PartyTypeDistributor PartyType = "distributor"
)

// Valid reports whether t is a known party type.
func (t PartyType) Valid() bool {
	return t == PartyTypeSupplier || t == PartyTypeDistributor
}

// Party is a supplier or distributor the business trades with.
// Balance carries the same sign convention as Customer.Balance,
// read from the opposite side for suppliers.
type Party struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      PartyType `json:"type"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePartyRequest represents the request body for creating a party
type CreatePartyRequest struct {
	Name    string    `json:"name"`
	Type    PartyType `json:"type"`
	Contact string    `json:"contact"`
	Address string    `json:"address"`
	Balance float64   `json:"balance"`
}

// UpdatePartyRequest is a partial update; nil fields are left unchanged.
type UpdatePartyRequest struct {
	Name    *string    `json:"name"`
	Type    *PartyType `json:"type"`
	Contact *string    `json:"contact"`
	Address *string    `json:"address"`
	Balance *float64   `json:"balance"`
}
